package site

import (
	"encoding/json"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/tharunr07/folio/internal/content"
)

// section is the wrapper every content section shares: an optional animated
// background behind a content layer that reveals once.
func (p *page) section(id string, variant Background, children ...g.Node) g.Node {
	return Section(
		g.If(id != "", ID(id)),
		Class("relative overflow-hidden py-20 lg:py-32"),
		g.If(variant != "", AnimatedBackground(variant)),
		Div(p.revealAttrs(id+"-wrapper", "relative z-10 ease-out", 0),
			Div(Class("container mx-auto px-6"), g.Group(children)),
		),
	)
}

func (p *page) header(id string, h content.Header) g.Node {
	return Div(p.revealAttrs(id, "text-center mb-16", 0),
		Span(Class("badge font-mono text-sm tracking-wider"), g.Text(h.Badge)),
		H2(Class("text-3xl md:text-5xl font-bold mt-2"),
			g.Text(h.Title+" "),
			Span(Class("text-gradient"), g.Text(h.Accent)),
			g.If(h.Suffix != "", g.Text(" "+h.Suffix)),
		),
		g.If(h.Blurb != "", P(Class("text-muted-foreground mt-4 max-w-2xl mx-auto text-lg"), g.Text(h.Blurb))),
	)
}

func (p *page) hero() g.Node {
	h := p.site.Hero
	taglines, _ := json.Marshal(h.Taglines)

	return Section(ID("hero"), Class("relative min-h-screen flex items-center justify-center overflow-hidden"),
		AnimatedBackground(BackgroundHero),
		Div(Class("absolute inset-0 hero-overlay")),
		Div(Class("container mx-auto px-6 relative z-10 pt-20"),
			Div(Class("flex flex-col lg:flex-row items-center gap-12 lg:gap-20"),
				Div(Class("flex-1 text-center lg:text-left"),
					Div(p.revealAttrs("hero-badge", "", 200),
						Span(Class("badge font-mono text-sm animate-glow-pulse"), g.Text(h.Badge)),
					),
					H1(p.revealAttrs("hero-name", "text-4xl md:text-5xl lg:text-7xl font-bold mb-4", 300),
						g.Text("Hi, I'm "), Span(Class("text-gradient"), g.Text(h.Name)),
					),
					H2(p.revealAttrs("hero-role", "text-xl md:text-2xl text-muted-foreground font-mono mb-6", 400),
						g.Text(h.Role),
					),
					Div(p.revealAttrs("hero-tagline", "h-16 mb-8", 500),
						P(Class("typewriter text-lg md:text-xl text-primary font-mono"),
							Data("taglines", string(taglines)),
							// Shown as-is when scripts are off.
							g.Text(first(h.Taglines)),
						),
					),
					Div(p.revealAttrs("hero-actions", "flex flex-wrap gap-4 justify-center lg:justify-start", 600),
						A(Href("#projects"), Class("btn btn-hero"), g.Text("View Projects")),
						A(Href("#contact"), Class("btn btn-glow"), g.Text("Get in Touch")),
					),
					Div(p.revealAttrs("hero-social", "flex gap-4 mt-8 justify-center lg:justify-start", 700),
						g.Map(p.site.Links, func(l content.Link) g.Node {
							return socialLink(l, "social-icon")
						}),
					),
				),
				g.If(h.Photo != "", Div(Class("flex-shrink-0 profile"),
					Img(Src(h.Photo), Alt("Profile"), Class("w-64 h-64 md:w-80 md:h-80 rounded-full object-cover")),
				)),
			),
			A(Href("#about"), Class("scroll-indicator"), Span(g.Text("SCROLL"))),
		),
	)
}

func (p *page) about() g.Node {
	a := p.site.About
	return p.section("about", BackgroundNeural,
		Div(Class("max-w-4xl mx-auto"),
			p.header("about-header", a.Header),
			Div(p.revealAttrs("about-content", "grid md:grid-cols-2 gap-8 mb-16", 200),
				g.Map(a.Paragraphs, func(text string) g.Node {
					return Div(Class("card p-6"), P(Class("text-muted-foreground leading-loose"), g.Text(text)))
				}),
			),
			Div(Class("grid sm:grid-cols-2 lg:grid-cols-4 gap-6"),
				g.Group(indexed(a.Values, func(i int, c content.Card) g.Node {
					return Div(p.revealAttrs(itemID("about-value", i, c.Title), "card p-6 text-center", 300+i*100),
						icon(c.Icon),
						H3(Class("font-mono font-semibold mb-1 text-lg"), g.Text(c.Title)),
						g.If(c.Signal != "", P(Class("text-xs text-primary font-medium mb-2"), g.Text(c.Signal))),
						P(Class("text-sm text-muted-foreground"), g.Text(c.Description)),
					)
				})),
			),
			Div(Class("text-center mt-12"), A(Href("#projects"), Class("btn btn-hero"), g.Text("View Projects"))),
		),
	)
}

func (p *page) skills() g.Node {
	s := p.site.Skills
	return p.section("skills", BackgroundGrid,
		p.header("skills-header", s.Header),
		Div(Class("grid md:grid-cols-2 gap-8 max-w-5xl mx-auto"),
			g.Group(indexed(s.Categories, func(i int, c content.SkillCategory) g.Node {
				return Div(p.revealAttrs(itemID("skill", i, c.Title), "card p-8 min-h-[200px] flex flex-col", i*150),
					Div(Class("flex items-center gap-4 mb-6"),
						Div(Class("skill-icon bg-gradient-to-br "+c.Gradient), icon(c.Icon)),
						H3(Class("font-mono font-semibold text-xl"), g.Text(c.Title)),
					),
					Div(Class("flex flex-wrap gap-3"),
						g.Map(c.Skills, func(skill string) g.Node {
							return Span(Class("chip"), g.Text(skill))
						}),
					),
				)
			})),
		),
	)
}

func (p *page) projects() g.Node {
	s := p.site.Projects
	return p.section("projects", BackgroundFlow,
		p.header("projects-header", s.Header),
		Div(Class("grid lg:grid-cols-2 gap-8 max-w-6xl mx-auto"),
			g.Group(indexed(s.Items, func(i int, pr content.Project) g.Node {
				base := "card project p-8"
				if pr.Featured {
					base += " lg:col-span-2"
				}
				return Div(p.revealAttrs(itemID("project", i, pr.Title), base, i*150),
					Div(Class("flex items-start gap-4 mb-4"),
						icon(pr.Icon),
						H3(Class("font-mono font-bold text-xl"), g.Text(pr.Title)),
						g.If(pr.Featured, Span(Class("chip chip-featured"), g.Text("Featured"))),
					),
					Div(Class("mb-4 space-y-2"),
						g.If(pr.Problem != "", P(Class("text-sm text-muted-foreground"),
							Span(Class("text-primary font-mono"), g.Text("Problem:")), g.Text(" "+pr.Problem),
						)),
						P(Class("text-muted-foreground leading-relaxed"), g.Text(pr.Description)),
					),
					Div(Class("flex flex-wrap gap-2 mb-6"),
						g.Map(pr.Tech, func(t string) g.Node { return Span(Class("chip font-mono text-xs"), g.Text(t)) }),
					),
					g.If(pr.Repo != "", A(Href(pr.Repo), Target("_blank"), Rel("noopener noreferrer"), Class("btn btn-outline"),
						icon("github"), g.Text("Code"),
					)),
				)
			})),
		),
	)
}

func (p *page) focus() g.Node {
	f := p.site.Focus
	return p.section("focus", BackgroundProgress,
		Div(Class("max-w-4xl mx-auto"),
			p.header("focus-header", f.Header),
			Div(p.revealAttrs("focus-card", "card focus p-8 md:p-12 overflow-hidden", 0),
				Div(Class("flex items-center gap-4 mb-8"),
					icon("sprout"),
					Div(
						H3(Class("font-mono font-bold text-2xl md:text-3xl"), g.Text(f.Title)),
						P(Class("text-muted-foreground"), g.Text(f.Subtitle)),
					),
				),
				P(Class("text-muted-foreground leading-relaxed mb-8 text-lg"), g.Text(f.Body)),
				Div(Class("grid sm:grid-cols-2 gap-6"),
					g.Group(indexed(f.Points, func(i int, c content.Card) g.Node {
						return Div(p.revealAttrs(itemID("focus", i, c.Title), "focus-point flex items-start gap-4 p-4 rounded-xl", 400+i*100),
							icon(c.Icon),
							Div(
								H4(Class("font-mono font-semibold mb-1"), g.Text(c.Title)),
								P(Class("text-sm text-muted-foreground"), g.Text(c.Description)),
							),
						)
					})),
				),
			),
		),
	)
}

func (p *page) contact() g.Node {
	c := p.site.Contact
	return p.section("contact", BackgroundNodes,
		Div(Class("max-w-3xl mx-auto text-center"),
			p.header("contact-header", c.Header),
			Div(p.revealAttrs("contact-links", "flex justify-center gap-6 mb-12", 300),
				g.Map(p.site.Links, func(l content.Link) g.Node {
					return socialLink(l, "contact-link", Span(Class("text-sm"), g.Text(l.Label)))
				}),
			),
			g.If(c.Availability != "", Div(p.revealAttrs("contact-availability", "", 400),
				Div(Class("availability font-mono text-sm"),
					Span(Class("pulse-dot")),
					g.Text(c.Availability),
				),
			)),
		),
	)
}

func socialLink(l content.Link, class string, extra ...g.Node) g.Node {
	return A(Href(l.Href), Class(class), Aria("label", l.Label),
		g.If(l.External(), Target("_blank")),
		Rel("noopener noreferrer"),
		icon(l.Icon),
		g.Group(extra),
	)
}

// icon renders a named glyph; the stylesheet maps names to masks.
func icon(name string) g.Node {
	return I(Class("icon icon-"+name), Aria("hidden", "true"))
}

// itemID names a repeated block by position and title, so equal or
// unsluggable titles still get their own latch.
func itemID(prefix string, i int, title string) string {
	return prefix + "-" + strconv.Itoa(i) + "-" + content.Slug(title)
}

func indexed[T any](ts []T, fn func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(ts))
	for i, t := range ts {
		nodes = append(nodes, fn(i, t))
	}
	return nodes
}

func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(w[:1]))
	}
	return b.String()
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}
