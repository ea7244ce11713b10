// Package site composes the portfolio page from content records.
package site

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/tharunr07/folio/internal/content"
	"github.com/tharunr07/folio/internal/particle"
	"github.com/tharunr07/folio/internal/reveal"
)

const (
	shownClass  = "opacity-100 translate-y-0"
	hiddenClass = "opacity-0 translate-y-8"
)

type Options struct {
	// Reveal renders sections hidden and lets the browser script uncover
	// them as they scroll in. Without it every section is rendered visible.
	Reveal bool
	// Density of the page-wide particle field.
	Density float64
	Variant particle.Variant
}

func DefaultOptions() Options {
	return Options{Reveal: true, Density: 40, Variant: particle.Neural}
}

// page carries per-render state: the observer that hands out latches for the
// revealable blocks and the detach functions to run once rendering is done.
type page struct {
	site    *content.Site
	opts    Options
	obs     *reveal.Observer
	detachs []func()
}

// Render writes the whole document for site to w.
func Render(w io.Writer, site *content.Site, opts Options) error {
	return Page(site, opts).Render(w)
}

// Page builds the document node. Latches taken while building are released
// before it returns, so the node reflects their state at build time.
func Page(site *content.Site, opts Options) g.Node {
	return newPage(site, opts).document()
}

func newPage(site *content.Site, opts Options) *page {
	if opts.Density <= 0 {
		opts.Density = DefaultOptions().Density
	}
	if opts.Variant == "" {
		opts.Variant = particle.Neural
	}
	return &page{
		site: site,
		opts: opts,
		obs:  reveal.New(reveal.Options{Unsupported: !opts.Reveal}),
	}
}

func (p *page) document() g.Node {
	defer p.release()

	return components.HTML5(components.HTML5Props{
		Title:       p.site.Title,
		Description: p.site.Hero.Role,
		Language:    "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(Rel("stylesheet"), Href("/static/folio.css")),
			g.El("noscript", g.El("style", g.Raw("[data-reveal]{opacity:1!important;transform:none!important}"))),
			Script(Src("/static/folio.js"), Defer()),
		},
		Body: []g.Node{
			Class("min-h-screen bg-background relative"),
			p.particleCanvas(),
			Div(Class("relative z-10"),
				p.navbar(),
				p.hero(),
				p.about(),
				p.skills(),
				p.projects(),
				p.focus(),
				p.contact(),
			),
		},
	})
}

// watch hands out a latch for one revealable block.
func (p *page) watch(id string) *reveal.Latch {
	l, detach := p.obs.Watch(id)
	p.detachs = append(p.detachs, detach)
	return l
}

func (p *page) release() {
	for _, d := range p.detachs {
		d()
	}
	p.detachs = nil
}

// revealAttrs marks a block for the browser observer and picks its initial
// transition classes from the latch.
func (p *page) revealAttrs(id, base string, delayMs int) g.Node {
	l := p.watch(id)
	return g.Group([]g.Node{
		Data("reveal", id),
		Class(strings.TrimSpace(base + " transition-all duration-1000 " + l.Class(shownClass, hiddenClass))),
		g.If(delayMs > 0, Style("transition-delay: "+strconv.Itoa(delayMs)+"ms")),
	})
}

func (p *page) particleCanvas() g.Node {
	cfg, _ := json.Marshal(struct {
		Density float64          `json:"density"`
		Variant particle.Variant `json:"variant"`
		Physics particle.Physics `json:"physics"`
	}{p.opts.Density, p.opts.Variant, particle.DefaultPhysics()})

	return g.El("canvas",
		ID("particles"),
		Class("fixed inset-0 pointer-events-none"),
		Style("z-index: 0"),
		Data("field", string(cfg)),
		Data("color", p.opts.Variant.Color().String()),
	)
}

func (p *page) navbar() g.Node {
	items := []struct{ label, href string }{
		{"About", "#about"},
		{"Skills", "#skills"},
		{"Projects", "#projects"},
		{"Contact", "#contact"},
	}
	return Nav(ID("navbar"), Class("fixed top-0 inset-x-0 z-50 backdrop-blur-md"),
		Div(Class("container mx-auto px-6 flex items-center justify-between h-16"),
			A(Href("#"), Class("font-mono font-bold text-gradient"), g.Text(initials(p.site.Hero.Name))),
			Ul(Class("flex gap-6"),
				g.Map(items, func(it struct{ label, href string }) g.Node {
					return Li(A(Href(it.href), Class("nav-link"), g.Text(it.label)))
				}),
			),
		),
	)
}
