package tui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/tharunr07/folio/internal/content"
)

const maxTextWidth = 76

type line struct {
	text  string
	style tcell.Style
	// typewriter marks the hero tagline line, whose text changes per frame.
	typewriter bool
}

// block is one revealable unit of the page: a section header, a card, a
// paragraph. top is its first row in document coordinates.
type block struct {
	id    string
	top   int
	lines []line
}

func (b block) height() int { return len(b.lines) }

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(226, 232, 240))
	styleMuted  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(148, 163, 184))
	stylePrim   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(56, 189, 248))
	styleAccent = tcell.StyleDefault.Foreground(tcell.NewRGBColor(168, 85, 247))
	styleGreen  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(74, 222, 128))
	styleTitle  = styleText.Bold(true)
	styleStatus = tcell.StyleDefault.Background(tcell.NewRGBColor(15, 23, 42)).Foreground(tcell.NewRGBColor(148, 163, 184))
)

// columnWidth is the text column used for a screen cols wide.
func columnWidth(cols int) int {
	return max(min(cols-4, maxTextWidth), 10)
}

// layout flows the site into blocks for a text column of the given width.
// Every line fits the column. Blocks are separated by one blank row, sections
// by three. Block ids carry the item index so repeated titles stay distinct.
func layout(site *content.Site, width int) []block {
	w := max(min(width, maxTextWidth), 10)

	var blocks []block
	row := 0
	add := func(id string, lines ...line) {
		blocks = append(blocks, block{id: id, top: row, lines: lines})
		row += len(lines) + 1
	}
	gap := func() { row += 2 }
	item := func(prefix string, i int, title string) string {
		return prefix + "-" + strconv.Itoa(i) + "-" + content.Slug(title)
	}

	h := site.Hero
	add("hero-badge", wrapped(h.Badge, w, stylePrim)...)
	add("hero-name", wrapped("Hi, I'm "+h.Name, w, styleTitle)...)
	add("hero-role", wrapped(h.Role, w, styleMuted)...)
	add("hero-tagline", line{style: stylePrim, typewriter: true})
	add("hero-social", links(site.Links, w)...)
	gap()

	a := site.About
	add("about-header", header(a.Header, w)...)
	for i, p := range a.Paragraphs {
		add("about-paragraph-"+strconv.Itoa(i), wrapped(p, w, styleMuted)...)
	}
	for i, c := range a.Values {
		add(item("about-value", i, c.Title), card(c, w)...)
	}
	gap()

	s := site.Skills
	add("skills-header", header(s.Header, w)...)
	for i, c := range s.Categories {
		lines := wrapped(c.Title, w, styleTitle)
		lines = append(lines, wrapped(strings.Join(c.Skills, " · "), w, styleText)...)
		add(item("skill", i, c.Title), lines...)
	}
	gap()

	pr := site.Projects
	add("projects-header", header(pr.Header, w)...)
	for i, p := range pr.Items {
		title := p.Title
		if p.Featured {
			title += "  [Featured]"
		}
		lines := wrapped(title, w, styleTitle)
		if p.Problem != "" {
			lines = append(lines, wrapped("Problem: "+p.Problem, w, styleMuted)...)
		}
		lines = append(lines, wrapped(p.Description, w, styleText)...)
		lines = append(lines, wrapped(strings.Join(p.Tech, " · "), w, styleAccent)...)
		if p.Repo != "" {
			lines = append(lines, wrapped(p.Repo, w, stylePrim)...)
		}
		add(item("project", i, p.Title), lines...)
	}
	gap()

	f := site.Focus
	add("focus-header", header(f.Header, w)...)
	focus := wrapped(f.Title, w, styleGreen.Bold(true))
	focus = append(focus, wrapped(f.Subtitle, w, styleMuted)...)
	add("focus-card", append(focus, wrapped(f.Body, w, styleText)...)...)
	for i, c := range f.Points {
		add(item("focus", i, c.Title), card(c, w)...)
	}
	gap()

	c := site.Contact
	add("contact-header", header(c.Header, w)...)
	add("contact-links", links(site.Links, w)...)
	if c.Availability != "" {
		add("contact-availability", wrapped("● "+c.Availability, w, styleGreen)...)
	}
	return blocks
}

func header(h content.Header, w int) []line {
	title := h.Title + " " + h.Accent
	if h.Suffix != "" {
		title += " " + h.Suffix
	}
	lines := wrapped(h.Badge, w, stylePrim)
	lines = append(lines, wrapped(title, w, styleTitle)...)
	if h.Blurb != "" {
		lines = append(lines, wrapped(h.Blurb, w, styleMuted)...)
	}
	return lines
}

func card(c content.Card, w int) []line {
	lines := wrapped(c.Title, w, styleTitle)
	if c.Signal != "" {
		lines = append(lines, wrapped(c.Signal, w, stylePrim)...)
	}
	return append(lines, wrapped(c.Description, w, styleMuted)...)
}

func links(ls []content.Link, w int) []line {
	var out []line
	for _, l := range ls {
		href := strings.TrimPrefix(l.Href, "mailto:")
		out = append(out, wrapped(l.Label+": "+href, w, stylePrim)...)
	}
	return out
}

// wrapped word-wraps text to width w. Runs of whitespace, including the
// newlines and indentation of multi-line copy, collapse to single spaces.
func wrapped(text string, w int, style tcell.Style) []line {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []line{{style: style}}
	}
	var out []line
	cur := ""
	for _, word := range words {
		for len([]rune(word)) > w {
			if cur != "" {
				out = append(out, line{text: cur, style: style})
				cur = ""
			}
			r := []rune(word)
			out = append(out, line{text: string(r[:w]), style: style})
			word = string(r[w:])
		}
		switch {
		case cur == "":
			cur = word
		case len([]rune(cur))+1+len([]rune(word)) <= w:
			cur += " " + word
		default:
			out = append(out, line{text: cur, style: style})
			cur = word
		}
	}
	if cur != "" {
		out = append(out, line{text: cur, style: style})
	}
	return out
}

// clip cuts text to at most w runes.
func clip(text string, w int) string {
	if r := []rune(text); len(r) > w {
		return string(r[:w])
	}
	return text
}

func documentHeight(blocks []block) int {
	if len(blocks) == 0 {
		return 0
	}
	last := blocks[len(blocks)-1]
	return last.top + last.height()
}
