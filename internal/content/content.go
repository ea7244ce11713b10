// Package content holds the static copy of the portfolio: who the page is
// about, the cards each section shows and the outbound links.
package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrInvalidContent = errors.New("invalid content")

type Link struct {
	Label string `toml:"label" json:"label"`
	Icon  string `toml:"icon" json:"icon"`
	Href  string `toml:"href" json:"href"`
}

// External reports whether the link leaves the page in a new tab. Mail links
// open in place.
func (l Link) External() bool {
	return !strings.HasPrefix(l.Href, "mailto:")
}

type Card struct {
	Icon        string `toml:"icon" json:"icon"`
	Title       string `toml:"title" json:"title"`
	Signal      string `toml:"signal" json:"signal,omitempty"`
	Description string `toml:"description" json:"description"`
}

type SkillCategory struct {
	Title    string   `toml:"title" json:"title"`
	Icon     string   `toml:"icon" json:"icon"`
	Gradient string   `toml:"gradient" json:"gradient"`
	Glow     string   `toml:"glow" json:"glow"`
	Skills   []string `toml:"skills" json:"skills"`
}

type Project struct {
	Title       string   `toml:"title" json:"title"`
	Description string   `toml:"description" json:"description"`
	Problem     string   `toml:"problem" json:"problem"`
	Tech        []string `toml:"tech" json:"tech"`
	Icon        string   `toml:"icon" json:"icon"`
	Featured    bool     `toml:"featured" json:"featured"`
	Repo        string   `toml:"repo" json:"repo"`
}

// Header is the badge, title and blurb above a section.
type Header struct {
	Badge  string `toml:"badge" json:"badge"`
	Title  string `toml:"title" json:"title"`
	Accent string `toml:"accent" json:"accent"`
	Suffix string `toml:"suffix" json:"suffix,omitempty"`
	Blurb  string `toml:"blurb" json:"blurb,omitempty"`
}

type Hero struct {
	Badge    string   `toml:"badge" json:"badge"`
	Name     string   `toml:"name" json:"name"`
	Role     string   `toml:"role" json:"role"`
	Taglines []string `toml:"taglines" json:"taglines"`
	Photo    string   `toml:"photo" json:"photo"`
}

type About struct {
	Header     Header   `toml:"header" json:"header"`
	Paragraphs []string `toml:"paragraphs" json:"paragraphs"`
	Values     []Card   `toml:"values" json:"values"`
}

type Skills struct {
	Header     Header          `toml:"header" json:"header"`
	Categories []SkillCategory `toml:"categories" json:"categories"`
}

type Projects struct {
	Header Header    `toml:"header" json:"header"`
	Items  []Project `toml:"items" json:"items"`
}

type Focus struct {
	Header   Header `toml:"header" json:"header"`
	Title    string `toml:"title" json:"title"`
	Subtitle string `toml:"subtitle" json:"subtitle"`
	Body     string `toml:"body" json:"body"`
	Points   []Card `toml:"points" json:"points"`
}

type Contact struct {
	Header       Header `toml:"header" json:"header"`
	Availability string `toml:"availability" json:"availability"`
}

// Site is everything the page renders.
type Site struct {
	Title    string   `toml:"title" json:"title"`
	Hero     Hero     `toml:"hero" json:"hero"`
	Links    []Link   `toml:"links" json:"links"`
	About    About    `toml:"about" json:"about"`
	Skills   Skills   `toml:"skills" json:"skills"`
	Projects Projects `toml:"projects" json:"projects"`
	Focus    Focus    `toml:"focus" json:"focus"`
	Contact  Contact  `toml:"contact" json:"contact"`
}

// Load reads a TOML content file over the defaults. Tables missing from the
// file keep their default values.
func Load(path string) (*Site, error) {
	site := Default()
	if path == "" {
		return site, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	if err := Decode(string(data), site); err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

// Decode parses TOML into site and validates the result. Tables merge into
// what site already holds; an array the data defines replaces the existing
// one outright.
func Decode(data string, site *Site) error {
	md, err := toml.Decode(data, &Site{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %s", ErrInvalidContent, undecoded[0])
	}
	site.clearArrays(md)
	if _, err := toml.Decode(data, site); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return site.Validate()
}

// clearArrays drops every array md defines. toml decodes array entries by
// index into the existing elements, which would leak fields of the old
// entries into the new ones.
func (s *Site) clearArrays(md toml.MetaData) {
	arrays := []struct {
		key   []string
		clear func()
	}{
		{[]string{"hero", "taglines"}, func() { s.Hero.Taglines = nil }},
		{[]string{"links"}, func() { s.Links = nil }},
		{[]string{"about", "paragraphs"}, func() { s.About.Paragraphs = nil }},
		{[]string{"about", "values"}, func() { s.About.Values = nil }},
		{[]string{"skills", "categories"}, func() { s.Skills.Categories = nil }},
		{[]string{"projects", "items"}, func() { s.Projects.Items = nil }},
		{[]string{"focus", "points"}, func() { s.Focus.Points = nil }},
	}
	for _, a := range arrays {
		if md.IsDefined(a.key...) {
			a.clear()
		}
	}
}

func (s *Site) Validate() error {
	if strings.TrimSpace(s.Hero.Name) == "" {
		return fmt.Errorf("%w: hero name is required", ErrInvalidContent)
	}
	if len(s.Hero.Taglines) == 0 {
		return fmt.Errorf("%w: hero needs at least one tagline", ErrInvalidContent)
	}
	for _, l := range s.Links {
		if l.Label == "" || l.Href == "" {
			return fmt.Errorf("%w: link %q has no label or href", ErrInvalidContent, l.Label)
		}
	}
	for _, p := range s.Projects.Items {
		if p.Title == "" {
			return fmt.Errorf("%w: project without title", ErrInvalidContent)
		}
	}
	return nil
}

// Slug lowercases s and joins its alphanumeric runs with dashes. Sections use
// it to derive element ids from titles.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
