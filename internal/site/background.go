package site

import (
	"fmt"
	"math/rand"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Background names the decorative layer drawn behind a section.
type Background string

const (
	BackgroundHero     Background = "hero"
	BackgroundNeural   Background = "neural"
	BackgroundGrid     Background = "grid"
	BackgroundFlow     Background = "flow"
	BackgroundNodes    Background = "nodes"
	BackgroundProgress Background = "progress"
)

// AnimatedBackground renders the CSS-animated layer for v. Timings are
// jittered from a source seeded by the variant so output is stable between
// renders. Unknown variants render nothing.
func AnimatedBackground(v Background) g.Node {
	rng := rand.New(rand.NewSource(int64(len(v)) * 7919))
	layer := func(children ...g.Node) g.Node {
		return Div(Class("absolute inset-0 overflow-hidden bg-"+string(v)), Aria("hidden", "true"), g.Group(children))
	}

	switch v {
	case BackgroundHero:
		return layer(
			Div(Class("orb orb-primary"), Style("animation: float 20s ease-in-out infinite")),
			Div(Class("orb orb-accent"), Style("animation: float 25s ease-in-out infinite reverse")),
			Div(Class("absolute inset-0 grid-lines"), Data("parallax", "1")),
			Div(Class("absolute inset-0"), g.Group(repeat(20, func(int) g.Node {
				return Div(Class("dot"), Style(fmt.Sprintf(
					"left: %.1f%%; top: %.1f%%; animation: floatParticle %.1fs ease-in-out infinite; animation-delay: %.1fs",
					rng.Float64()*100, rng.Float64()*100, 15+rng.Float64()*10, rng.Float64()*5)))
			}))),
		)
	case BackgroundNeural:
		return layer(
			Div(Class("absolute inset-0 neural-pattern")),
			Div(Class("absolute inset-0 neural-glow"), Style("animation: gradientShift 15s ease-in-out infinite alternate")),
		)
	case BackgroundGrid:
		return layer(
			Div(Class("absolute inset-0 data-grid"), Style("animation: gridPulse 8s ease-in-out infinite")),
			Div(Class("absolute inset-0"), g.Group(repeat(15, func(i int) g.Node {
				return Div(Class("glow-node"), Style(fmt.Sprintf(
					"left: %.1f%%; top: %d%%; animation: nodePulse %.1fs ease-in-out infinite; animation-delay: %.1fs",
					float64(i%5)*25+12.5, (i/5)*33+16, 2+rng.Float64()*2, rng.Float64()*2)))
			}))),
		)
	case BackgroundFlow:
		return layer(
			g.Group(repeat(10, func(i int) g.Node {
				return Div(Class("stream"), Style(fmt.Sprintf(
					"top: %d%%; animation: dataFlow %.1fs linear infinite; animation-delay: %.1fs",
					10+i*9, 8+float64(i)*0.8, float64(i)*0.4)))
			})),
			Div(Class("orb orb-flow"), Style("animation: float 25s ease-in-out infinite")),
		)
	case BackgroundNodes:
		return layer(g.Group(repeat(12, func(i int) g.Node {
			return Div(Class("absolute"), Style(fmt.Sprintf("left: %d%%; top: %d%%", 10+(i%4)*25, 15+(i/4)*30)),
				Div(Class("node-core animate-pulse"), Style(fmt.Sprintf("animation-delay: %.1fs", float64(i)*0.2))),
				Div(Class("node-halo"), Style(fmt.Sprintf("animation: nodePulse %.1fs ease-in-out infinite", 3+rng.Float64()))),
			)
		})))
	case BackgroundProgress:
		return layer(g.Group(repeat(5, func(i int) g.Node {
			return Div(Class("track"), Style(fmt.Sprintf("left: %d%%; right: %d%%; top: %d%%", 5+i*5, 5+(4-i)*5, 20+i*15)),
				Div(Class("track-fill"), Style(fmt.Sprintf(
					"animation: progressMove %ds ease-in-out infinite; animation-delay: %.1fs", 4+i, float64(i)*0.5))),
			)
		})))
	}
	return g.Group(nil)
}

func repeat(n int, fn func(int) g.Node) []g.Node {
	nodes := make([]g.Node, n)
	for i := range nodes {
		nodes[i] = fn(i)
	}
	return nodes
}
