package particle

import "math"

// Link is a line segment between two particles close enough to be joined.
type Link struct {
	A, B     int
	Distance float64
	Opacity  float64
}

// LinkOpacity is the stroke opacity for two particles d units apart. It falls
// off linearly and is zero from LinkDistance on.
func LinkOpacity(d float64) float64 {
	if d < 0 {
		d = 0
	}
	if d >= LinkDistance {
		return 0
	}
	return (1 - d/LinkDistance) * LinkAlpha
}

// Links calls fn for every pair of particles closer than LinkDistance. The
// scan is pairwise over the whole set.
func (f *Field) Links(fn func(Link)) {
	ps := f.particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if d < LinkDistance {
				fn(Link{A: i, B: j, Distance: d, Opacity: LinkOpacity(d)})
			}
		}
	}
}

// AppendLinks appends the current links to dst and returns it.
func (f *Field) AppendLinks(dst []Link) []Link {
	f.Links(func(l Link) { dst = append(dst, l) })
	return dst
}
