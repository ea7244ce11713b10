// Package particle simulates the ambient particle field drawn behind the
// portfolio: drifting points that are pulled toward the pointer, slowed by
// friction, capped in speed and wrapped across the edges of the surface.
package particle

import (
	"errors"
	"math"
	"math/rand"
)

const (
	AttractRadius   = 200.0
	AttractStrength = 0.01
	Damping         = 0.99
	MaxSpeed        = 0.5
	LinkDistance    = 150.0
	LinkAlpha       = 0.15
	DefaultDensity  = 50.0
)

var ErrBadDimensions = errors.New("particle: width and height must be positive")

// Particle is a single point of the field. It has no identity beyond its
// index in the field.
type Particle struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	Size    float64 `json:"size"`
	Opacity float64 `json:"opacity"`
}

// Speed returns the magnitude of the particle's velocity.
func (p Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

type Config struct {
	Width   float64
	Height  float64
	Density float64
	Variant Variant
	// Seed fixes the random source; zero picks a fresh one.
	Seed int64
}

// Field owns the particle set for one drawing surface. It is not safe for
// concurrent use: a single goroutine steps and draws it.
type Field struct {
	width, height float64
	density       float64
	variant       Variant
	rng           *rand.Rand

	particles []Particle

	pointerX, pointerY float64
	hasPointer         bool
}

// Count returns how many particles a surface of the given size holds.
func Count(width, height, density float64) int {
	if width <= 0 || height <= 0 || density <= 0 {
		return 0
	}
	return int(math.Floor(width * height / (20000 / density * 10)))
}

// New seeds a field for the configured surface.
func New(cfg Config) (*Field, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrBadDimensions
	}
	if cfg.Density <= 0 {
		cfg.Density = DefaultDensity
	}
	if cfg.Variant == "" {
		cfg.Variant = Neural
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	f := &Field{
		density: cfg.Density,
		variant: cfg.Variant,
		rng:     rand.New(rand.NewSource(seed)),
	}
	f.Resize(cfg.Width, cfg.Height)
	return f, nil
}

// Resize changes the surface size and regenerates every particle. Sizes
// that are not positive leave an empty field.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
	n := Count(width, height, f.density)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       f.rng.Float64() * width,
			Y:       f.rng.Float64() * height,
			VX:      (f.rng.Float64() - 0.5) * 0.3,
			VY:      (f.rng.Float64() - 0.5) * 0.3,
			Size:    f.rng.Float64()*2 + 1,
			Opacity: f.rng.Float64()*0.5 + 0.2,
		}
	}
}

func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

func (f *Field) ClearPointer() {
	f.hasPointer = false
}

func (f *Field) Width() float64   { return f.width }
func (f *Field) Height() float64  { return f.height }
func (f *Field) Density() float64 { return f.density }
func (f *Field) Variant() Variant { return f.variant }
func (f *Field) Len() int         { return len(f.particles) }

// Particles returns the live particle slice. Callers draw from it and must
// not keep it across a Resize.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Step advances every particle by one frame.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]

		if f.hasPointer {
			dx := f.pointerX - p.X
			dy := f.pointerY - p.Y
			d := math.Hypot(dx, dy)
			if d > 0 && d < AttractRadius {
				force := (AttractRadius - d) / AttractRadius * AttractStrength
				p.VX += dx / d * force
				p.VY += dy / d * force
			}
		}

		p.VX *= Damping
		p.VY *= Damping

		if s := p.Speed(); s > MaxSpeed {
			p.VX = p.VX / s * MaxSpeed
			p.VY = p.VY / s * MaxSpeed
		}

		p.X = wrap(p.X+p.VX, f.width)
		p.Y = wrap(p.Y+p.VY, f.height)
	}
}

// wrap maps v into [0, size).
func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// Mod of a tiny negative value plus size can round up to size.
	if v >= size {
		v = 0
	}
	return v
}
