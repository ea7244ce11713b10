package particle

// Snapshot is a copy of the field suitable for encoding. Browsers use it to
// seed their own animation for a viewport.
type Snapshot struct {
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Density   float64    `json:"density"`
	Variant   Variant    `json:"variant"`
	Color     string     `json:"color"`
	Count     int        `json:"count"`
	Physics   Physics    `json:"physics"`
	Particles []Particle `json:"particles"`
}

// Physics carries the per-frame constants so a client steps the field the
// same way Step does.
type Physics struct {
	AttractRadius   float64 `json:"attractRadius"`
	AttractStrength float64 `json:"attractStrength"`
	Damping         float64 `json:"damping"`
	MaxSpeed        float64 `json:"maxSpeed"`
	LinkDistance    float64 `json:"linkDistance"`
	LinkAlpha       float64 `json:"linkAlpha"`
}

func DefaultPhysics() Physics {
	return Physics{
		AttractRadius:   AttractRadius,
		AttractStrength: AttractStrength,
		Damping:         Damping,
		MaxSpeed:        MaxSpeed,
		LinkDistance:    LinkDistance,
		LinkAlpha:       LinkAlpha,
	}
}

func (f *Field) Snapshot() Snapshot {
	ps := make([]Particle, len(f.particles))
	copy(ps, f.particles)
	return Snapshot{
		Width:     f.width,
		Height:    f.height,
		Density:   f.density,
		Variant:   f.variant,
		Color:     f.variant.Color().String(),
		Count:     len(ps),
		Physics:   DefaultPhysics(),
		Particles: ps,
	}
}
