package particle

import "fmt"

// Variant selects the tint of the field.
type Variant string

const (
	Neural Variant = "neural"
	Grid   Variant = "grid"
	Flow   Variant = "flow"
	Nodes  Variant = "nodes"
)

type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// RGBA formats the color as a CSS rgba() value.
func (c RGB) RGBA(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, alpha)
}

// Color returns the tint for v. Unknown variants use the flow tint.
func (v Variant) Color() RGB {
	switch v {
	case Neural, Nodes:
		return RGB{56, 189, 248}
	case Grid:
		return RGB{168, 85, 247}
	default:
		return RGB{34, 211, 238}
	}
}

// ParseVariant validates a variant name. Empty means Neural.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case "":
		return Neural, nil
	case Neural, Grid, Flow, Nodes:
		return v, nil
	default:
		return "", fmt.Errorf("particle: unknown variant %q", s)
	}
}
