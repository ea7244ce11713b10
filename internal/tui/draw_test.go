package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharunr07/folio/internal/particle"
)

func TestCellMapping(t *testing.T) {
	x, y := toField(3, 2)
	assert.Equal(t, 28.0, x)
	assert.Equal(t, 40.0, y)

	c, r := toCell(x, y)
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
}

func TestRasterKeepsStrongestMark(t *testing.T) {
	var r raster
	r.reset(4, 2)
	r.mark(1, 1, '·', 0.2)
	r.mark(1, 1, '●', 0.6)
	r.mark(1, 1, '•', 0.4)
	r.mark(9, 9, '●', 1) // off the raster

	assert.Equal(t, ink{r: '●', alpha: 0.6}, r.at(1, 1))
	assert.Equal(t, ink{}, r.at(0, 0))

	r.reset(4, 2)
	assert.Equal(t, ink{}, r.at(1, 1))
}

func TestPaintField(t *testing.T) {
	f, err := particle.New(particle.Config{Width: 80 * cellW, Height: 24 * cellH, Seed: 3})
	require.NoError(t, err)

	var r raster
	r.paint(f, 80, 24)
	for _, p := range f.Particles() {
		c, rw := toCell(p.X, p.Y)
		assert.NotZero(t, r.at(c, rw).r)
	}

	r.paint(nil, 80, 24)
	for _, in := range r.cells {
		assert.Equal(t, ink{}, in)
	}
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, '·', glyph(1.2))
	assert.Equal(t, '•', glyph(2))
	assert.Equal(t, '●', glyph(2.9))
}

func TestTint(t *testing.T) {
	c := particle.RGB{R: 200, G: 100, B: 50}
	fg, _, _ := tint(c, 0.5).Decompose()
	assert.Equal(t, tcell.NewRGBColor(100, 50, 25), fg)

	fg, _, _ = tint(c, 3).Decompose()
	assert.Equal(t, tcell.NewRGBColor(200, 100, 50), fg)
}
