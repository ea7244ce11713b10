package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/tharunr07/folio/internal/particle"
)

// One terminal cell stands for a cellW×cellH patch of field units, so the
// density and distance constants keep roughly the proportions they have on a
// pixel canvas.
const (
	cellW = 8.0
	cellH = 16.0
)

// linkBoost lifts link opacity into a range a terminal can show.
const linkBoost = 4.0

func toField(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * cellW, (float64(row) + 0.5) * cellH
}

func toCell(x, y float64) (int, int) {
	return int(x / cellW), int(y / cellH)
}

type ink struct {
	r     rune
	alpha float64
}

// raster accumulates one frame of the field before it goes to the screen.
// Each cell keeps the strongest mark drawn into it.
type raster struct {
	cols, rows int
	cells      []ink
}

func (r *raster) reset(cols, rows int) {
	r.cols, r.rows = cols, rows
	n := cols * rows
	if cap(r.cells) < n {
		r.cells = make([]ink, n)
	}
	r.cells = r.cells[:n]
	clear(r.cells)
}

func (r *raster) mark(col, row int, ch rune, alpha float64) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	c := &r.cells[row*r.cols+col]
	if alpha > c.alpha {
		*c = ink{r: ch, alpha: alpha}
	}
}

func (r *raster) at(col, row int) ink {
	return r.cells[row*r.cols+col]
}

// paint rasterizes the field: links first as faint dots along each segment,
// then the particles on top.
func (r *raster) paint(f *particle.Field, cols, rows int) {
	r.reset(cols, rows)
	if f == nil || cols == 0 || rows == 0 {
		return
	}
	ps := f.Particles()
	f.Links(func(l particle.Link) {
		a, b := ps[l.A], ps[l.B]
		steps := int(math.Max(math.Abs(a.X-b.X)/cellW, math.Abs(a.Y-b.Y)/cellH))
		for i := 1; i < steps; i++ {
			t := float64(i) / float64(steps)
			c, rw := toCell(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
			r.mark(c, rw, '·', l.Opacity*linkBoost)
		}
	})
	for _, p := range ps {
		c, rw := toCell(p.X, p.Y)
		r.mark(c, rw, glyph(p.Size), p.Opacity+0.3)
	}
}

func glyph(size float64) rune {
	switch {
	case size < 1.7:
		return '·'
	case size < 2.4:
		return '•'
	default:
		return '●'
	}
}

// tint scales the variant color by alpha against a black background.
func tint(c particle.RGB, alpha float64) tcell.Style {
	alpha = math.Min(math.Max(alpha, 0), 1)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(float64(c.R)*alpha),
		int32(float64(c.G)*alpha),
		int32(float64(c.B)*alpha),
	))
}

func (r *raster) blit(s tcell.Screen, c particle.RGB) {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			if in := r.at(col, row); in.r != 0 {
				s.SetContent(col, row, in.r, nil, tint(c, in.alpha))
			}
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}
