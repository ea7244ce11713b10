package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatchFlipsOnce(t *testing.T) {
	o := New(Options{})
	l, detach := o.Watch("about")
	defer detach()

	assert.False(t, l.Visible())
	assert.False(t, o.Report("about", 0.05))
	assert.False(t, o.Report("about", DefaultThreshold))
	assert.False(t, l.Visible())

	assert.True(t, o.Report("about", 0.4))
	assert.True(t, l.Visible())

	transitions := 0
	for _, r := range []float64{0, 0.9, 0, 1, 0.2} {
		if o.Report("about", r) {
			transitions++
		}
		require.True(t, l.Visible())
	}
	assert.Zero(t, transitions)
}

func TestThresholdOptions(t *testing.T) {
	assert.Equal(t, DefaultThreshold, New(Options{}).Threshold())
	assert.Equal(t, 0.5, New(Options{Threshold: 0.5}).Threshold())

	o := New(Options{Threshold: -1})
	assert.Zero(t, o.Threshold())
	l, _ := o.Watch("x")
	assert.False(t, l.Offer(0))
	assert.True(t, l.Offer(0.001))
}

func TestDetachStopsReports(t *testing.T) {
	o := New(Options{})
	l, detach := o.Watch("skills")
	assert.Equal(t, []string{"skills"}, o.Watching())

	detach()
	assert.Empty(t, o.Watching())
	assert.False(t, o.Report("skills", 1))
	assert.False(t, l.Visible())

	detach()
	assert.Empty(t, o.Watching())
}

func TestRewatchGivesFreshLatch(t *testing.T) {
	o := New(Options{})
	first, detachFirst := o.Watch("hero")
	o.Report("hero", 1)
	require.True(t, first.Visible())

	second, detachSecond := o.Watch("hero")
	assert.False(t, second.Visible())

	// The stale detach must not remove the new subscription.
	detachFirst()
	assert.Equal(t, []string{"hero"}, o.Watching())

	assert.True(t, o.Report("hero", 1))
	assert.True(t, second.Visible())
	detachSecond()
	assert.Empty(t, o.Watching())
}

func TestUnsupportedFailsOpen(t *testing.T) {
	o := New(Options{Unsupported: true})
	l, detach := o.Watch("contact")
	defer detach()

	assert.True(t, l.Visible())
	assert.False(t, o.Report("contact", 1))
}

func TestUnknownReport(t *testing.T) {
	o := New(Options{})
	assert.False(t, o.Report("nowhere", 1))
}

func TestLatchClass(t *testing.T) {
	l := newLatch(DefaultThreshold)
	assert.Equal(t, "hidden", l.Class("shown", "hidden"))
	l.Open()
	assert.Equal(t, "shown", l.Class("shown", "hidden"))
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name                        string
		top, height, viewTop, viewH float64
		want                        float64
	}{
		{"fully inside", 10, 20, 0, 100, 1},
		{"below viewport", 120, 20, 0, 100, 0},
		{"above viewport", -50, 20, 0, 100, 0},
		{"touching bottom edge", 100, 20, 0, 100, 0},
		{"half visible", 90, 20, 0, 100, 0.5},
		{"taller than viewport", 0, 400, 100, 100, 0.25},
		{"scrolled viewport", 300, 50, 280, 40, 0.4},
		{"zero height", 10, 0, 0, 100, 0},
		{"zero viewport", 10, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.top, tt.height, tt.viewTop, tt.viewH), 1e-9)
		})
	}
}
