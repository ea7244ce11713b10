package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tharunr07/folio/internal/particle"
)

func newTestApp(t *testing.T, opts Options) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	opts.Logger = log.New(io.Discard)
	opts.Seed = 7
	a := New(screen, opts)
	a.mount(time.Now())
	return a, screen
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenHas(s tcell.Screen, text string) bool {
	_, h := s.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(s, y), text) {
			return true
		}
	}
	return false
}

func TestAppFirstFrameRevealsHeroOnly(t *testing.T) {
	a, screen := newTestApp(t, Options{})
	a.frame(time.Now())

	assert.True(t, a.latches["hero-badge"].Visible())
	assert.True(t, a.latches["hero-name"].Visible())
	assert.False(t, a.latches["contact-header"].Visible())
	assert.True(t, screenHas(screen, "Hi, I'm Tharun R"))
	assert.False(t, screenHas(screen, "COMMUNICATION INTERFACE"))
}

func TestAppScrollRevealsAndNeverHides(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	a.frame(time.Now())

	assert.True(t, a.handle(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone)))
	a.frame(time.Now())
	assert.Positive(t, a.scroll)
	assert.True(t, a.latches["contact-links"].Visible())

	// Back at the top, blocks seen at the bottom stay revealed.
	a.handle(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	a.handle(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	a.frame(time.Now())
	assert.Zero(t, a.scroll)
	assert.True(t, a.latches["contact-links"].Visible())
	assert.True(t, a.latches["hero-badge"].Visible())
}

func TestAppScrollClamps(t *testing.T) {
	a, _ := newTestApp(t, Options{})

	a.handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Zero(t, a.scroll)

	for i := 0; i < 1000; i++ {
		a.handle(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	}
	assert.Equal(t, documentHeight(a.blocks)-a.viewRows(), a.scroll)
}

func TestAppQuitKeys(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	assert.False(t, a.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, a.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, a.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.True(t, a.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestAppResizeRegeneratesField(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	require.NotNil(t, a.field)
	assert.Equal(t, particle.Count(80*cellW, 24*cellH, particle.DefaultDensity), a.field.Len())

	a.handle(tcell.NewEventResize(120, 40))
	assert.Equal(t, 120*cellW, a.field.Width())
	assert.Equal(t, 40*cellH, a.field.Height())
	assert.Equal(t, particle.Count(120*cellW, 40*cellH, particle.DefaultDensity), a.field.Len())

	a.handle(tcell.NewEventResize(0, 0))
	assert.Nil(t, a.field)
	a.frame(time.Now())
	assert.Zero(t, a.particleCount())
}

func TestAppMouseSetsPointer(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	before := append([]particle.Particle(nil), a.field.Particles()...)

	a.handle(tcell.NewEventMouse(40, 12, tcell.ButtonNone, tcell.ModNone))
	a.field.Step()

	// Every particle within reach of the pointer moved toward it.
	px, py := toField(40, 12)
	for i, p := range a.field.Particles() {
		b := before[i]
		dx, dy := px-b.X, py-b.Y
		d2 := dx*dx + dy*dy
		if d2 == 0 || d2 >= particle.AttractRadius*particle.AttractRadius {
			continue
		}
		moved := (p.VX-b.VX*particle.Damping)*dx + (p.VY-b.VY*particle.Damping)*dy
		assert.GreaterOrEqual(t, moved, -1e-9)
	}
}

func TestAppFieldOnly(t *testing.T) {
	a, screen := newTestApp(t, Options{FieldOnly: true, Variant: particle.Grid})
	a.frame(time.Now())

	assert.False(t, screenHas(screen, "Tharun"))
	assert.Contains(t, rowText(screen, 23), "particles")
	assert.Equal(t, particle.Grid, a.field.Variant())
}

func TestAppUnmountDetaches(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	require.NotEmpty(t, a.obs.Watching())
	a.unmount()
	assert.Empty(t, a.obs.Watching())
}

func runApp(t *testing.T, ctx context.Context, opts Options) (*App, tcell.SimulationScreen, <-chan error) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	opts.Logger = log.New(io.Discard)
	opts.FrameInterval = time.Millisecond
	a := New(screen, opts)

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	select {
	case <-a.Ready():
	case err := <-done:
		t.Fatalf("run exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("app never became ready")
	}
	return a, screen, done
}

func wait(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, screen, done := runApp(t, context.Background(), Options{})
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	wait(t, done)

	assert.Positive(t, a.frames)
	assert.Empty(t, a.obs.Watching())
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	_, _, done := runApp(t, ctx, Options{})
	cancel()
	wait(t, done)
}
