// Package tui browses the portfolio in a terminal. The particle field runs
// behind the text, pulled toward the mouse, and each block of the page
// reveals itself the first time it scrolls into view.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tharunr07/folio/internal/content"
	"github.com/tharunr07/folio/internal/particle"
	"github.com/tharunr07/folio/internal/reveal"
)

const defaultFrameInterval = 16 * time.Millisecond // ~60 FPS

type Options struct {
	Site          *content.Site
	Density       float64
	Variant       particle.Variant
	Seed          int64
	FrameInterval time.Duration
	// FieldOnly draws the particle field without the page text.
	FieldOnly bool
	Logger    *log.Logger
}

// App owns the screen and all animation state. Everything but the event pump
// runs on the goroutine that called Run.
type App struct {
	screen tcell.Screen
	opts   Options
	log    *log.Logger

	field  *particle.Field
	raster raster

	obs     *reveal.Observer
	latches map[string]*reveal.Latch
	detach  []func()
	blocks  []block
	tw      *Typewriter

	cols, rows int
	scroll     int
	frames     int

	ready chan struct{}
}

func New(screen tcell.Screen, opts Options) *App {
	if opts.Site == nil {
		opts.Site = content.Default()
	}
	if opts.Density <= 0 {
		opts.Density = particle.DefaultDensity
	}
	if opts.Variant == "" {
		opts.Variant = particle.Neural
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaultFrameInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &App{
		screen:  screen,
		opts:    opts,
		log:     opts.Logger,
		latches: make(map[string]*reveal.Latch),
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the screen is up and the first frame is drawn.
func (a *App) Ready() <-chan struct{} {
	return a.ready
}

// Run draws frames until the user quits or ctx is cancelled. The screen is
// restored and the event pump joined before it returns.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	a.screen.EnableMouse()
	a.screen.HideCursor()

	a.mount(time.Now())

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	var pump errgroup.Group
	pump.Go(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-quit:
				return nil
			}
		}
	})

	a.frame(time.Now())
	close(a.ready)
	a.loop(ctx, events)

	close(quit)
	a.screen.Fini()
	err := pump.Wait()
	a.unmount()

	a.log.Debug("browse finished", "frames", a.frames, "revealed", a.revealed(), "particles", a.particleCount())
	return err
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) {
	ticker := time.NewTicker(a.opts.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !a.handle(ev) {
				return
			}
		case now := <-ticker.C:
			a.frame(now)
		}
	}
}

// mount sizes the field and layout to the screen and attaches a latch to
// every block of the page.
func (a *App) mount(now time.Time) {
	a.obs = reveal.New(reveal.Options{})
	cols, rows := a.screen.Size()
	a.resize(cols, rows)
	for _, b := range a.blocks {
		l, detach := a.obs.Watch(b.id)
		a.latches[b.id] = l
		a.detach = append(a.detach, detach)
	}
	a.tw = NewTypewriter(a.opts.Site.Hero.Taglines, now)
}

func (a *App) unmount() {
	for _, d := range a.detach {
		d()
	}
	a.detach = nil
}

// resize regenerates the field for the new surface and reflows the text.
// Latches survive: a block already seen stays visible.
func (a *App) resize(cols, rows int) {
	a.cols, a.rows = cols, rows
	w, h := float64(cols)*cellW, float64(rows)*cellH

	switch {
	case cols <= 0 || rows <= 0:
		a.field = nil
	case a.field == nil:
		f, err := particle.New(particle.Config{
			Width:   w,
			Height:  h,
			Density: a.opts.Density,
			Variant: a.opts.Variant,
			Seed:    a.opts.Seed,
		})
		if err == nil {
			a.field = f
		}
	default:
		a.field.Resize(w, h)
	}

	a.blocks = layout(a.opts.Site, columnWidth(cols))
	a.scrollBy(0)
}

func (a *App) viewRows() int {
	return max(a.rows-1, 0)
}

func (a *App) scrollBy(n int) {
	limit := max(documentHeight(a.blocks)-a.viewRows(), 0)
	a.scroll = min(max(a.scroll+n, 0), limit)
}

// handle applies one input event. It returns false when the user quits.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			a.scrollBy(1)
		case tcell.KeyUp:
			a.scrollBy(-1)
		case tcell.KeyPgDn:
			a.scrollBy(a.viewRows() - 1)
		case tcell.KeyPgUp:
			a.scrollBy(-(a.viewRows() - 1))
		case tcell.KeyHome:
			a.scrollBy(-a.scroll)
		case tcell.KeyEnd:
			a.scrollBy(documentHeight(a.blocks))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'j':
				a.scrollBy(1)
			case 'k':
				a.scrollBy(-1)
			case ' ':
				a.scrollBy(a.viewRows() - 1)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		if a.field != nil {
			a.field.SetPointer(toField(x, y))
		}
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			a.scrollBy(-3)
		case ev.Buttons()&tcell.WheelDown != 0:
			a.scrollBy(3)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize(ev.Size())
	}
	return true
}

// frame advances the field one step, updates visibility and redraws.
func (a *App) frame(now time.Time) {
	a.frames++
	if a.field != nil {
		a.field.Step()
	}
	a.observe()
	a.draw(now)
}

// observe reports each block's share of the viewport to the observer.
func (a *App) observe() {
	view := float64(a.viewRows())
	for _, b := range a.blocks {
		ratio := reveal.Ratio(float64(b.top), float64(b.height()), float64(a.scroll), view)
		a.obs.Report(b.id, ratio)
	}
}

func (a *App) draw(now time.Time) {
	s := a.screen
	s.Clear()

	a.raster.paint(a.field, a.cols, a.viewRows())
	a.raster.blit(s, a.opts.Variant.Color())

	tagline := a.tw.Advance(now)
	if !a.opts.FieldOnly {
		w := columnWidth(a.cols)
		x0 := max((a.cols-w)/2, 0)
		for _, b := range a.blocks {
			if l := a.latches[b.id]; l == nil || !l.Visible() {
				continue
			}
			for i, ln := range b.lines {
				y := b.top + i - a.scroll
				if y < 0 || y >= a.viewRows() {
					continue
				}
				text := ln.text
				if ln.typewriter {
					text = clip(tagline+"▌", w)
				}
				drawText(s, x0, y, text, ln.style)
			}
		}
	}

	a.drawStatus()
	s.Show()
}

func (a *App) drawStatus() {
	if a.rows == 0 {
		return
	}
	y := a.rows - 1
	for x := 0; x < a.cols; x++ {
		a.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	status := fmt.Sprintf(" q quit · j/k scroll · %d particles", a.particleCount())
	if !a.opts.FieldOnly {
		if h := documentHeight(a.blocks); h > 0 {
			status += fmt.Sprintf(" · %d%%", min(100, (a.scroll+a.viewRows())*100/h))
		}
	}
	drawText(a.screen, 0, y, status, styleStatus)
}

func (a *App) particleCount() int {
	if a.field == nil {
		return 0
	}
	return a.field.Len()
}

func (a *App) revealed() int {
	n := 0
	for _, l := range a.latches {
		if l.Visible() {
			n++
		}
	}
	return n
}
