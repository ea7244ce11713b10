package tui

import "time"

const (
	typeDelay  = 50 * time.Millisecond
	holdDelay  = 2 * time.Second
	eraseDelay = 30 * time.Millisecond
)

// Typewriter cycles through taglines, typing each one out, holding it and
// erasing it again.
type Typewriter struct {
	lines  []string
	idx    int
	shown  int
	typing bool
	next   time.Time
}

func NewTypewriter(lines []string, now time.Time) *Typewriter {
	return &Typewriter{lines: lines, typing: true, next: now}
}

// Advance catches up to now and returns the visible text.
func (t *Typewriter) Advance(now time.Time) string {
	if len(t.lines) == 0 {
		return ""
	}
	for !now.Before(t.next) {
		t.next = t.next.Add(t.tick())
	}
	return t.Text()
}

func (t *Typewriter) Text() string {
	if len(t.lines) == 0 {
		return ""
	}
	return string([]rune(t.lines[t.idx])[:t.shown])
}

// tick applies one transition and returns the delay before the next one.
func (t *Typewriter) tick() time.Duration {
	line := []rune(t.lines[t.idx])
	switch {
	case t.typing && t.shown < len(line):
		t.shown++
		if t.shown == len(line) {
			return holdDelay
		}
		return typeDelay
	case t.typing:
		t.typing = false
		return eraseDelay
	case t.shown > 0:
		t.shown--
		return eraseDelay
	default:
		t.idx = (t.idx + 1) % len(t.lines)
		t.typing = true
		return typeDelay
	}
}
