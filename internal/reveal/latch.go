// Package reveal tracks whether page elements have scrolled into view.
//
// Each observed element gets a Latch: a boolean that turns on the first time
// the element's intersection with the viewport exceeds a threshold and then
// stays on. Sections use it to play their entrance transition once.
package reveal

// Latch is a one-way visibility flag.
type Latch struct {
	threshold float64
	visible   bool
}

func newLatch(threshold float64) *Latch {
	return &Latch{threshold: threshold}
}

// Visible reports whether the element has been seen.
func (l *Latch) Visible() bool {
	return l.visible
}

// Offer feeds an intersection ratio to the latch. It returns true only on the
// call that turns the latch on.
func (l *Latch) Offer(ratio float64) bool {
	if l.visible || ratio <= 0 || ratio <= l.threshold {
		return false
	}
	l.visible = true
	return true
}

// Open turns the latch on unconditionally.
func (l *Latch) Open() {
	l.visible = true
}

// Class picks between the shown and hidden class sets.
func (l *Latch) Class(shown, hidden string) string {
	if l.visible {
		return shown
	}
	return hidden
}
