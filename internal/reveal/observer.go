package reveal

import "sort"

const DefaultThreshold = 0.1

type Options struct {
	// Threshold is the intersection ratio that must be exceeded. Zero uses
	// DefaultThreshold; a negative value means any positive ratio.
	Threshold float64
	// Unsupported builds an observer for hosts that cannot report
	// intersections. Its latches start visible so content is never hidden.
	Unsupported bool
}

// Observer hands out latches for elements and routes intersection reports to
// them. It is owned by one goroutine.
type Observer struct {
	threshold   float64
	unsupported bool
	watched     map[string]*Latch
}

func New(opts Options) *Observer {
	th := opts.Threshold
	switch {
	case th == 0:
		th = DefaultThreshold
	case th < 0:
		th = 0
	}
	return &Observer{
		threshold:   th,
		unsupported: opts.Unsupported,
		watched:     make(map[string]*Latch),
	}
}

func (o *Observer) Threshold() float64 { return o.threshold }

// Watch attaches a fresh latch to id and returns it with the function that
// detaches it. Watching an id again replaces the previous latch, which stops
// receiving reports.
func (o *Observer) Watch(id string) (*Latch, func()) {
	l := newLatch(o.threshold)
	if o.unsupported {
		l.Open()
	}
	o.watched[id] = l
	return l, func() {
		if o.watched[id] == l {
			delete(o.watched, id)
		}
	}
}

// Report delivers the current intersection ratio of id. It returns true when
// the report turned the element's latch on. Unknown ids are ignored.
func (o *Observer) Report(id string, ratio float64) bool {
	l, ok := o.watched[id]
	if !ok {
		return false
	}
	return l.Offer(ratio)
}

// Watching returns the ids with an attached latch, sorted.
func (o *Observer) Watching() []string {
	ids := make([]string, 0, len(o.watched))
	for id := range o.watched {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Ratio is the fraction of the span [top, top+height) that lies inside the
// viewport [viewTop, viewTop+viewHeight).
func Ratio(top, height, viewTop, viewHeight float64) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	lo := max(top, viewTop)
	hi := min(top+height, viewTop+viewHeight)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / height
}
