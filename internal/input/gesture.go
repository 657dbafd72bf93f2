// Package input turns raw pointer gestures into navigation directions.
package input

const (
	// SwipeThreshold is the minimum travel, in surface units, that counts
	// as a swipe. Shorter travel is a tap.
	SwipeThreshold = 50

	// DefaultRowHeight converts one terminal row into surface units.
	DefaultRowHeight = 20
)

type Direction int

const (
	None Direction = iota
	Next
	Prev
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	default:
		return "none"
	}
}

// Classify maps a vertical delta (start minus end) to a direction.
// Upward travel beyond the threshold is Next, downward is Prev.
func Classify(delta int) Direction {
	switch {
	case delta > SwipeThreshold:
		return Next
	case delta < -SwipeThreshold:
		return Prev
	default:
		return None
	}
}

// Tracker follows one press/release pair.
type Tracker struct {
	RowHeight int

	startY  int
	pressed bool
}

func NewTracker(rowHeight int) *Tracker {
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	return &Tracker{RowHeight: rowHeight}
}

// Start records the row where the press began.
func (t *Tracker) Start(y int) {
	t.startY = y
	t.pressed = true
}

// Pressed reports whether a gesture is in progress.
func (t *Tracker) Pressed() bool { return t.pressed }

// StartY is the row of the pending press.
func (t *Tracker) StartY() int { return t.startY }

// End finishes the gesture at row y and returns its direction along with
// the delta in surface units. A release without a press is None.
func (t *Tracker) End(y int) (Direction, int) {
	if !t.pressed {
		return None, 0
	}
	t.pressed = false
	delta := (t.startY - y) * t.RowHeight
	return Classify(delta), delta
}
