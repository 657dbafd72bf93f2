// Package history tracks which passages were shown this session and lets
// the viewer walk back and forward through them.
package history

import "fmt"

// RandomSource draws indices for new passages. *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Navigator owns the visit history and the cursor into it.
type Navigator struct {
	count   int
	rnd     RandomSource
	history []int
	cursor  int
}

// New returns a navigator over count passages with an empty history.
func New(count int, rnd RandomSource) *Navigator {
	return &Navigator{
		count:  count,
		rnd:    rnd,
		cursor: -1,
	}
}

// Advance moves forward. When the cursor sits before the tail the next
// visited index is replayed; otherwise a new index is drawn, appended and
// returned. Draws are independent and may repeat earlier indices.
func (n *Navigator) Advance() int {
	if n.cursor < len(n.history)-1 {
		n.cursor++
		return n.history[n.cursor]
	}

	if n.count <= 0 {
		panic("history: Advance called with no passages")
	}

	idx := n.rnd.IntN(n.count)
	if idx < 0 || idx >= n.count {
		panic(fmt.Sprintf("history: random source returned %d outside [0, %d)", idx, n.count))
	}

	n.history = append(n.history, idx)
	n.cursor = len(n.history) - 1
	return idx
}

// Retreat steps back one entry. At the start of history it does nothing
// and reports false.
func (n *Navigator) Retreat() (int, bool) {
	if n.cursor <= 0 {
		return -1, false
	}
	n.cursor--
	return n.history[n.cursor], true
}

// Current returns the index under the cursor.
func (n *Navigator) Current() (int, bool) {
	if n.cursor < 0 {
		return -1, false
	}
	return n.history[n.cursor], true
}

func (n *Navigator) Cursor() int { return n.cursor }

func (n *Navigator) Len() int { return len(n.history) }

// AtTail reports whether the next Advance draws a new passage.
func (n *Navigator) AtTail() bool { return n.cursor == len(n.history)-1 }

// History returns a copy of the visited indices.
func (n *Navigator) History() []int {
	return append([]int(nil), n.history...)
}
