package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		delta int
		want  Direction
	}{
		{51, Next},
		{50, None},
		{0, None},
		{-50, None},
		{-51, Prev},
		{400, Next},
		{-400, Prev},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.delta), "delta %d", tt.delta)
	}
}

func TestTracker(t *testing.T) {
	tr := NewTracker(20)

	tr.Start(10)
	assert.True(t, tr.Pressed())
	dir, delta := tr.End(7)
	assert.Equal(t, Next, dir)
	assert.Equal(t, 60, delta)
	assert.False(t, tr.Pressed())

	tr.Start(10)
	dir, _ = tr.End(13)
	assert.Equal(t, Prev, dir)

	// Two rows is 40 units: inside the dead zone.
	tr.Start(10)
	dir, delta = tr.End(12)
	assert.Equal(t, None, dir)
	assert.Equal(t, -40, delta)
}

func TestTracker_ReleaseWithoutPress(t *testing.T) {
	tr := NewTracker(0)
	assert.Equal(t, DefaultRowHeight, tr.RowHeight)

	dir, delta := tr.End(3)
	assert.Equal(t, None, dir)
	assert.Equal(t, 0, delta)
}

func TestTracker_UnitRowHeight(t *testing.T) {
	tr := NewTracker(1)
	tr.Start(51)
	dir, _ := tr.End(0)
	assert.Equal(t, Next, dir)

	tr.Start(50)
	dir, _ = tr.End(0)
	assert.Equal(t, None, dir)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "next", Next.String())
	assert.Equal(t, "prev", Prev.String())
	assert.Equal(t, "none", None.String())
}
