package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verse-tui/internal/dataset"
	"verse-tui/internal/theme"
)

var genesis = dataset.Passage{Text: "In the beginning", Book: "Genesis", Chapter: "1", Verse: "1"}
var john = dataset.Passage{Text: "Jesus wept.", Book: "John", Chapter: "11", Verse: "35"}

func TestBeginComplete(t *testing.T) {
	r := New()

	cmd := r.Begin(genesis)
	require.NotNil(t, cmd)
	assert.True(t, r.Transitioning())
	assert.Equal(t, "", r.Text(), "content must not swap before the delay")

	assert.True(t, r.Complete(DoneMsg{Token: r.Token()}))
	assert.False(t, r.Transitioning())
	assert.Equal(t, `"In the beginning"`, r.Text())
	assert.Equal(t, "Genesis 1:1", r.Caption())
}

func TestComplete_StaleTokenDiscarded(t *testing.T) {
	r := New()

	r.Begin(genesis)
	first := r.Token()
	r.Begin(john)

	assert.False(t, r.Complete(DoneMsg{Token: first}))
	assert.True(t, r.Transitioning())
	assert.Equal(t, "", r.Text())

	assert.True(t, r.Complete(DoneMsg{Token: r.Token()}))
	assert.Equal(t, "John 11:35", r.Caption())

	// A duplicate completion is a no-op.
	assert.False(t, r.Complete(DoneMsg{Token: r.Token()}))
}

func TestShowMessage_CancelsPending(t *testing.T) {
	r := New()
	r.Begin(genesis)
	pending := r.Token()

	r.ShowMessage("The scripture file is empty.")
	assert.False(t, r.Complete(DoneMsg{Token: pending}))
	assert.Equal(t, "The scripture file is empty.", r.Text())
	assert.Equal(t, "", r.Caption())
	assert.False(t, r.Transitioning())
}

func TestView_ContainsRegions(t *testing.T) {
	r := New()
	r.Begin(john)
	r.Complete(DoneMsg{Token: r.Token()})

	cfg := theme.DefaultConfig()
	out := r.View(cfg, Layout{Width: 80, Height: 20, Footer: "q quit"})

	assert.Contains(t, out, "Jesus wept.")
	assert.Contains(t, out, "John 11:35")
	assert.Contains(t, out, MenuLabel)
	assert.Contains(t, out, "Aa 18")
	assert.Contains(t, out, "q quit")

	cfg.IncreaseFontSize()
	assert.Contains(t, r.View(cfg, Layout{Width: 80, Height: 20}), "Aa 20")
}

func TestView_PanelReplacesBody(t *testing.T) {
	r := New()
	r.ShowMessage("hidden behind panel")

	cfg := theme.DefaultConfig()
	panel := Panel(cfg, 80, theme.Swatches(), 1)
	out := r.View(cfg, Layout{Width: 80, Height: 30, Panel: panel})

	assert.Contains(t, out, "Theme")
	assert.Contains(t, out, theme.Parchment.Name)
	assert.NotContains(t, out, "hidden behind panel")
}

func TestPanel_MarksSelection(t *testing.T) {
	cfg := theme.DefaultConfig()
	out := Panel(cfg, 80, theme.Swatches(), 2)

	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, ">") {
			marked = append(marked, line)
		}
	}
	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], theme.CatppuccinMocha.Name)
	assert.Contains(t, out, "Font: Georgia")
}

func TestNewStyles_WrapNarrowsWithSize(t *testing.T) {
	cfg := theme.DefaultConfig()
	small := NewStyles(cfg, 84).Primary.GetWidth()

	cfg.FontSize = 36
	large := NewStyles(cfg, 84).Primary.GetWidth()

	assert.Less(t, large, small)
}
