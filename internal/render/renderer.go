// Package render draws the current passage with the presentation config
// and runs the two-phase swap transition.
package render

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"verse-tui/internal/dataset"
	"verse-tui/internal/theme"
)

// Delay is how long the swipe-out cue shows before the content swaps.
const Delay = 300 * time.Millisecond

// MenuLabel is the text of the menu button on the header row.
const MenuLabel = "≡ Menu"

// DoneMsg completes a transition started by Begin.
type DoneMsg struct {
	Token uint64
}

// Renderer owns the displayed frame. Every Begin supersedes earlier ones;
// completions carrying an older token are dropped.
type Renderer struct {
	delay         time.Duration
	token         uint64
	transitioning bool
	pending       dataset.Passage

	text    string
	caption string
}

func New() *Renderer {
	return &Renderer{delay: Delay}
}

// SetDelay overrides the transition delay.
func (r *Renderer) SetDelay(d time.Duration) {
	r.delay = d
}

// Begin starts a transition to p and returns the command that completes it.
func (r *Renderer) Begin(p dataset.Passage) tea.Cmd {
	r.token++
	r.transitioning = true
	r.pending = p

	token := r.token
	return tea.Tick(r.delay, func(time.Time) tea.Msg {
		return DoneMsg{Token: token}
	})
}

// Complete swaps in the pending passage. It reports false for a stale
// completion, which leaves the frame untouched.
func (r *Renderer) Complete(msg DoneMsg) bool {
	if msg.Token != r.token || !r.transitioning {
		return false
	}
	r.text = `"` + r.pending.Text + `"`
	r.caption = r.pending.Location()
	r.transitioning = false
	return true
}

// ShowMessage replaces the primary region with msg and abandons any
// pending transition.
func (r *Renderer) ShowMessage(msg string) {
	r.token++
	r.transitioning = false
	r.text = msg
	r.caption = ""
}

func (r *Renderer) Token() uint64 { return r.token }

func (r *Renderer) Transitioning() bool { return r.transitioning }

func (r *Renderer) Text() string { return r.text }

func (r *Renderer) Caption() string { return r.caption }

// Styles are the config-derived styles for every themed element.
type Styles struct {
	Surface   lipgloss.Style
	Primary   lipgloss.Style
	Caption   lipgloss.Style
	Aux       lipgloss.Style
	Panel     lipgloss.Style
	Selection lipgloss.Style
}

// NewStyles derives styles for a surface of the given width.
func NewStyles(cfg theme.Config, width int) Styles {
	sizes := cfg.Derived()
	inner := max(1, width-4)

	base := lipgloss.NewStyle().
		Foreground(cfg.Text).
		Background(cfg.Background)

	return Styles{
		Surface: base,
		Primary: cfg.FontStyle(base).
			Width(theme.WrapWidth(inner, sizes.Primary)).
			Align(lipgloss.Center),
		Caption: base.
			Width(theme.WrapWidth(inner, sizes.Caption)).
			Align(lipgloss.Center).
			Faint(true),
		Aux: base,
		Panel: base.
			Width(min(40, theme.WrapWidth(inner, sizes.Aux))).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cfg.Text).
			BorderBackground(cfg.Background).
			Padding(0, 1),
		Selection: base.Reverse(true),
	}
}

// Layout carries what the caller adds around the passage.
type Layout struct {
	Width  int
	Height int
	Panel  string
	Footer string
}

// View draws the full screen, reapplying cfg to every element.
func (r *Renderer) View(cfg theme.Config, l Layout) string {
	st := NewStyles(cfg, l.Width)

	indicator := st.Aux.Render(fmt.Sprintf("Aa %d", cfg.FontSize))
	menu := st.Aux.Render(MenuLabel)
	gap := max(1, l.Width-lipgloss.Width(menu)-lipgloss.Width(indicator))
	header := menu + st.Surface.Render(strings.Repeat(" ", gap)) + indicator

	primary := st.Primary
	if r.transitioning {
		primary = primary.Faint(true)
	}

	body := primary.Render(r.text)
	if r.caption != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, "", st.Caption.Render(r.caption))
	}
	if l.Panel != "" {
		body = l.Panel
	}

	footer := ""
	footerHeight := 0
	if l.Footer != "" {
		footer = st.Aux.Render(l.Footer)
		footerHeight = lipgloss.Height(footer)
	}

	bodyHeight := max(1, l.Height-1-footerHeight)
	body = lipgloss.Place(l.Width, bodyHeight, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(cfg.Background))

	parts := []string{header, body}
	if footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Panel draws the settings panel: swatches with the selected one
// highlighted, then the font controls.
func Panel(cfg theme.Config, width int, swatches []theme.Swatch, selected int) string {
	st := NewStyles(cfg, width)

	var sb strings.Builder
	sb.WriteString(st.Aux.Bold(true).Render("Theme"))
	sb.WriteString("\n")
	for i, s := range swatches {
		chip := lipgloss.NewStyle().Background(s.Background).Foreground(s.Text).Render(" Aa ")
		line := fmt.Sprintf("%s %s", chip, s.Name)
		if i == selected {
			line = st.Selection.Render("> ") + line
		} else {
			line = st.Aux.Render("  ") + line
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(st.Aux.Render(fmt.Sprintf("Font: %s  Size: %d", cfg.FontFamily, cfg.FontSize)))

	return st.Panel.Render(sb.String())
}
