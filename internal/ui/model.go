package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"verse-tui/internal/dataset"
	"verse-tui/internal/history"
	"verse-tui/internal/input"
	"verse-tui/internal/render"
	"verse-tui/internal/session"
	"verse-tui/internal/theme"
)

const loadingText = "Loading scriptures..."

type viewMode int

const (
	modeLoading viewMode = iota
	modeReader
	modeMenu
	modeFailed
)

// Loader retrieves and parses the dataset.
type Loader interface {
	Load(ctx context.Context, source string) (*dataset.Store, error)
}

// Options configures a Model.
type Options struct {
	Source       string
	FetchTimeout time.Duration
	Config       theme.Config
	Random       history.RandomSource
	RowHeight    int
	Loader       Loader
	Logger       *zap.Logger
}

type Model struct {
	loader  Loader
	source  string
	timeout time.Duration
	random  history.RandomSource
	logger  *zap.Logger

	session  *session.Session
	renderer *render.Renderer
	tracker  *input.Tracker

	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	swatches []theme.Swatch
	selected int

	mode   viewMode
	width  int
	height int
	ready  bool
	err    error
}

type storeLoadedMsg struct{ store *dataset.Store }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Loader == nil {
		opts.Loader = dataset.NewFetcher()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	r := render.New()
	r.ShowMessage(loadingText)

	return Model{
		loader:   opts.Loader,
		source:   opts.Source,
		timeout:  opts.FetchTimeout,
		random:   opts.Random,
		logger:   opts.Logger,
		session:  session.New(opts.Config),
		renderer: r,
		tracker:  input.NewTracker(opts.RowHeight),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  sp,
		swatches: theme.Swatches(),
		mode:     modeLoading,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadStore(m.loader, m.source, m.timeout, m.logger),
	)
}

func loadStore(loader Loader, source string, timeout time.Duration, logger *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		logger.Debug("loading dataset", zap.String("source", source))
		store, err := loader.Load(ctx, source)
		if err != nil {
			return errMsg{err}
		}
		if store.Truncated != nil {
			logger.Warn("dataset truncated at malformed row",
				zap.Int("passages", store.Len()),
				zap.Error(store.Truncated))
		}
		return storeLoadedMsg{store}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeReader:
			return m.updateReader(msg)
		case modeMenu:
			return m.updateMenu(msg)
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if m.mode != modeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.renderer.ShowMessage(m.spinner.View() + " " + loadingText)
		return m, cmd

	case storeLoadedMsg:
		m.session.Start(msg.store, m.random)
		m.mode = modeReader
		m.logger.Info("dataset loaded",
			zap.String("source", m.source),
			zap.Int("passages", msg.store.Len()))
		cmd := m.next()
		return m, cmd

	case errMsg:
		m.err = msg.err
		m.mode = modeFailed
		m.renderer.ShowMessage(dataset.Message(msg.err))
		m.logger.Error("dataset load failed",
			zap.String("source", m.source),
			zap.Bool("empty", errors.Is(msg.err, dataset.ErrEmpty)),
			zap.Error(msg.err))
		return m, nil

	case render.DoneMsg:
		if !m.renderer.Complete(msg) {
			m.logger.Debug("discarded stale render", zap.Uint64("token", msg.Token))
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateReader(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		cmd := m.next()
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.prev()
		return m, cmd
	case key.Matches(msg, m.keys.Menu):
		m.toggleMenu()
	default:
		m.updateFont(msg)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.swatches)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Select):
		m.applySwatch(m.selected)
	case key.Matches(msg, m.keys.Close):
		m.toggleMenu()
	default:
		m.updateFont(msg)
	}
	return m, nil
}

func (m *Model) updateFont(msg tea.KeyMsg) {
	cfg := &m.session.Config
	switch {
	case key.Matches(msg, m.keys.Larger):
		cfg.IncreaseFontSize()
	case key.Matches(msg, m.keys.Smaller):
		cfg.DecreaseFontSize()
	case key.Matches(msg, m.keys.NextFont):
		cfg.NextFontFamily()
	default:
		return
	}
	m.logger.Debug("font changed",
		zap.String("family", cfg.FontFamily),
		zap.Int("size", cfg.FontSize))
}

// updateMouse treats a left-button drag as a vertical swipe. A tap on the
// header row is a press of the menu button.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeReader && m.mode != modeMenu {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.tracker.Start(msg.Y)
		case tea.MouseButtonWheelDown:
			if m.mode == modeReader {
				cmd := m.next()
				return m, cmd
			}
		case tea.MouseButtonWheelUp:
			if m.mode == modeReader {
				cmd := m.prev()
				return m, cmd
			}
		}

	case tea.MouseActionRelease:
		if !m.tracker.Pressed() {
			return m, nil
		}
		startY := m.tracker.StartY()
		dir, delta := m.tracker.End(msg.Y)
		m.logger.Debug("gesture", zap.Int("delta", delta), zap.Stringer("direction", dir))

		if dir == input.None {
			if startY == 0 && msg.Y == 0 {
				m.toggleMenu()
			}
			return m, nil
		}
		if m.mode != modeReader {
			return m, nil
		}
		var cmd tea.Cmd
		if dir == input.Next {
			cmd = m.next()
		} else {
			cmd = m.prev()
		}
		return m, cmd
	}

	return m, nil
}

func (m *Model) next() tea.Cmd {
	p := m.session.Next()
	m.logNav("advance")
	return m.renderer.Begin(p)
}

func (m *Model) prev() tea.Cmd {
	p, ok := m.session.Prev()
	if !ok {
		return nil
	}
	m.logNav("retreat")
	return m.renderer.Begin(p)
}

func (m *Model) logNav(op string) {
	nav := m.session.Navigator()
	idx, _ := nav.Current()
	m.logger.Debug(op,
		zap.Int("index", idx),
		zap.Int("cursor", nav.Cursor()),
		zap.Int("history", nav.Len()))
}

func (m *Model) toggleMenu() {
	if m.mode == modeMenu {
		m.mode = modeReader
		return
	}
	m.mode = modeMenu
	m.selected = 0
	for i, s := range m.swatches {
		if s.Background == m.session.Config.Background && s.Text == m.session.Config.Text {
			m.selected = i
			break
		}
	}
}

func (m *Model) applySwatch(i int) {
	s := m.swatches[i]
	m.session.Config.ApplySwatch(s)
	m.mode = modeReader
	m.logger.Info("theme changed", zap.String("theme", s.Slug))
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	cfg := m.session.Config
	layout := render.Layout{
		Width:  m.width,
		Height: m.height,
	}

	switch m.mode {
	case modeReader:
		layout.Footer = m.help.View(readerHelp(m.keys))
	case modeMenu:
		layout.Panel = render.Panel(cfg, m.width, m.swatches, m.selected)
		layout.Footer = m.help.View(menuHelp(m.keys))
	case modeFailed:
		layout.Footer = "q: quit"
	}

	return m.renderer.View(cfg, layout)
}
