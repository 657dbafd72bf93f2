package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"verse-tui/internal/logger"
	"verse-tui/internal/settings"
	"verse-tui/internal/ui"
)

type flags struct {
	configPath string
	theme      string
	font       string
	fontSize   int
	seed       uint64
	rowHeight  int
	timeout    time.Duration
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(run)
}

func buildRootCmd(runner func(settings.Settings, *flags) error) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "verse-tui [source]",
		Short: "Show random scripture passages in the terminal",
		Long: `verse-tui shows one scripture passage at a time from a CSV file with
the columns text, book, chapter and verse. The source may be a local path or
an http(s) URL and defaults to ./scriptures.csv.

Controls:
  j/space, drag up     - Next passage
  k, drag down         - Previous passage
  m, click header      - Theme menu
  +/-                  - Font size
  f                    - Font family
  q                    - Quit`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, f, args)
			if err != nil {
				return err
			}
			return runner(s, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/verse-tui/config.toml)")
	fs.StringVar(&f.theme, "theme", "", "initial theme swatch")
	fs.StringVar(&f.font, "font", "", "initial font family (Georgia, Helvetica, Courier)")
	fs.IntVar(&f.fontSize, "font-size", 0, "initial font size (minimum 12)")
	fs.Uint64Var(&f.seed, "seed", 0, "seed for passage selection (0 = random)")
	fs.IntVar(&f.rowHeight, "row-height", 0, "swipe units per terminal row")
	fs.DurationVar(&f.timeout, "timeout", 0, "dataset fetch timeout")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolveSettings layers flags over the config file over defaults.
func resolveSettings(cmd *cobra.Command, f *flags, args []string) (settings.Settings, error) {
	path := f.configPath
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return settings.Settings{}, fmt.Errorf("locate config: %w", err)
		}
	}

	s, err := settings.Load(path)
	if err != nil {
		return settings.Settings{}, err
	}

	fs := cmd.Flags()
	if len(args) == 1 {
		s.Source = args[0]
	}
	if fs.Changed("theme") {
		s.Theme = f.theme
	}
	if fs.Changed("font") {
		s.FontFamily = f.font
	}
	if fs.Changed("font-size") {
		s.FontSize = f.fontSize
	}
	if fs.Changed("seed") {
		s.Seed = f.seed
	}
	if fs.Changed("row-height") {
		s.RowHeight = f.rowHeight
	}
	if fs.Changed("timeout") {
		s.FetchTimeout = settings.Duration{Duration: f.timeout}
	}

	return s, s.Validate()
}

func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func run(s settings.Settings, f *flags) error {
	log, err := logger.New(f.logFile, f.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("source", s.Source),
		zap.String("theme", s.Theme),
		zap.String("font", s.FontFamily),
		zap.Int("font_size", s.FontSize),
		zap.Uint64("seed", s.Seed))

	m := ui.NewModel(ui.Options{
		Source:       s.Source,
		FetchTimeout: s.FetchTimeout.Duration,
		Config:       s.PresentationConfig(),
		Random:       newRandom(s.Seed),
		RowHeight:    s.RowHeight,
		Logger:       log,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}
