// Package settings reads the startup defaults of the viewer. Changes made
// while the viewer runs are never written back.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"verse-tui/internal/dataset"
	"verse-tui/internal/input"
	"verse-tui/internal/theme"
)

const DefaultFetchTimeout = 15 * time.Second

type Settings struct {
	Source       string   `toml:"source"`
	Theme        string   `toml:"theme"`
	FontFamily   string   `toml:"font_family"`
	FontSize     int      `toml:"font_size"`
	Seed         uint64   `toml:"seed"` // 0 = random
	RowHeight    int      `toml:"row_height"`
	FetchTimeout Duration `toml:"fetch_timeout"`
}

// Duration reads TOML strings such as "10s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func Default() Settings {
	return Settings{
		Source:       dataset.DefaultSource,
		Theme:        theme.Midnight.Slug,
		FontFamily:   theme.FontFamilies[0],
		FontSize:     theme.DefaultFontSize,
		RowHeight:    input.DefaultRowHeight,
		FetchTimeout: Duration{DefaultFetchTimeout},
	}
}

// DefaultPath is config.toml inside the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "verse-tui", "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		// No config = just use defaults
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, err
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return s, s.Validate()
}

// Validate rejects values the viewer cannot start with.
func (s Settings) Validate() error {
	if s.Source == "" {
		return errors.New("source must not be empty")
	}
	if s.FontSize < theme.MinFontSize {
		return fmt.Errorf("font_size %d is below the minimum of %d", s.FontSize, theme.MinFontSize)
	}
	if s.RowHeight <= 0 {
		return fmt.Errorf("row_height must be positive, got %d", s.RowHeight)
	}
	if s.FetchTimeout.Duration <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", s.FetchTimeout)
	}
	if _, ok := theme.Lookup(s.Theme); !ok {
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	return nil
}

// PresentationConfig builds the initial presentation state.
func (s Settings) PresentationConfig() theme.Config {
	cfg := theme.DefaultConfig()
	if sw, ok := theme.Lookup(s.Theme); ok {
		cfg.ApplySwatch(sw)
	}
	cfg.SetFontFamily(s.FontFamily)
	cfg.FontSize = max(theme.MinFontSize, s.FontSize)
	return cfg
}
