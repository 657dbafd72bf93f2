// Package theme holds the presentation state of the viewer: colors, font
// family and font size, plus the swatches a user can pick from.
package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

const (
	MinFontSize     = 12
	DefaultFontSize = 18
	FontStep        = 2

	primaryRatio = 1.3
	auxRatio     = 0.9
)

// FontFamilies lists the selectable families in cycle order.
var FontFamilies = []string{"Georgia", "Helvetica", "Courier"}

// Config is the user-adjustable presentation state. It is a value type so
// a color change is a single assignment.
type Config struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	FontFamily string
	FontSize   int
}

// Sizes are the display sizes derived from FontSize.
type Sizes struct {
	Primary float64
	Caption float64
	Aux     float64
}

func DefaultConfig() Config {
	return Config{
		Background: Midnight.Background,
		Text:       Midnight.Text,
		FontFamily: FontFamilies[0],
		FontSize:   DefaultFontSize,
	}
}

// SetTheme replaces both colors together.
func (c *Config) SetTheme(background, text lipgloss.Color) {
	*c = Config{
		Background: background,
		Text:       text,
		FontFamily: c.FontFamily,
		FontSize:   c.FontSize,
	}
}

// ApplySwatch is SetTheme with the colors of s.
func (c *Config) ApplySwatch(s Swatch) {
	c.SetTheme(s.Background, s.Text)
}

func (c *Config) IncreaseFontSize() {
	c.FontSize += FontStep
}

// DecreaseFontSize shrinks the font, never below MinFontSize.
func (c *Config) DecreaseFontSize() {
	c.FontSize = max(MinFontSize, c.FontSize-FontStep)
}

// SetFontFamily sets the family. Unknown names fall back to the first
// family.
func (c *Config) SetFontFamily(name string) {
	for _, f := range FontFamilies {
		if f == name {
			c.FontFamily = f
			return
		}
	}
	c.FontFamily = FontFamilies[0]
}

// NextFontFamily cycles to the following family.
func (c *Config) NextFontFamily() {
	for i, f := range FontFamilies {
		if f == c.FontFamily {
			c.FontFamily = FontFamilies[(i+1)%len(FontFamilies)]
			return
		}
	}
	c.FontFamily = FontFamilies[0]
}

// Derived computes the display sizes. The ratios are fixed.
func (c Config) Derived() Sizes {
	size := float64(c.FontSize)
	return Sizes{
		Primary: size * primaryRatio,
		Caption: size,
		Aux:     size * auxRatio,
	}
}

// FontStyle maps the font family onto terminal text attributes.
func (c Config) FontStyle(base lipgloss.Style) lipgloss.Style {
	switch c.FontFamily {
	case "Georgia":
		return base.Italic(true)
	case "Courier":
		return base.Bold(true)
	default:
		return base
	}
}

// WrapWidth scales a surface width for a text size: the default size uses
// the full width and larger sizes wrap proportionally narrower.
func WrapWidth(surface int, size float64) int {
	if surface <= 0 || size <= 0 {
		return 0
	}
	ref := float64(DefaultFontSize) * primaryRatio
	w := int(math.Round(float64(surface) * ref / size))
	return max(1, min(surface, w))
}
