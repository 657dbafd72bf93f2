package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatch is a selectable background and text color pair.
type Swatch struct {
	Name       string
	Slug       string
	Background lipgloss.Color
	Text       lipgloss.Color
	Accent     lipgloss.Color
}

// Available swatches
var (
	Midnight = Swatch{
		Name:       "Midnight",
		Slug:       "midnight",
		Background: lipgloss.Color("#1a1a2e"),
		Text:       lipgloss.Color("#eeeeee"),
		Accent:     lipgloss.Color("#e94560"),
	}

	Parchment = Swatch{
		Name:       "Parchment",
		Slug:       "parchment",
		Background: lipgloss.Color("#f4ecd8"),
		Text:       lipgloss.Color("#3b2f2f"),
		Accent:     lipgloss.Color("#8b5e34"),
	}

	CatppuccinMocha = Swatch{
		Name:       "Catppuccin Mocha",
		Slug:       "catppuccin-mocha",
		Background: lipgloss.Color("#1e1e2e"),
		Text:       lipgloss.Color("#cdd6f4"),
		Accent:     lipgloss.Color("#f5c2e7"),
	}

	CatppuccinLatte = Swatch{
		Name:       "Catppuccin Latte",
		Slug:       "catppuccin-latte",
		Background: lipgloss.Color("#eff1f5"),
		Text:       lipgloss.Color("#4c4f69"),
		Accent:     lipgloss.Color("#ea76cb"),
	}

	Dracula = Swatch{
		Name:       "Dracula",
		Slug:       "dracula",
		Background: lipgloss.Color("#282a36"),
		Text:       lipgloss.Color("#f8f8f2"),
		Accent:     lipgloss.Color("#ff79c6"),
	}

	RosePineMoon = Swatch{
		Name:       "Rosé Pine Moon",
		Slug:       "rosepine-moon",
		Background: lipgloss.Color("#232136"),
		Text:       lipgloss.Color("#e0def4"),
		Accent:     lipgloss.Color("#ebbcba"),
	}

	SolarizedDark = Swatch{
		Name:       "Solarized Dark",
		Slug:       "solarized-dark",
		Background: lipgloss.Color("#002b36"),
		Text:       lipgloss.Color("#839496"),
		Accent:     lipgloss.Color("#d33682"),
	}

	SolarizedLight = Swatch{
		Name:       "Solarized Light",
		Slug:       "solarized-light",
		Background: lipgloss.Color("#fdf6e3"),
		Text:       lipgloss.Color("#657b83"),
		Accent:     lipgloss.Color("#d33682"),
	}
)

// Swatches returns every selectable swatch in menu order
func Swatches() []Swatch {
	return []Swatch{
		Midnight,
		Parchment,
		CatppuccinMocha,
		CatppuccinLatte,
		Dracula,
		RosePineMoon,
		SolarizedDark,
		SolarizedLight,
	}
}

// Lookup finds a swatch by slug or display name.
func Lookup(name string) (Swatch, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Swatches() {
		if s.Slug == name || strings.ToLower(s.Name) == name {
			return s, true
		}
	}
	return Swatch{}, false
}
