package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewer's key bindings
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Menu     key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Close    key.Binding
	Larger   key.Binding
	Smaller  key.Binding
	NextFont key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("j", "down", " "),
			key.WithHelp("j/space", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "back"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply theme"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc", "close"),
		),
		Larger: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "larger"),
		),
		Smaller: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "smaller"),
		),
		NextFont: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "font"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// readerHelp is the help.KeyMap shown while reading.
type readerHelp KeyMap

func (k readerHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Menu, k.Larger, k.Smaller, k.NextFont, k.Quit}
}

func (k readerHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// menuHelp is the help.KeyMap shown while the settings panel is open.
type menuHelp KeyMap

func (k menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close, k.Larger, k.Smaller, k.NextFont}
}

func (k menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
