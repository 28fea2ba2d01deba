package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the browse screen.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Filter   key.Binding
	Generate key.Binding
	Remove   key.Binding
	Force    key.Binding
	Preview  key.Binding
	Escape   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generate"),
		),
		Remove: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "remove"),
		),
		Force: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle force"),
		),
		Preview: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "preview palette"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Remove, k.Preview, k.Filter, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter, k.Escape},
		{k.Generate, k.Remove, k.Force, k.Preview},
		{k.Help, k.Quit},
	}
}
