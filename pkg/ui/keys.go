package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the host dashboard keybindings.
type KeyMap struct {
	Quit        key.Binding
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	Jump        key.Binding
	NextProject key.Binding
	PrevProject key.Binding
	Help        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump to metric"),
		),
		NextProject: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab", "next project"),
		),
		PrevProject: key.NewBinding(
			key.WithKeys("shift+tab", "p"),
			key.WithHelp("shift+tab", "prev project"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.NextProject, k.Quit, k.Help}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Jump},
		{k.NextProject, k.PrevProject, k.Quit, k.Help},
	}
}

// DrawerKeyMap defines the metric drawer keybindings.
type DrawerKeyMap struct {
	Back          key.Binding
	Close         key.Binding
	NextTimeframe key.Binding
	PrevTimeframe key.Binding
}

// DefaultDrawerKeyMap returns the default drawer keybindings.
func DefaultDrawerKeyMap() DrawerKeyMap {
	return DrawerKeyMap{
		Back: key.NewBinding(
			key.WithKeys("backspace", "left"),
			key.WithHelp("←", "back"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "close"),
		),
		NextTimeframe: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "timeframe"),
		),
		PrevTimeframe: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("[", "prev timeframe"),
		),
	}
}

// ShortHelp returns the enabled drawer bindings.
func (k DrawerKeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range []key.Binding{k.Back, k.Close, k.NextTimeframe} {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}

// FullHelp returns the drawer bindings in one column.
func (k DrawerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Back, k.Close, k.NextTimeframe, k.PrevTimeframe}}
}
