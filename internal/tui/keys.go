package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit   key.Binding
	Quit     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Copy     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "evaluate (empty exits)"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
	Prev: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("up", "previous input"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("dn", "next input"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("C-y", "copy result"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll down"),
	),
}
