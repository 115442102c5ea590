package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Watch key.Binding
	Close key.Binding
	Theme key.Binding
	Copy  key.Binding
	QR    key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	Watch: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "watch"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy link"),
	),
	QR: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "QR code"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
