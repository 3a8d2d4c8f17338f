package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func helpText() string {
	h := keys.Quit.Help()
	return h.Key + " " + h.Desc
}
