package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Enter    key.Binding
	Clear    key.Binding
	Scenes   key.Binding
	Audio    key.Binding
	Settings key.Binding
	Close    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send message"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "redraw"),
		),
		Scenes: key.NewBinding(
			key.WithKeys("alt+s"),
			key.WithHelp("alt+s", "scenes"),
		),
		Audio: key.NewBinding(
			key.WithKeys("alt+a"),
			key.WithHelp("alt+a", "audio mixer"),
		),
		Settings: key.NewBinding(
			key.WithKeys("alt+g"),
			key.WithHelp("alt+g", "settings"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close panel"),
		),
	}
}

const footerHints = "enter send  alt+s scenes  alt+a audio  alt+g settings  ctrl+c quit"

const footerHintsNarrow = "enter send  alt+s/a/g panels  ctrl+c quit"
