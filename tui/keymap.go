package tui

import "github.com/charmbracelet/bubbles/key"

// keymap defines the keyboard interactions of the watch view.
type keymap struct {
	quit, forceQuit, pause, showHelp key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "freeze"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.pause, k.quit, k.showHelp}
}

// FullHelp implements help.KeyMap.
func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.pause, k.quit, k.forceQuit, k.showHelp}}
}
