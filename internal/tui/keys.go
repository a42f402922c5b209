package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/tinytelemetry/signboard/internal/rotation"
)

// KeyMap defines all display key bindings with built-in help text.
type KeyMap struct {
	Nav rotation.Bindings

	Launch      key.Binding
	Retry       key.Binding
	Impressions key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Nav: rotation.DefaultBindings(),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Impressions: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stats"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// boardHelp lists the bindings shown in the board footer.
func (k KeyMap) boardHelp() []key.Binding {
	return []key.Binding{k.Nav.Next, k.Nav.Prev, k.Retry, k.Impressions, k.Quit}
}
