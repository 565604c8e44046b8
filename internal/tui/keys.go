package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the wizard key bindings.
type keyMap struct {
	Confirm   key.Binding
	Next      key.Binding
	Prev      key.Binding
	Clear     key.Binding
	Backspace key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑", "prev"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "typed text"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Next, k.Prev, k.Clear, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Cancel},
		{k.Next, k.Prev, k.Clear, k.Backspace},
	}
}

// withList enables the list navigation bindings only when the stage has
// a list to navigate.
func (k keyMap) withList(enabled bool) keyMap {
	k.Next.SetEnabled(enabled)
	k.Prev.SetEnabled(enabled)
	k.Clear.SetEnabled(enabled)
	return k
}
