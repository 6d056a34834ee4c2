package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the browser key bindings.
type KeyMap struct {
	NextGroup key.Binding
	PrevGroup key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	ClearAll  key.Binding
	Up        key.Binding
	Down      key.Binding
	Expand    key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextGroup: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next group")),
		PrevGroup: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev group")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev chip")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next chip")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		ClearAll:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev pathway")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next pathway")),
		Expand:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "details")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGroup, k.Right, k.Toggle, k.ClearAll, k.Down, k.Expand, k.Refresh, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextGroup, k.PrevGroup, k.Left, k.Right, k.Toggle, k.ClearAll},
		{k.Up, k.Down, k.Expand, k.Refresh, k.Quit},
	}
}
