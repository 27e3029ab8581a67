package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// fieldKeyMap defines key bindings while the text field has focus
type fieldKeyMap struct {
	Down    key.Binding
	AltDown key.Binding
	Up      key.Binding
	AltUp   key.Binding
	Select  key.Binding
	Next    key.Binding
	Escape  key.Binding
	Home    key.Binding
	End     key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k fieldKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.Next, k.Escape, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k fieldKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.AltDown, k.Up, k.AltUp},
		{k.Select, k.Next, k.Escape},
		{k.Home, k.End, k.Quit},
	}
}

// confirmKeyMap defines key bindings while the Confirm button has focus
type confirmKeyMap struct {
	Press key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Press, k.Back, k.Quit},
	}
}

func newFieldKeyMap() fieldKeyMap {
	return fieldKeyMap{
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next option"),
		),
		AltDown: key.NewBinding(
			key.WithKeys("alt+down"),
			key.WithHelp("alt+↓", "open list"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous option"),
		),
		AltUp: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("alt+↑", "close list"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select & leave"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close / clear"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "caret to start"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "caret to end"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("shift+tab", "tab", "esc"),
			key.WithHelp("shift+tab", "back to field"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
