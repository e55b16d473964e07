package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Select   key.Binding
	Confirm  key.Binding
	Yes      key.Binding
	No       key.Binding
	Fifty    key.Binding
	Audience key.Binding
	Phone    key.Binding
	WalkAway key.Binding
	Replay   key.Binding
	Menu     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Select:   key.NewBinding(key.WithKeys("a", "b", "c", "d"), key.WithHelp("a-d", "select")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "final answer")),
		Yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "lock it in")),
		No:       key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "reconsider")),
		Fifty:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "50/50")),
		Audience: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "ask audience")),
		Phone:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "phone a friend")),
		WalkAway: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "walk away")),
		Replay:   key.NewBinding(key.WithKeys("r", "s"), key.WithHelp("r", "play")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Confirm, k.Fifty, k.Audience, k.Phone, k.WalkAway, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Confirm, k.Yes, k.No},
		{k.Fifty, k.Audience, k.Phone, k.WalkAway},
		{k.Replay, k.Menu, k.Quit},
	}
}
