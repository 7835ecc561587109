package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add          key.Binding
	Toggle       key.Binding
	Edit         key.Binding
	Remove       key.Binding
	ToggleAll    key.Binding
	NextFilter   key.Binding
	ShowAll      key.Binding
	ShowActive   key.Binding
	ShowComplete key.Binding
	Clear        key.Binding
	Quit         key.Binding

	Submit key.Binding
	Leave  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle:       key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
		Edit:         key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Remove:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		ToggleAll:    key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "toggle all")),
		NextFilter:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter")),
		ShowAll:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		ShowActive:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		ShowComplete: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Clear:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Remove, k.NextFilter, k.Clear}
}

func (k keyMap) fullHelp() []key.Binding {
	return []key.Binding{
		k.Add, k.Toggle, k.Edit, k.Remove, k.ToggleAll,
		k.NextFilter, k.ShowAll, k.ShowActive, k.ShowComplete, k.Clear,
	}
}
