package ui

import "github.com/charmbracelet/bubbles/key"

type searchKeyMap struct {
	Search key.Binding
	Axis   key.Binding
	Quit   key.Binding
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Axis, k.Quit}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Search, k.Axis, k.Quit}}
}

var searchKeys = searchKeyMap{
	Search: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	Axis: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "x-axis: index/position"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc/ctrl+c", "quit"),
	),
}
