package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	search key.Binding
	apply  key.Binding
	back   key.Binding
	remove key.Binding
	yes    key.Binding
	no     key.Binding
	save   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:     key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.search, k.remove, k.save, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.search, k.back},
		{k.remove, k.yes, k.no},
		{k.save, k.quit},
	}
}
