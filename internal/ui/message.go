package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgRefresh MsgKind = iota
	MsgSaved
)

// refreshMsg is the constructor for [MsgRefresh]: rebuild the list for term.
func refreshMsg(term string) Msg {
	return Msg{kind: MsgRefresh, data: term}
}

// savedMsg is the constructor for [MsgSaved]
func savedMsg(path string, err error) Msg {
	return Msg{
		kind: MsgSaved,
		data: struct {
			path string
			err  error
		}{path, err},
	}
}
