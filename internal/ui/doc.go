// Package ui implements an interactive record browser using bubbletea's Elm architecture.
//
// The TUI has three views over a single [roster.Repository]:
//  1. [BrowseView] : every matching record (students, then instructors, then courses)
//  2. [SearchView] : a text input whose term filters the list through [roster.Repository.Search]
//  3. [ConfirmView] : confirm deletion of the selected record
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// The repository is only read and mutated inside Update; commands carry file writes and report back with messages.
//
// Keyboard navigation uses vim-style bindings (j/k, /, d, y/n, s, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
