package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/registrar/internal/roster"
	"github.com/desertthunder/registrar/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	BrowseView ViewState = iota
	SearchView
	ConfirmView
)

// Options configures where the TUI saves and how it logs.
type Options struct {
	Path   string      // data file written by the save key
	Pretty bool        // indent the saved document
	Logger *log.Logger // nil discards log output
}

// Model represents the TUI application state.
type Model struct {
	repo    *roster.Repository
	opts    Options
	logger  *log.Logger
	view    ViewState
	width   int
	height  int
	records list.Model
	input   textinput.Model
	term    string
	pending *recordItem
	status  string
	dirty   bool
	err     error
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model browsing repo.
func NewModel(repo *roster.Repository, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	records := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	records.Title = "School Records"
	records.SetFilteringEnabled(false)
	records.SetShowHelp(false)

	input := textinput.New()
	input.Placeholder = "name or ID"
	input.Prompt = "/ "

	return &Model{
		repo:    repo,
		opts:    opts,
		logger:  logger,
		view:    BrowseView,
		records: records,
		input:   input,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init builds the initial list of every record.
func (m *Model) Init() tea.Cmd {
	return refresh("")
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.records.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case BrowseView:
			return m.handleBrowseKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		}

	case Msg:
		switch msg.kind {
		case MsgRefresh:
			m.term = msg.data.(string)
			cmd := m.records.SetItems(toItems(m.repo, m.repo.Search(m.term)))
			m.records.Title = m.title()
			return m, cmd
		case MsgSaved:
			data := msg.data.(struct {
				path string
				err  error
			})
			if data.err != nil {
				m.err = data.err
				m.logger.Error("save failed", "path", data.path, "error", data.err)
				return m, nil
			}
			m.err = nil
			m.dirty = false
			m.status = "Saved to " + data.path
			m.logger.Info("saved roster", "path", data.path)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.records, cmd = m.records.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SearchView:
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.apply, m.keys.back})
		return fmt.Sprintf("%s\n\n%s\n\n%s", m.records.View(), m.input.View(), helpView)
	case ConfirmView:
		return m.renderConfirm()
	default:
		return m.renderBrowse()
	}
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		if m.dirty {
			m.logger.Warn("quitting with unsaved changes")
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.search):
		m.view = SearchView
		m.input.SetValue(m.term)
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.back):
		m.status = ""
		return m, refresh("")
	case key.Matches(msg, m.keys.remove):
		if item, ok := m.records.SelectedItem().(recordItem); ok {
			m.pending = &item
			m.view = ConfirmView
		}
		return m, nil
	case key.Matches(msg, m.keys.save):
		return m, m.save()
	}

	var cmd tea.Cmd
	m.records, cmd = m.records.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.apply):
		m.view = BrowseView
		m.input.Blur()
		return m, refresh(m.input.Value())
	case key.Matches(msg, m.keys.back):
		m.view = BrowseView
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.yes):
		item := m.pending
		m.pending = nil
		m.view = BrowseView
		if err := m.repo.Delete(item.kind, item.row.ID); err != nil {
			m.err = err
			return m, refresh(m.term)
		}
		m.err = nil
		m.dirty = true
		m.status = fmt.Sprintf("Deleted %s %s", item.kind, item.row.ID)
		m.logger.Info("record deleted", "kind", item.kind, "id", item.row.ID)
		return m, refresh(m.term)
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.quit):
		m.pending = nil
		m.view = BrowseView
		return m, nil
	}
	return m, nil
}

// save encodes the repository on the update loop and writes it from a command.
func (m *Model) save() tea.Cmd {
	data, err := m.repo.Encode(m.opts.Pretty)
	if err != nil {
		m.err = err
		return nil
	}
	path := m.opts.Path
	return func() tea.Msg {
		return savedMsg(path, shared.WriteFileAtomic(path, data, 0644))
	}
}

func refresh(term string) tea.Cmd {
	return func() tea.Msg { return refreshMsg(term) }
}

func (m *Model) title() string {
	if m.term == "" {
		return "School Records"
	}
	return fmt.Sprintf("School Records matching %q", m.term)
}

func (m *Model) renderBrowse() string {
	var status string
	switch {
	case m.err != nil:
		status = styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	case m.status != "":
		status = styles.ok.Render(m.status)
	case m.dirty:
		status = styles.warn.Render("Unsaved changes")
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n\n%s\n%s", m.records.View(), status, helpView)
}

func (m *Model) renderConfirm() string {
	if m.pending == nil {
		return ""
	}
	title := styles.title.Render(fmt.Sprintf("Delete %s %s?", m.pending.kind, m.pending.row.ID))
	info := fmt.Sprintf("\nName: %s\n%s\n", m.pending.row.Name, styles.help.Render(m.pending.Description()))

	helpKeys := []key.Binding{m.keys.yes, m.keys.no}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}
