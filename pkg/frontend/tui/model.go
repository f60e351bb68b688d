package tui

import (
	"context"
	"errors"

	"todo-backend/pkg/client"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// EmptyListText is shown in place of the list when there are no todos.
const EmptyListText = "No todos yet. Add one above!"

type refreshMsg struct{}

type alertMsg struct{ text string }

type failedMsg struct{ err error }

// Model is the bubbletea model of the todo screen. All list, input and edit
// state lives in the client.App; the model only tracks focus and the cursor.
type Model struct {
	ctx  context.Context
	app  *client.App
	keys keyMap
	help help.Model

	input textinput.Model
	draft textinput.Model

	mode   mode
	cursor int
	alert  string
	err    error
}

// New creates a Model driving app.
func New(ctx context.Context, app *client.App) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "What needs to be done?"
	input.CharLimit = 500

	draft := textinput.New()
	draft.Prompt = ""
	draft.CharLimit = 500

	return Model{
		ctx:   ctx,
		app:   app,
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: input,
		draft: draft,
	}
}

// Run starts the program on the alternate screen and blocks until it quits.
func Run(ctx context.Context, app *client.App) error {
	_, err := tea.NewProgram(New(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Init fetches the list once.
func (m Model) Init() tea.Cmd {
	return m.do(m.app.Mount)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.err = nil
		m.sync()
		return m, nil
	case alertMsg:
		m.alert = msg.text
		return m, nil
	case failedMsg:
		m.err = msg.err
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && (m.mode == modeBrowse || msg.String() == "ctrl+c") {
			return m, tea.Quit
		}
		if m.alert != "" {
			if key.Matches(msg, m.keys.Submit, m.keys.Cancel) {
				m.alert = ""
			}
			return m, nil
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	todos := m.app.Snapshot().Todos

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(todos)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Edit, m.keys.Submit):
		if m.cursor >= len(todos) {
			return m, nil
		}
		id := todos[m.cursor].ID
		if !m.app.BeginEdit(id) {
			return m, nil
		}
		m.mode = modeEdit
		m.draft.SetValue(m.app.Snapshot().EditText)
		m.draft.CursorEnd()
		return m, m.draft.Focus()
	case key.Matches(msg, m.keys.Delete):
		if m.cursor >= len(todos) {
			return m, nil
		}
		id := todos[m.cursor].ID
		return m, m.do(func(ctx context.Context) error {
			return m.app.Delete(ctx, id)
		})
	case key.Matches(msg, m.keys.Refresh):
		return m, m.do(m.app.Fetch)
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.do(m.app.Add)
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.app.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.do(m.app.CommitEdit)
	case key.Matches(msg, m.keys.Cancel):
		m.app.CancelEdit()
		m.mode = modeBrowse
		m.draft.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	m.app.SetDraft(m.draft.Value())
	return m, cmd
}

// sync pulls the App state back into the widgets after an operation.
func (m *Model) sync() {
	s := m.app.Snapshot()

	if m.input.Value() != s.Input {
		m.input.SetValue(s.Input)
	}
	if m.mode == modeEdit && s.EditID == nil {
		m.mode = modeBrowse
		m.draft.Blur()
	}
	if m.cursor >= len(s.Todos) {
		m.cursor = len(s.Todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// do runs op off the update loop. Validation failures become alerts, any other
// error is kept for the status line.
func (m Model) do(op func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		err := op(ctx)
		var verr *client.ValidationError
		switch {
		case err == nil:
			return refreshMsg{}
		case errors.As(err, &verr):
			return alertMsg{text: verr.Message}
		default:
			return failedMsg{err: err}
		}
	}
}
