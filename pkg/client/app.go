package client

import (
	"context"
	"io"
	"sync"

	"todo-backend/pkg/entity/model"

	"github.com/charmbracelet/log"
)

// TodoAPI is the backend the App talks to. *API implements it.
type TodoAPI interface {
	List(ctx context.Context) ([]model.Todo, error)
	Create(ctx context.Context, text string) (*model.Todo, error)
	Update(ctx context.Context, id int64, text string) (*model.Todo, error)
	Delete(ctx context.Context, id int64) error
}

// Alerter shows a blocking message to the user. Only validation failures are alerted.
type Alerter interface {
	Alert(message string)
}

// State is a snapshot of the App.
type State struct {
	Input    string
	Todos    []model.Todo
	EditID   *int64
	EditText string
}

// Editing reports whether id is the row being edited.
func (s State) Editing(id int64) bool {
	return s.EditID != nil && *s.EditID == id
}

// App holds the client-side list, input and edit state and applies the
// add/edit/delete transitions against a TodoAPI.
type App struct {
	api    TodoAPI
	logger *log.Logger
	alert  Alerter

	mu    sync.Mutex
	state State
}

// Option configures an App
type Option func(*App)

// WithLogger sets the logger used for swallowed network failures.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithAlerter sets the collaborator notified of validation failures.
func WithAlerter(al Alerter) Option {
	return func(a *App) { a.alert = al }
}

// NewApp creates an App in its initial state: empty input, empty list, no edit.
func NewApp(api TodoAPI, opts ...Option) *App {
	a := &App{
		api:    api,
		logger: log.New(io.Discard),
		state:  State{Todos: []model.Todo{}},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Snapshot returns a copy of the current state.
func (a *App) Snapshot() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.state
	s.Todos = cloneTodos(a.state.Todos)
	if a.state.EditID != nil {
		id := *a.state.EditID
		s.EditID = &id
	}
	return s
}

// Mount performs the initial fetch.
func (a *App) Mount(ctx context.Context) error {
	return a.Fetch(ctx)
}

// Fetch replaces the list with the server's.
func (a *App) Fetch(ctx context.Context) error {
	todos, err := a.api.List(ctx)
	if err != nil {
		a.logger.Error("Failed to fetch todos", "err", err)
		return err
	}

	a.mu.Lock()
	a.state.Todos = cloneTodos(todos)
	a.mu.Unlock()
	return nil
}

// SetInput sets the new-todo input text.
func (a *App) SetInput(text string) {
	a.mu.Lock()
	a.state.Input = text
	a.mu.Unlock()
}

// Add creates the input text on the server, clears the input and refetches
// the whole list. Text shorter than MinTodoLength never reaches the server.
func (a *App) Add(ctx context.Context) error {
	a.mu.Lock()
	text := a.state.Input
	a.mu.Unlock()

	if !ValidateTodoText(text) {
		return a.reject(MsgAddTooShort)
	}

	if _, err := a.api.Create(ctx, text); err != nil {
		a.logger.Error("Failed to add todo", "err", err)
		return err
	}

	a.mu.Lock()
	if a.state.Input == text {
		a.state.Input = ""
	}
	a.mu.Unlock()

	return a.Fetch(ctx)
}

// BeginEdit starts editing id with its current text as draft. Any edit already
// in progress is replaced. It returns false when id is not in the list.
func (a *App) BeginEdit(id int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, t := range a.state.Todos {
		if t.ID == id {
			editID := id
			a.state.EditID = &editID
			a.state.EditText = t.Todo
			return true
		}
	}
	return false
}

// SetDraft sets the text of the edit in progress.
func (a *App) SetDraft(text string) {
	a.mu.Lock()
	a.state.EditText = text
	a.mu.Unlock()
}

// CancelEdit drops the edit in progress.
func (a *App) CancelEdit() {
	a.mu.Lock()
	a.state.EditID = nil
	a.state.EditText = ""
	a.mu.Unlock()
}

// CommitEdit sends the draft, patches the matching row in place and clears
// the edit state. The list is not refetched. When the server reports no row
// for the id, the local list is left unchanged.
func (a *App) CommitEdit(ctx context.Context) error {
	a.mu.Lock()
	var id int64
	editing := a.state.EditID != nil
	if editing {
		id = *a.state.EditID
	}
	text := a.state.EditText
	a.mu.Unlock()

	if !editing || !ValidateTodoText(text) {
		return a.reject(MsgEditTooShort)
	}

	updated, err := a.api.Update(ctx, id, text)
	if err != nil {
		a.logger.Error("Failed to update todo", "err", err)
		return err
	}

	a.mu.Lock()
	// A zero id means the server had no such row; the local row is left as is.
	if updated != nil && updated.ID != 0 {
		for i := range a.state.Todos {
			if a.state.Todos[i].ID == id {
				a.state.Todos[i].Todo = text
			}
		}
	} else {
		a.logger.Warn("Todo no longer exists on the server", "id", id)
	}
	if a.state.EditID != nil && *a.state.EditID == id {
		a.state.EditID = nil
		a.state.EditText = ""
	}
	a.mu.Unlock()
	return nil
}

// Delete removes id on the server and then from the local list.
func (a *App) Delete(ctx context.Context, id int64) error {
	if err := a.api.Delete(ctx, id); err != nil {
		a.logger.Error("Failed to delete todo", "err", err)
		return err
	}

	a.mu.Lock()
	todos := make([]model.Todo, 0, len(a.state.Todos))
	for _, t := range a.state.Todos {
		if t.ID != id {
			todos = append(todos, t)
		}
	}
	a.state.Todos = todos
	a.mu.Unlock()
	return nil
}

func (a *App) reject(message string) error {
	if a.alert != nil {
		a.alert.Alert(message)
	}
	return &ValidationError{Message: message}
}

func cloneTodos(todos []model.Todo) []model.Todo {
	out := make([]model.Todo, len(todos))
	copy(out, todos)
	return out
}
