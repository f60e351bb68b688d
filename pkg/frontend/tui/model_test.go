package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"todo-backend/pkg/client"
	"todo-backend/pkg/entity/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryAPI struct {
	mu     sync.Mutex
	nextID int64
	todos  []model.Todo
	calls  int
	err    error
}

func newMemoryAPI(texts ...string) *memoryAPI {
	api := &memoryAPI{}
	for _, text := range texts {
		api.nextID++
		api.todos = append(api.todos, model.Todo{ID: api.nextID, Todo: text})
	}
	return api
}

func (a *memoryAPI) List(context.Context) ([]model.Todo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return append([]model.Todo{}, a.todos...), nil
}

func (a *memoryAPI) Create(_ context.Context, text string) (*model.Todo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	a.nextID++
	t := model.Todo{ID: a.nextID, Todo: text}
	a.todos = append(a.todos, t)
	return &t, nil
}

func (a *memoryAPI) Update(_ context.Context, id int64, text string) (*model.Todo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	for i := range a.todos {
		if a.todos[i].ID == id {
			a.todos[i].Todo = text
			t := a.todos[i]
			return &t, nil
		}
	}
	return &model.Todo{}, nil
}

func (a *memoryAPI) Delete(_ context.Context, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.err != nil {
		return a.err
	}
	out := a.todos[:0]
	for _, t := range a.todos {
		if t.ID != id {
			out = append(out, t)
		}
	}
	a.todos = out
	return nil
}

func (a *memoryAPI) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

// press feeds a key to m and drops any widget command it returns.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// submit feeds a key to m, runs the operation it starts and feeds the result
// back.
func submit(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	require.NotNil(t, cmd)
	next, _ = m.Update(cmd())
	return next.(Model)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, runes(string(r)))
	}
	return m
}

func mounted(t *testing.T, api *memoryAPI) Model {
	t.Helper()
	m := New(context.Background(), client.NewApp(api))
	next, _ := m.Update(m.Init()())
	return next.(Model)
}

func TestModel_Mount(t *testing.T) {
	t.Run("lists every todo in order", func(t *testing.T) {
		m := mounted(t, newMemoryAPI("first", "second"))
		view := m.View()

		assert.Contains(t, view, "first")
		assert.Contains(t, view, "second")
		assert.Less(t, strings.Index(view, "first"), strings.Index(view, "second"))
		assert.NotContains(t, view, EmptyListText)
	})

	t.Run("empty list shows the placeholder", func(t *testing.T) {
		m := mounted(t, newMemoryAPI())
		assert.Contains(t, m.View(), EmptyListText)
	})
}

func TestModel_Add(t *testing.T) {
	t.Run("valid text is created and the input cleared", func(t *testing.T) {
		api := newMemoryAPI()
		m := mounted(t, api)

		m = press(t, m, runes("a"))
		require.Equal(t, modeAdd, m.mode)
		m = typeText(t, m, "Buy milk")
		m = submit(t, m, enter)

		s := m.app.Snapshot()
		require.Len(t, s.Todos, 1)
		assert.Equal(t, "Buy milk", s.Todos[0].Todo)
		assert.Empty(t, s.Input)
		assert.Empty(t, m.input.Value())
		assert.Empty(t, m.alert)
	})

	t.Run("short text raises an alert without a request", func(t *testing.T) {
		api := newMemoryAPI()
		m := mounted(t, api)
		before := api.callCount()

		m = press(t, m, runes("a"))
		m = typeText(t, m, "ab")
		m = submit(t, m, enter)

		assert.Equal(t, before, api.callCount())
		assert.Equal(t, client.MsgAddTooShort, m.alert)
		assert.Contains(t, m.View(), client.MsgAddTooShort)

		m = press(t, m, esc)
		assert.Empty(t, m.alert)
		assert.Equal(t, modeAdd, m.mode)
		assert.Equal(t, "ab", m.input.Value())
	})
}

func TestModel_Edit(t *testing.T) {
	t.Run("commit patches the row", func(t *testing.T) {
		api := newMemoryAPI("first", "second")
		m := mounted(t, api)

		m = press(t, m, down)
		m = press(t, m, runes("e"))
		require.Equal(t, modeEdit, m.mode)
		assert.Equal(t, "second", m.draft.Value())

		m = typeText(t, m, "!!")
		before := api.callCount()
		m = submit(t, m, enter)

		assert.Equal(t, before+1, api.callCount())
		assert.Equal(t, modeBrowse, m.mode)
		s := m.app.Snapshot()
		assert.Nil(t, s.EditID)
		assert.Equal(t, "second!!", s.Todos[1].Todo)
	})

	t.Run("escape cancels", func(t *testing.T) {
		m := mounted(t, newMemoryAPI("first"))

		m = press(t, m, runes("e"))
		m = typeText(t, m, " changed")
		m = press(t, m, esc)

		assert.Equal(t, modeBrowse, m.mode)
		s := m.app.Snapshot()
		assert.Nil(t, s.EditID)
		assert.Equal(t, "first", s.Todos[0].Todo)
	})

	t.Run("short draft raises the edit alert", func(t *testing.T) {
		m := mounted(t, newMemoryAPI("first"))

		m = press(t, m, runes("e"))
		m.draft.SetValue("x")
		m.app.SetDraft("x")
		m = submit(t, m, enter)

		assert.Equal(t, client.MsgEditTooShort, m.alert)
		assert.Equal(t, modeEdit, m.mode)
	})
}

func TestModel_Delete(t *testing.T) {
	m := mounted(t, newMemoryAPI("first", "second", "third"))

	m = press(t, m, down)
	m = submit(t, m, runes("d"))

	s := m.app.Snapshot()
	require.Len(t, s.Todos, 2)
	assert.Equal(t, "first", s.Todos[0].Todo)
	assert.Equal(t, "third", s.Todos[1].Todo)

	m = press(t, m, down)
	m = submit(t, m, runes("d"))
	assert.Equal(t, 0, m.cursor)
	assert.Len(t, m.app.Snapshot().Todos, 1)
}

func TestModel_RequestFailure(t *testing.T) {
	api := newMemoryAPI("first")
	m := mounted(t, api)

	api.err = errors.New("connection refused")
	m = submit(t, m, runes("d"))

	assert.Empty(t, m.alert)
	assert.Len(t, m.app.Snapshot().Todos, 1)
	assert.Contains(t, m.View(), "connection refused")
}

func TestModel_Quit(t *testing.T) {
	m := mounted(t, newMemoryAPI())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m = press(t, m, runes("a"))
	next, _ := m.Update(runes("q"))
	assert.Equal(t, "q", next.(Model).input.Value())
}
