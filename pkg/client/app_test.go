package client_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"todo-backend/pkg/client"
	"todo-backend/pkg/entity/model"
	"todo-backend/testutil"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alerts []string

func (a *alerts) Alert(message string) { *a = append(*a, message) }

type failingAPI struct{ err error }

func (f failingAPI) List(context.Context) ([]model.Todo, error) { return nil, f.err }
func (f failingAPI) Create(context.Context, string) (*model.Todo, error) {
	return nil, f.err
}
func (f failingAPI) Update(context.Context, int64, string) (*model.Todo, error) {
	return nil, f.err
}
func (f failingAPI) Delete(context.Context, int64) error { return f.err }

func TestApp_NewApp(t *testing.T) {
	app := client.NewApp(failingAPI{})
	s := app.Snapshot()

	assert.Empty(t, s.Input)
	assert.NotNil(t, s.Todos)
	assert.Empty(t, s.Todos)
	assert.Nil(t, s.EditID)
	assert.Empty(t, s.EditText)
}

func TestApp_Mount(t *testing.T) {
	b := newBackend(t, false)
	testutil.SeedTodos(t, b.gateway, "first", "second", "third")

	app := client.NewApp(b.api)
	require.NoError(t, app.Mount(context.Background()))

	todos := app.Snapshot().Todos
	require.Len(t, todos, 3)
	assert.Equal(t, "first", todos[0].Todo)
	assert.Equal(t, "second", todos[1].Todo)
	assert.Equal(t, "third", todos[2].Todo)
	assert.Equal(t, int32(1), b.calls.Load())
}

func TestApp_Add(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantCalls  int32
		wantAlerts []string
		wantTodos  []string
		wantInput  string
		wantErr    bool
	}{
		{
			name:       "short text never reaches the server",
			input:      "ab",
			wantCalls:  0,
			wantAlerts: []string{client.MsgAddTooShort},
			wantTodos:  []string{},
			wantInput:  "ab",
			wantErr:    true,
		},
		{
			name:       "whitespace padding does not count",
			input:      "  a  ",
			wantCalls:  0,
			wantAlerts: []string{client.MsgAddTooShort},
			wantTodos:  []string{},
			wantInput:  "  a  ",
			wantErr:    true,
		},
		{
			name:      "valid text is created and the list refetched",
			input:     "Buy milk",
			wantCalls: 2,
			wantTodos: []string{"Buy milk"},
			wantInput: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBackend(t, false)
			var got alerts
			app := client.NewApp(b.api, client.WithAlerter(&got))

			app.SetInput(tt.input)
			err := app.Add(context.Background())

			if tt.wantErr {
				assert.True(t, errors.Is(err, client.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, b.calls.Load())
			assert.Equal(t, alerts(tt.wantAlerts), got)

			s := app.Snapshot()
			assert.Equal(t, tt.wantInput, s.Input)
			texts := []string{}
			for _, todo := range s.Todos {
				texts = append(texts, todo.Todo)
			}
			assert.Equal(t, tt.wantTodos, texts)
		})
	}
}

func TestApp_AddPicksUpOtherWriters(t *testing.T) {
	b := newBackend(t, false)
	ctx := context.Background()
	app := client.NewApp(b.api)
	require.NoError(t, app.Mount(ctx))

	testutil.SeedTodos(t, b.gateway, "written elsewhere")

	app.SetInput("mine")
	require.NoError(t, app.Add(ctx))

	todos := app.Snapshot().Todos
	require.Len(t, todos, 2)
	assert.Equal(t, "written elsewhere", todos[0].Todo)
	assert.Equal(t, "mine", todos[1].Todo)
}

func TestApp_Edit(t *testing.T) {
	t.Run("commit patches the row in place without refetching", func(t *testing.T) {
		b := newBackend(t, false)
		testutil.SeedTodos(t, b.gateway, "first", "second")
		ctx := context.Background()

		app := client.NewApp(b.api)
		require.NoError(t, app.Mount(ctx))
		todos := app.Snapshot().Todos
		id := todos[1].ID

		require.True(t, app.BeginEdit(id))
		s := app.Snapshot()
		assert.True(t, s.Editing(id))
		assert.Equal(t, "second", s.EditText)

		app.SetDraft("second, edited")
		require.NoError(t, app.CommitEdit(ctx))
		assert.Equal(t, int32(2), b.calls.Load())

		s = app.Snapshot()
		assert.Nil(t, s.EditID)
		assert.Empty(t, s.EditText)
		require.Len(t, s.Todos, 2)
		assert.Equal(t, "first", s.Todos[0].Todo)
		assert.Equal(t, "second, edited", s.Todos[1].Todo)
		assert.Equal(t, id, s.Todos[1].ID)
	})

	t.Run("short draft is rejected and the edit kept", func(t *testing.T) {
		b := newBackend(t, false)
		testutil.SeedTodos(t, b.gateway, "first")
		ctx := context.Background()

		var got alerts
		app := client.NewApp(b.api, client.WithAlerter(&got))
		require.NoError(t, app.Mount(ctx))
		id := app.Snapshot().Todos[0].ID

		require.True(t, app.BeginEdit(id))
		app.SetDraft(" x ")
		err := app.CommitEdit(ctx)

		assert.True(t, errors.Is(err, client.ErrValidation))
		assert.Equal(t, alerts{client.MsgEditTooShort}, got)
		assert.Equal(t, int32(1), b.calls.Load())
		s := app.Snapshot()
		assert.True(t, s.Editing(id))
		assert.Equal(t, "first", s.Todos[0].Todo)
	})

	t.Run("commit for a row removed on the server leaves the list alone", func(t *testing.T) {
		b := newBackend(t, false)
		testutil.SeedTodos(t, b.gateway, "stale row")
		ctx := context.Background()

		var buf bytes.Buffer
		app := client.NewApp(b.api, client.WithLogger(log.New(&buf)))
		require.NoError(t, app.Mount(ctx))
		id := app.Snapshot().Todos[0].ID
		testutil.DropTodo(t, b.gateway)

		require.True(t, app.BeginEdit(id))
		app.SetDraft("ghost edit")
		require.NoError(t, app.CommitEdit(ctx))

		s := app.Snapshot()
		assert.Nil(t, s.EditID)
		require.Len(t, s.Todos, 1)
		assert.Equal(t, "stale row", s.Todos[0].Todo)
		assert.Contains(t, buf.String(), "no longer exists")

		remote, err := b.api.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, remote)
	})

	t.Run("begin edit on an unknown id", func(t *testing.T) {
		app := client.NewApp(failingAPI{})
		assert.False(t, app.BeginEdit(42))
		assert.Nil(t, app.Snapshot().EditID)
	})

	t.Run("a second begin edit replaces the first", func(t *testing.T) {
		b := newBackend(t, false)
		testutil.SeedTodos(t, b.gateway, "first", "second")
		app := client.NewApp(b.api)
		require.NoError(t, app.Mount(context.Background()))
		todos := app.Snapshot().Todos

		require.True(t, app.BeginEdit(todos[0].ID))
		app.SetDraft("draft")
		require.True(t, app.BeginEdit(todos[1].ID))

		s := app.Snapshot()
		assert.True(t, s.Editing(todos[1].ID))
		assert.False(t, s.Editing(todos[0].ID))
		assert.Equal(t, "second", s.EditText)
	})

	t.Run("cancel clears the edit", func(t *testing.T) {
		b := newBackend(t, false)
		testutil.SeedTodos(t, b.gateway, "first")
		app := client.NewApp(b.api)
		require.NoError(t, app.Mount(context.Background()))

		require.True(t, app.BeginEdit(app.Snapshot().Todos[0].ID))
		app.CancelEdit()

		s := app.Snapshot()
		assert.Nil(t, s.EditID)
		assert.Empty(t, s.EditText)
	})

	t.Run("commit without an edit in progress", func(t *testing.T) {
		app := client.NewApp(failingAPI{})
		err := app.CommitEdit(context.Background())
		assert.True(t, errors.Is(err, client.ErrValidation))
	})
}

func TestApp_Delete(t *testing.T) {
	b := newBackend(t, false)
	testutil.SeedTodos(t, b.gateway, "first", "second", "third")
	ctx := context.Background()

	app := client.NewApp(b.api)
	require.NoError(t, app.Mount(ctx))
	todos := app.Snapshot().Todos

	require.NoError(t, app.Delete(ctx, todos[1].ID))
	assert.Equal(t, int32(2), b.calls.Load())

	s := app.Snapshot()
	require.Len(t, s.Todos, 2)
	assert.Equal(t, "first", s.Todos[0].Todo)
	assert.Equal(t, "third", s.Todos[1].Todo)

	remote, err := b.api.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.Todos, remote)
}

func TestApp_DeleteTwice(t *testing.T) {
	b := newBackend(t, false)
	testutil.SeedTodos(t, b.gateway, "first", "second")
	ctx := context.Background()

	app := client.NewApp(b.api)
	require.NoError(t, app.Mount(ctx))
	id := app.Snapshot().Todos[0].ID

	require.NoError(t, app.Delete(ctx, id))
	require.NoError(t, app.Delete(ctx, id))

	s := app.Snapshot()
	require.Len(t, s.Todos, 1)
	assert.Equal(t, "second", s.Todos[0].Todo)
}

func TestApp_NetworkFailureLeavesStateAlone(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("connection refused")
	var got alerts
	app := client.NewApp(failingAPI{err: boom}, client.WithLogger(log.New(&buf)), client.WithAlerter(&got))
	ctx := context.Background()

	assert.ErrorIs(t, app.Mount(ctx), boom)

	app.SetInput("valid text")
	assert.ErrorIs(t, app.Add(ctx), boom)
	assert.Equal(t, "valid text", app.Snapshot().Input)

	assert.ErrorIs(t, app.Delete(ctx, 1), boom)

	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "Failed to fetch todos")
	assert.Contains(t, buf.String(), "Failed to add todo")
	assert.Contains(t, buf.String(), "Failed to delete todo")
}
