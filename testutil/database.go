package testutil

import (
	"context"
	"strings"
	"testing"

	"todo-backend/config"
	"todo-backend/pkg/infrastructure/datastore"

	entsql "entgo.io/ent/dialect/sql"
)

var nameReplacer = strings.NewReplacer("/", "_", " ", "_", "'", "", "?", "", "&", "")

// NewDBClient opens a gateway for test and creates the schema. With the sqlite
// driver every test gets its own in-memory database.
func NewDBClient(t *testing.T) *datastore.Gateway {
	t.Helper()

	dsn := datastore.NewDSN()
	if config.C.Database.Driver == datastore.DriverSQLite {
		dsn = datastore.NewMemoryDSN(config.C.Database.DBName + "_" + nameReplacer.Replace(t.Name()))
	}

	g, err := datastore.NewClientWithDSN(config.C.Database.Driver, dsn)
	if err != nil {
		t.Fatalf("failed opening test db: %v", err)
	}
	if err := datastore.CreateSchema(context.Background(), g); err != nil {
		g.Close()
		t.Fatalf("failed creating schema: %v", err)
	}

	return g
}

// DropTodo drops all the data from todos.
func DropTodo(t *testing.T, g *datastore.Gateway) {
	ctx := context.Background()
	_, err := g.Exec(ctx, "DELETE FROM todos", []any{})
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// SeedTodos inserts texts in order and fails the test on error.
func SeedTodos(t *testing.T, g *datastore.Gateway, texts ...string) {
	t.Helper()
	ctx := context.Background()
	for _, text := range texts {
		query, args := entsql.Dialect(g.Dialect()).Insert("todos").Columns("todo").Values(text).Query()
		if _, err := g.Exec(ctx, query, args); err != nil {
			t.Fatalf("failed seeding todo %q: %v", text, err)
		}
	}
}
