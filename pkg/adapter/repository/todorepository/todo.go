package todorepository

import (
	"todo-backend/pkg/infrastructure/datastore"
	ur "todo-backend/pkg/usecase/repository"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const (
	table     = "todos"
	fieldID   = "id"
	fieldTodo = "todo"
)

type todoRepository struct {
	gateway *datastore.Gateway
}

func NewTodoRepository(gateway *datastore.Gateway) ur.Todo {
	return &todoRepository{gateway}
}

func (r *todoRepository) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.gateway.Dialect())
}

// returning reports whether INSERT ... RETURNING is available.
func (r *todoRepository) returning() bool {
	return r.gateway.Dialect() != dialect.MySQL
}
