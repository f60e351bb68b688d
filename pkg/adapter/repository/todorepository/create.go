package todorepository

import (
	"context"
	"todo-backend/pkg/entity/model"

	"github.com/pkg/errors"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *todoRepository) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	insert := r.builder().Insert(table).
		Columns(fieldTodo).
		Values(input.Todo)

	if !r.returning() {
		query, args := insert.Query()
		res, err := r.gateway.Exec(ctx, query, args)
		if err != nil {
			return nil, model.NewDBError(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, model.NewDBError(err)
		}
		return &model.Todo{ID: id, Todo: input.Todo}, nil
	}

	query, args := insert.Returning(fieldID, fieldTodo).Query()
	var todo *model.Todo
	err := r.gateway.Query(ctx, query, args, func(rows entsql.ColumnScanner) error {
		t, err := scanTodo(rows)
		if err != nil {
			return err
		}
		todo = t
		return nil
	})
	if err != nil {
		return nil, model.NewDBError(err)
	}
	if todo == nil {
		return nil, model.NewDBError(errors.New("insert returned no row"))
	}

	return todo, nil
}
