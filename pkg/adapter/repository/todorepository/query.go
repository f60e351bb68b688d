package todorepository

import (
	"context"
	"todo-backend/pkg/entity/model"
	"todo-backend/pkg/infrastructure/datastore"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *todoRepository) List(ctx context.Context) ([]*model.Todo, error) {
	b := r.builder()
	query, args := b.Select(fieldID, fieldTodo).
		From(b.Table(table)).
		OrderBy(fieldID).
		Query()

	todos := make([]*model.Todo, 0)
	err := r.gateway.Query(ctx, query, args, func(rows entsql.ColumnScanner) error {
		t, err := scanTodo(rows)
		if err != nil {
			return err
		}
		todos = append(todos, t)
		return nil
	})
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return todos, nil
}

// find returns nil when no row has id.
func (r *todoRepository) find(ctx context.Context, g *datastore.Gateway, id int64) (*model.Todo, error) {
	b := r.builder()
	query, args := b.Select(fieldID, fieldTodo).
		From(b.Table(table)).
		Where(entsql.EQ(fieldID, id)).
		Query()

	var res *model.Todo
	err := g.Query(ctx, query, args, func(rows entsql.ColumnScanner) error {
		t, err := scanTodo(rows)
		if err != nil {
			return err
		}
		res = t
		return nil
	})
	return res, err
}

func (r *todoRepository) Count(ctx context.Context) (int, error) {
	b := r.builder()
	query, args := b.Select(entsql.Count("*")).
		From(b.Table(table)).
		Query()

	var n int
	err := r.gateway.Query(ctx, query, args, func(rows entsql.ColumnScanner) error {
		return rows.Scan(&n)
	})
	if err != nil {
		return 0, model.NewDBError(err)
	}

	return n, nil
}
