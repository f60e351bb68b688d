package todorepository

import (
	"context"
	"todo-backend/pkg/adapter/repository/repositoryutil"
	"todo-backend/pkg/entity/model"
	"todo-backend/pkg/infrastructure/datastore"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *todoRepository) Update(
	ctx context.Context,
	input model.UpdateTodoInput,
) (*model.Todo, error) {
	query, args := r.builder().Update(table).
		Set(fieldTodo, input.Todo).
		Where(entsql.EQ(fieldID, input.ID)).
		Query()

	var todo *model.Todo
	err := repositoryutil.WithTransactionalMutation(ctx, r.gateway, func(tx *datastore.Gateway) error {
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return err
		}

		// MySQL reports zero affected rows when the text is unchanged, so the
		// row is read back instead of trusting RowsAffected.
		t, err := r.find(ctx, tx, input.ID)
		todo = t
		return err
	})
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return todo, nil
}
