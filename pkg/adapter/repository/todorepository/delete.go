package todorepository

import (
	"context"
	"todo-backend/pkg/entity/model"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *todoRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query, args := r.builder().Delete(table).
		Where(entsql.EQ(fieldID, id)).
		Query()

	res, err := r.gateway.Exec(ctx, query, args)
	if err != nil {
		return 0, model.NewDBError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, model.NewDBError(err)
	}

	return n, nil
}
