package todorepository

import (
	"todo-backend/pkg/entity/model"

	entsql "entgo.io/ent/dialect/sql"
)

func scanTodo(rows entsql.ColumnScanner) (*model.Todo, error) {
	t := &model.Todo{}
	if err := rows.Scan(&t.ID, &t.Todo); err != nil {
		return nil, err
	}
	return t, nil
}
