//go:generate mockgen -source=todo.go -destination=./mocks/todo_repository_mock.go -package=mocks
package repository

import (
	"context"
	"todo-backend/pkg/entity/model"
)

// Todo is an interface of repository
type Todo interface {
	// List returns every row in store order.
	List(ctx context.Context) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	// Update returns nil and no error when no row has input.ID.
	Update(ctx context.Context, input model.UpdateTodoInput) (*model.Todo, error)
	// Delete returns the number of removed rows.
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int, error)
}
