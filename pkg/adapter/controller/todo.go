package controller

import (
	"context"
	"todo-backend/pkg/entity/model"
	usecase "todo-backend/pkg/usecase/usecase/todo"
)

type Todo interface {
	List(ctx context.Context) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Update(ctx context.Context, input model.UpdateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type todoController struct {
	todoUseCase usecase.Todo
}

// Create new todo controller

func NewTodoController(tu usecase.Todo) Todo {
	return &todoController{todoUseCase: tu}
}

func (tc *todoController) List(ctx context.Context) ([]*model.Todo, error) {
	return tc.todoUseCase.List(ctx)
}

func (tc *todoController) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Create(ctx, input)
}

func (tc *todoController) Update(
	ctx context.Context,
	input model.UpdateTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Update(ctx, input)
}

func (tc *todoController) Delete(ctx context.Context, id int64) error {
	return tc.todoUseCase.Delete(ctx, id)
}

func (tc *todoController) Count(ctx context.Context) (int, error) {
	return tc.todoUseCase.Count(ctx)
}
