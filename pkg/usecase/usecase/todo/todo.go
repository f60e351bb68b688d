package usecase

import (
	"context"
	"todo-backend/pkg/entity/model"
	"todo-backend/pkg/usecase/repository"
)

type todoUseCase struct {
	todoRepository repository.Todo
	options        Options
}

// Options of todo use case
type Options struct {
	// StrictNotFound turns update/delete of an absent id into a NotFoundError.
	// When false, update returns (nil, nil) and delete succeeds.
	StrictNotFound bool
}

type Todo interface {
	List(ctx context.Context) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Update(ctx context.Context, input model.UpdateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// This function creates new todo use case
func NewTodoUseCase(r repository.Todo) Todo {
	return &todoUseCase{todoRepository: r}
}

// NewTodoUseCaseWithOptions creates a todo use case with a not-found policy.
func NewTodoUseCaseWithOptions(r repository.Todo, opts Options) Todo {
	return &todoUseCase{todoRepository: r, options: opts}
}

func (t *todoUseCase) List(ctx context.Context) ([]*model.Todo, error) {
	return t.todoRepository.List(ctx)
}

func (t *todoUseCase) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	return t.todoRepository.Create(ctx, input)
}

func (t *todoUseCase) Update(
	ctx context.Context,
	input model.UpdateTodoInput,
) (*model.Todo, error) {
	todo, err := t.todoRepository.Update(ctx, input)
	if err != nil {
		return nil, err
	}
	if todo == nil && t.options.StrictNotFound {
		return nil, model.NewNotFoundError(nil, input.ID)
	}
	return todo, nil
}

func (t *todoUseCase) Delete(ctx context.Context, id int64) error {
	n, err := t.todoRepository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 && t.options.StrictNotFound {
		return model.NewNotFoundError(nil, id)
	}
	return nil
}

func (t *todoUseCase) Count(ctx context.Context) (int, error) {
	return t.todoRepository.Count(ctx)
}
