package registry

import (
	"todo-backend/pkg/adapter/controller"
	todorepository "todo-backend/pkg/adapter/repository/todorepository"
	usecase "todo-backend/pkg/usecase/usecase/todo"
)

func (r *registry) NewTodoController() controller.Todo {
	repo := todorepository.NewTodoRepository(r.gateway)
	u := usecase.NewTodoUseCaseWithOptions(repo, usecase.Options{
		StrictNotFound: r.strictNotFound,
	})

	return controller.NewTodoController(u)
}
