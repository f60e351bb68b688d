package handler

import (
	"net/http"
	"strconv"

	"todo-backend/pkg/adapter/controller"
	"todo-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// Todo serves the four todo routes.
type Todo struct {
	ctrl controller.Todo
}

// NewTodo creates todo handlers backed by ctrl.
func NewTodo(ctrl controller.Todo) *Todo {
	return &Todo{ctrl: ctrl}
}

// List responds with every todo.
func (h *Todo) List(c echo.Context) error {
	todos, err := h.ctrl.List(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Create inserts the body's todo and responds with the stored row.
func (h *Todo) Create(c echo.Context) error {
	var input model.CreateTodoInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	todo, err := h.ctrl.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Update replaces the text of the row named by the path id. An absent row
// yields an empty object unless the use case is strict.
func (h *Todo) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return HandleError(c, err)
	}

	var input model.UpdateTodoInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}
	input.ID = id

	todo, err := h.ctrl.Update(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	if todo == nil {
		return c.JSON(http.StatusOK, struct{}{})
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete removes the row named by the path id.
func (h *Todo) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return HandleError(c, err)
	}

	if err := h.ctrl.Delete(c.Request().Context(), id); err != nil {
		return HandleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, model.NewInvalidParamError(err)
	}
	return id, nil
}
