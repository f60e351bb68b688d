package model

// Todo is the model entity for the todos table.
type Todo struct {
	ID   int64  `json:"id"`
	Todo string `json:"todo"`
}

// CreateTodoInput represents the body of a create request.
type CreateTodoInput struct {
	Todo string `json:"todo"`
}

// UpdateTodoInput represents the body of an update request. ID comes from the path.
type UpdateTodoInput struct {
	ID   int64  `json:"-"`
	Todo string `json:"todo"`
}
