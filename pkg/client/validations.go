package client

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinTodoLength is the minimum number of characters of a todo after trimming.
const MinTodoLength = 3

// Alert messages shown when a todo is too short.
const (
	MsgAddTooShort  = "Minimum 3 characters required"
	MsgEditTooShort = "Minimum 3 characters required for editing"
)

// ErrValidation is wrapped by every client-side validation failure.
var ErrValidation = errors.New("validation failed")

// ValidationError carries the message shown to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports ErrValidation so callers can use errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidateTodoText checks the minimum trimmed length of a todo.
func ValidateTodoText(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= MinTodoLength
}
