package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error codes
const (
	DBError             = "DB_ERROR"
	NotFoundError       = "NOT_FOUND_ERROR"
	InvalidParamError   = "INVALID_PARAMETER_ERROR"
	InternalServerError = "INTERNAL_SERVER_ERROR"
)

// AppError is the error shared by the repository, usecase and handler layers.
type AppError struct {
	Code    string
	Message string
	// Extensions carries details about the failing value, such as the missing id.
	Extensions map[string]interface{}
	err        error
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause so errors.Is/As see through AppError.
func (e *AppError) Unwrap() error {
	return e.err
}

// Cause implements the pkg/errors causer interface.
func (e *AppError) Cause() error {
	return e.err
}

// NewDBError returns an error for a failing store statement.
func NewDBError(e error) error {
	return newError(DBError, fmt.Sprintf("%v", e), nil, e)
}

// NewNotFoundError returns an error for a row that does not exist.
func NewNotFoundError(e error, value interface{}) error {
	if e == nil {
		e = errors.Errorf("%v not found", value)
	}
	return newError(NotFoundError, e.Error(), map[string]interface{}{"value": value}, e)
}

// NewInvalidParamError returns an error for a malformed request parameter.
func NewInvalidParamError(e error) error {
	if e == nil {
		e = errors.New("invalid parameter")
	}
	return newError(InvalidParamError, e.Error(), nil, e)
}

func newError(code string, message string, extensions map[string]interface{}, err error) error {
	if err != nil {
		err = errors.WithStack(err)
	}
	return &AppError{
		Code:       code,
		Message:    message,
		Extensions: extensions,
		err:        err,
	}
}

// ErrorCode returns the AppError code of err, or InternalServerError for any other error.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return InternalServerError
}

// ErrorExtensions returns the AppError extensions of err, or nil.
func ErrorExtensions(err error) map[string]interface{} {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Extensions
	}
	return nil
}

// IsNotFoundError reports whether err carries NotFoundError.
func IsNotFoundError(err error) bool {
	return ErrorCode(err) == NotFoundError
}
