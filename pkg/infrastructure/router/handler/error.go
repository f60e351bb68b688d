package handler

import (
	"net/http"

	"todo-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// ErrorKey is the echo context key holding the error passed to HandleError.
const ErrorKey = "handler_error"

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Message    string                 `json:"message"`
	Code       string                 `json:"code"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

// StatusCode maps an AppError code to an HTTP status.
func StatusCode(err error) int {
	switch model.ErrorCode(err) {
	case model.NotFoundError:
		return http.StatusNotFound
	case model.InvalidParamError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes err as an ErrorResponse.
func HandleError(c echo.Context, err error) error {
	c.Set(ErrorKey, err)
	return c.JSON(StatusCode(err), ErrorResponse{
		Message:    err.Error(),
		Code:       model.ErrorCode(err),
		Extensions: model.ErrorExtensions(err),
	})
}
