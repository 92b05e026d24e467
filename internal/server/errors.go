package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OpenTraceLab/symsvg/internal/logging"
)

// APIError is a JSON error response
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NewBadRequestError creates a 400 error for input that could not be read
func NewBadRequestError(message string, cause error) *APIError {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewConversionError creates a 422 error for a symbol that cannot be drawn
func NewConversionError(cause error) *APIError {
	return &APIError{Status: http.StatusUnprocessableEntity, Message: cause.Error()}
}

// ErrorHandler writes every handler error as JSON.
// Usage: e.HTTPErrorHandler = ErrorHandler
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &httpErr):
		apiErr = &APIError{Status: httpErr.Code, Message: fmt.Sprintf("%v", httpErr.Message)}
	default:
		logging.Logger().Error("unhandled error", "path", c.Request().URL.Path, "error", err)
		apiErr = &APIError{Status: http.StatusInternalServerError, Message: "internal error"}
	}

	if err := c.JSON(apiErr.Status, apiErr); err != nil {
		logging.Logger().Error("failed to write error response", "error", err)
	}
}
