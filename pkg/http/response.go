package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// OK writes a 200 response with the given payload as-is. The dashboard
// endpoints serve flat JSON shapes rather than an envelope.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorBody is the JSON shape every non-2xx response carries.
type ErrorBody struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse writes an error with the given status and message.
func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{Error: message})
}

// ErrorResponseDetails writes an error with extra fields merged beside
// "error" at the top level.
func ErrorResponseDetails(c echo.Context, status int, message string, extra map[string]interface{}) error {
	body := map[string]interface{}{"error": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(status, body)
}

// BadRequestResponse writes a 400 carrying the failed validation rules.
func BadRequestResponse(c echo.Context, errs []ValidationError) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":   "validation failed",
		"details": errs,
	})
}

// AppErrorResponse maps an AppError to its status; anything else is a 500.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return ErrorResponse(c, http.StatusInternalServerError, "internal error")
}
