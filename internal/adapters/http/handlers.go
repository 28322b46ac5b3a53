package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/bookline/core/internal/infrastructure/logger"
)

// ErrorResponse is the uniform error body for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the body returned by DELETE endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorHandler maps any error escaping a handler to the uniform
// {"error": "<message>"} body. Handlers pass the message they want exposed
// via echo.NewHTTPError; anything untyped becomes an opaque 500.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprintf("%v", he.Message)
		}

		if code == http.StatusInternalServerError {
			log.Error("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		if c.Response().Committed {
			return
		}
		if c.Request().Method == echo.HEAD {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorResponse{Error: message})
		}
		if err != nil {
			log.Error("Error sending response", "error", err)
		}
	}
}

// pathID extracts and validates the :id path parameter.
func pathID(c echo.Context, resource string) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid %s id", resource))
	}
	return id, nil
}

// validationMessage turns the first validator failure into a short
// client-facing message ("Name is required" rather than the library's
// namespaced dump).
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "email":
			return fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "min":
			return fmt.Sprintf("%s must not be empty", fe.Field())
		}
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	return err.Error()
}
