// Package errors defines the API error type and the terminal error sink for
// the request pipeline.
package errors

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when a username collides with an
	// existing one after normalization.
	ErrDuplicateUsername = errors.New("username already taken")
)

// Error is an API error carrying its HTTP status and user-visible message as
// first-class fields. Every request-level failure is represented as one of
// these before it reaches the terminal handler.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an API error with an explicit status code.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// response is the uniform JSON body for every failure.
type response struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// HTTPErrorHandler is the single catch-all converting any error escaping a
// handler into the uniform JSON envelope. Unknown errors become 500
// "Something went wrong". Failures are logged, never fatal.
func HTTPErrorHandler(err error, c echo.Context) {
	status := http.StatusInternalServerError
	message := "Something went wrong"

	var apiErr *Error
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Status
		message = apiErr.Message
	case errors.As(err, &echoErr):
		status = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		}
	}

	log.Printf("request error: %s %s -> %d %s", c.Request().Method, c.Request().URL.Path, status, message)

	if c.Response().Committed {
		return
	}
	if jsonErr := c.JSON(status, response{Success: false, Status: status, Message: message}); jsonErr != nil {
		log.Printf("error response write: %v", jsonErr)
	}
}
