package errors

import "fmt"

// HTTPError is an error that carries the HTTP status to respond with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError whose error code equals its status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

var (
	ErrInternalServerError = NewHTTPError(500, "Something went wrong. Please try again.")
	ErrUnauthorized        = NewHTTPError(401, "Unauthorized")
)
