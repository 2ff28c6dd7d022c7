package fetch

import "fmt"

// HTTPStatusError is returned when the media endpoint answers with a non-2xx
// status code.
type HTTPStatusError struct {
	Status int
}

// Error implements the error interface for HTTPStatusError.
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Status)
}

// NewHTTPStatusError creates a new HTTPStatusError.
func NewHTTPStatusError(status int) error {
	return &HTTPStatusError{Status: status}
}
