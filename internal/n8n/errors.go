package n8n

import (
	"errors"
	"fmt"
	"time"
)

// BackendError is returned when n8n answers with a non-2xx status or when a
// request does not complete within the configured timeout.
type BackendError struct {
	StatusCode int
	Body       string
	Method     string
	Path       string

	Timeout bool
	After   time.Duration
	Err     error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("n8n API Error (timeout): %s %s exceeded %s", e.Method, e.Path, e.After)
	}
	return fmt.Sprintf("n8n API Error (%d): %s", e.StatusCode, e.Body)
}

// Unwrap returns the transport error behind a timeout.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a BackendError with status 404.
func IsNotFound(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.StatusCode == 404
}
