package apiclient

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the backend answers 401. The session has already
// been invalidated by the time a caller sees it.
var ErrUnauthorized = errors.New("Unauthorized") //nolint:staticcheck // message is shown verbatim to the admin

// APIError represents a non-2xx response other than 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Request failed with status %d", e.Status)
	}
	return e.Message
}

// TransportError represents a failure to reach the backend or read its response.
type TransportError struct {
	Method string
	URL    string
	Cause  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// IsUnauthorized reports whether err is, or wraps, ErrUnauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// StatusCode extracts the HTTP status from an error chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	if IsUnauthorized(err) {
		return 401
	}
	return 0
}
