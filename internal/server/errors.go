// Package server provides the development backend that serves the admin REST API
// from in-memory data.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hirenest/admin-console/internal/types"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "Invalid email or password"
}

// ErrNotFound indicates a record does not exist.
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// ErrInvalidID indicates a malformed record id.
type ErrInvalidID struct {
	Kind string
	ID   string
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("Invalid %s id: %s", e.Kind, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrConflict indicates a uniqueness violation.
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		creds    *ErrInvalidCredentials
		notFound *ErrNotFound
		badID    *ErrInvalidID
		invalid  *ErrValidation
		conflict *ErrConflict
		payload  *types.ValidationError
	)
	switch {
	case errors.As(err, &creds):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &badID), errors.As(err, &invalid), errors.As(err, &payload):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
