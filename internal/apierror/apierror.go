// Package apierror provides the standardized error envelope for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"

	"github.com/Italzenergy/AlzConnect-app/internal/domerr"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Field  string `json:"field,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors from request binding.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// StatusFor maps a domain error kind to its HTTP status code. Unknown errors
// map to 500 and must be rendered as a generic message by the caller.
func StatusFor(err error) int {
	switch domerr.KindOf(err) {
	case domerr.KindValidation, domerr.KindImmutableField:
		return http.StatusUnprocessableEntity
	case domerr.KindNotFound:
		return http.StatusNotFound
	case domerr.KindConflict, domerr.KindState:
		return http.StatusConflict
	case domerr.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// FromDomain builds the client-facing envelope for a domain error. Internal
// errors get a fixed message so nothing about the failure leaks out.
func FromDomain(err error) (int, *APIError) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		return status, New("Error interno del servidor")
	}
	resp := New(err.Error())
	var derr *domerr.Error
	if errors.As(err, &derr) && derr.Field != "" {
		resp.Field = derr.Field
	}
	return status, resp
}
