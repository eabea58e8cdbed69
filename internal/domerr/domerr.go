// Package domerr defines the typed failure taxonomy shared by every domain
// service. Services fail fast with exactly one of these kinds; handlers
// translate them into HTTP statuses and never leak gorm or driver errors.
package domerr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: missing or malformed field.
	KindValidation
	// KindNotFound: unknown entity id.
	KindNotFound
	// KindConflict: uniqueness violation (e.g. duplicate tracking_code).
	KindConflict
	// KindForbidden: the caller's role lacks the capability.
	KindForbidden
	// KindImmutableField: attempted change to a write-once field.
	KindImmutableField
	// KindState: illegal state transition or mutation of a terminal entity.
	KindState
)

// Error carries the kind plus the entity/operation/field that was refused,
// so callers can render a precise message without parsing strings.
type Error struct {
	Kind   Kind
	Msg    string
	Entity string
	Op     string
	Field  string
}

func (e *Error) Error() string { return e.Msg }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

func Forbidden(entity, op, field string) *Error {
	return &Error{
		Kind: KindForbidden, Entity: entity, Op: op, Field: field,
		Msg: "permisos insuficientes",
	}
}

func ImmutableField(field string) *Error {
	return &Error{
		Kind: KindImmutableField, Field: field,
		Msg: "el campo " + field + " no puede modificarse",
	}
}

func State(msg string) *Error {
	return &Error{Kind: KindState, Msg: msg}
}

// KindOf extracts the Kind from an error chain; KindUnknown when err is not
// a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func Is(err error, k Kind) bool { return KindOf(err) == k }
