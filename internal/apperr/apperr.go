// Package apperr classifies operation failures so transport code can map
// them to status codes without string matching.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindInternal covers unexpected store or connectivity failures.
	KindInternal Kind = iota
	// KindValidation covers malformed or missing input.
	KindValidation
	// KindNotFound covers references to entities that do not exist.
	KindNotFound
	// KindConsistency covers referential invariant violations that are not
	// a plain missing row, e.g. a weapon outside the chosen loadout.
	KindConsistency
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConsistency:
		return "consistency"
	default:
		return "internal"
	}
}

// Error carries a failure kind, the entity it concerns (for NotFound
// diagnostics), and a human-readable message.
type Error struct {
	Kind   Kind
	Entity string
	msg    string
	cause  error
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.cause }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

func NotFound(entity, format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, msg: fmt.Sprintf(format, args...)}
}

func Consistency(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConsistency, msg: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure. The cause is kept for logs; callers
// only ever see the message.
func Internal(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, msg: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf reports the kind of err, defaulting to KindInternal for errors that
// were never classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// EntityOf reports the entity label of a NotFound error, or "".
func EntityOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Entity
	}
	return ""
}
