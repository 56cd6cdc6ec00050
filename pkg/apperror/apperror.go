package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping. The set is closed;
// pkg/response switches over every value.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalidState
	KindInvalidOperation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindTooManyRequests
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidState:
		return "invalid_state"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

// FieldIssue describes a single invalid input field.
type FieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type Error struct {
	Kind    Kind
	Message string
	Details []FieldIssue
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string, details ...FieldIssue) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func InvalidState(message string) *Error {
	return New(KindInvalidState, message)
}

func InvalidOperation(message string) *Error {
	return New(KindInvalidOperation, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Internal wraps an unexpected failure. The message is safe to show to clients.
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
