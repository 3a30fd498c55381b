package apperr

import (
	"fmt"
	"net/http"
)

// Kind identifies one of the expected failure categories raised by guards,
// validators, and services. Anything outside this set is treated as
// unexpected and surfaced as a 500.
type Kind int

const (
	KindUnexpected Kind = iota
	KindMissingToken
	KindInvalidToken
	KindForbidden
	KindMalformedID
	KindValidation
	KindNotFound
	KindConflict
	KindWriteFailure
)

// String returns the machine-readable name of the kind, used in the
// `error` field of failure envelopes.
func (k Kind) String() string {
	switch k {
	case KindMissingToken:
		return "missing_token"
	case KindInvalidToken:
		return "invalid_token"
	case KindForbidden:
		return "forbidden"
	case KindMalformedID:
		return "malformed_id"
	case KindValidation:
		return "validation_error"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindWriteFailure:
		return "write_failure"
	default:
		return "internal_error"
	}
}

// HTTPStatus maps a kind to its transport status code. The 403/404 split for
// token failures and the 412 for validation/conflict are existing API
// conventions, preserved as-is.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindMissingToken, KindForbidden:
		return http.StatusForbidden
	case KindInvalidToken, KindNotFound:
		return http.StatusNotFound
	case KindMalformedID, KindValidation, KindConflict:
		return http.StatusPreconditionFailed
	case KindWriteFailure:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed application error carrying its kind, a client-facing
// message, and an optional wrapped cause kept for internal diagnostics.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// MissingToken indicates no credential was supplied with the request.
func MissingToken() *Error {
	return &Error{Kind: KindMissingToken, Message: "Token needed to access resources"}
}

// InvalidToken indicates the credential failed verification or resolves to a
// principal that no longer exists.
func InvalidToken() *Error {
	return &Error{Kind: KindInvalidToken, Message: "Invalid token"}
}

// Forbidden indicates the principal lacks the required role or capability.
func Forbidden(message string) *Error {
	if message == "" {
		message = "You are not permitted to perform this action"
	}
	return &Error{Kind: KindForbidden, Message: message}
}

// MalformedID indicates a path identifier failed its shape check.
func MalformedID() *Error {
	return &Error{Kind: KindMalformedID, Message: "Invalid Id supplied"}
}

// Validation indicates a payload failed schema validation.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound indicates a looked-up entity does not exist.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// Conflict indicates a uniqueness or state precondition was violated.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// WriteFailure wraps a downstream write failure not otherwise classified.
func WriteFailure(message string, err error) *Error {
	return &Error{Kind: KindWriteFailure, Message: message, Err: err}
}

// Unexpected wraps an unclassified failure. The cause is retained for logs
// but never reaches the client body.
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: "Internal server error", Err: err}
}
