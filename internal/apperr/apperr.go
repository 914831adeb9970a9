// internal/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
)

// Kind categorizes a failure the same way the client-facing RPC layer reports
// it. Handlers map each kind to an HTTP status; callers can branch on it with
// KindOf without string-matching messages.
type Kind string

const (
	InvalidArgument    Kind = "invalid-argument"
	NotFound           Kind = "not-found"
	PermissionDenied   Kind = "permission-denied"
	ResourceExhausted  Kind = "resource-exhausted"
	FailedPrecondition Kind = "failed-precondition"
	Internal           Kind = "internal"
)

// Error is a categorized error. Msg is safe to surface to clients verbatim.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a categorized error with a client-visible message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf is New with formatting.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and client-visible message to an underlying error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err, or Internal if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message extracts the client-visible message from err. Uncategorized errors
// surface a generic message so internal details never leak to clients.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal error"
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
