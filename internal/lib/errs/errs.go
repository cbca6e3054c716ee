// Package errs defines the error kinds that cross the service boundary.
//
// Services return *Error values built by the constructors below; handlers
// match on the kind sentinels with errors.Is and render the message as-is.
package errs

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrAuthorization   = errors.New("not authorized")
	ErrConflict        = errors.New("conflict")
	ErrPolicy          = errors.New("not allowed by policy")
	ErrValidation      = errors.New("invalid input")
	ErrUnauthenticated = errors.New("not authenticated")
)

// Error is a user-facing error of a given kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}

func Authorization(msg string) *Error {
	return &Error{Kind: ErrAuthorization, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: ErrConflict, Msg: msg}
}

func Policy(msg string) *Error {
	return &Error{Kind: ErrPolicy, Msg: msg}
}

func Validation(msg string) *Error {
	return &Error{Kind: ErrValidation, Msg: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: ErrUnauthenticated, Msg: msg}
}

// Message returns the user-facing text of err if it carries a kind, otherwise fallback.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}

	return fallback
}
