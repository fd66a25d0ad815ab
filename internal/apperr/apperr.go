// Package apperr defines the user-facing error type shared across quiver
package apperr

import (
	"fmt"
)

// Error is an error with a human-readable message that is safe to show to the
// user. It may optionally wrap an underlying cause.
type Error struct {
	Cause    error
	Context  any
	Message  string
	template string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Wrap attaches an underlying error to a copy of e.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Context:  e.Context,
		Cause:    err,
		template: e.template,
	}
}

// Fmt returns a copy of e with its message formatted using the provided
// arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Context:  e.Context,
		Cause:    e.Cause,
		template: e.key(),
	}
}

// WithCtx returns a copy of e that carries additional context.
func (e *Error) WithCtx(ctx any) *Error {
	return &Error{
		Message:  e.Message,
		Context:  ctx,
		Cause:    e.Cause,
		template: e.template,
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same message template.
// Copies created with Fmt, Wrap or WithCtx therefore match the original
// sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.key() == e.key()
}

func (e *Error) key() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}
