// Package errors is the error toolkit shared by the domain and infra layers:
// sentinel errors from the standard library, stack-carrying wraps from pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel error without a stack, for package-level vars.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Errorf formats a new error annotated with the caller's stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap annotates err with message and a stack. It returns nil for a nil err.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack annotates err with the caller's stack. It returns nil for a nil err.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
