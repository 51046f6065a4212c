// Package errors combines the stdlib error tree helpers with pkg/errors stack traces.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType returns the first error in err's tree of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap annotates err with a stack trace and message. Wrap(nil) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack annotates err with a stack trace. WithStack(nil) is nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
