// Package ierrors provides a thin wrapper around github.com/cockroachdb/errors so that the rest of the module creates,
// wraps and inspects errors through a single, small API. Every constructor captures a stacktrace at the call site.
package ierrors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
// A %w verb in the format wraps the corresponding error operand.
func Errorf(format string, args ...any) error {
	return errors.WithStackDepth(fmt.Errorf(format, args...), 1)
}

// Wrap prepends an error with a message and wraps it into a new error.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf prepends an error with a message format specifier and arguments and wraps it into a new error.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// WithMessage appends a message to the error and wraps it into a new error.
func WithMessage(err error, message string) error {
	if err == nil {
		return nil
	}

	return errors.WithStackDepth(fmt.Errorf("%w: %s", err, message), 1)
}

// WithMessagef appends a message format specifier and arguments to the error and wraps it into a new error.
func WithMessagef(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return errors.WithStackDepth(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)), 1)
}

// WithStack annotates err with a stacktrace at the point WithStack was called. The error message is unchanged.
func WithStack(err error) error {
	return errors.WithStackDepth(err, 1)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target, and if one is found, sets target to that error value and
// returns true. Otherwise, it returns false.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if err's type contains an Unwrap method returning
// error. Otherwise, Unwrap returns nil.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
