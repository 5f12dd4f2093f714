package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// New returns an error with the given message.
func New(format string, args ...interface{}) error {
	if len(args) == 0 {
		return errors.New(format)
	}
	return errors.Errorf(format, args...)
}

// WithContext annotates `err` with a short description of the operation that
// failed. A nil error stays nil, so callers can wrap unconditionally.
func WithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, context)
}

// RootCause returns the innermost error that was wrapped with WithContext.
func RootCause(err error) error {
	return errors.Cause(err)
}

// As is a convenience wrapper so that callers don't have to import both this
// package and the standard library's errors package.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// FriendlyError is an error whose message is meant to be shown directly to
// the user, without the context chain.
type FriendlyError struct {
	msg string
}

// NewFriendlyError creates a FriendlyError from a format string.
func NewFriendlyError(template string, args ...interface{}) error {
	return FriendlyError{fmt.Sprintf(template, args...)}
}

func (err FriendlyError) Error() string {
	return err.msg
}

// FriendlyMessage returns the message to print to the user.
func (err FriendlyError) FriendlyMessage() string {
	return err.msg
}
