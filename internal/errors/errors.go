// Package errors is the single import for error handling in traiteur. Matching
// goes through the standard library so joined and wrapped trees are walked in
// full; annotation goes through pkg/errors so every wrap records a stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Construction.

func New(text string) error {
	return stderrors.New(text)
}

// Errorf builds a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Join keeps every non-nil error matchable with Is and AsType.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Matching.

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType finds the first error in the tree assignable to T, so callers can
// match interfaces such as domainerrors.AppError without a target variable.
func AsType[T error](err error) (T, bool) {
	var match T
	if stderrors.As(err, &match) {
		return match, true
	}

	return match, false
}

// Annotation. A nil err stays nil.

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
