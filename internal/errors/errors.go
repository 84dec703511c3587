// Package errors lets infrastructure code import one errors package: the
// stdlib inspection helpers plus the pkg/errors constructors that record a
// stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func Join(errs ...error) error { return stderrors.Join(errs...) }

// New, Errorf, Wrap, Wrapf and WithStack capture the caller's stack.

func New(text string) error { return pkgerrors.New(text) }

func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }
