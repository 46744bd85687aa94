// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
)

// Error is a status-coded error with an optional cause.
type Error struct {
	Code    Status
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Code.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches a target Status or another *Error with the same code.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Status:
		return e.Code == t
	case *Error:
		return e.Code == t.Code
	default:
		return false
	}
}

// Wrap wraps err with the status. Wrap returns nil if err is nil. If err
// already carries a known status, that status is preserved as the cause so
// Is still matches it.
func (s Status) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: s, Cause: err}
}

// With constructs an error from the status and the print of v.
func (s Status) With(v ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprint(v...)}
}

// WithFormat constructs an error from the status and a format string. If the
// format wraps an error with %w, the wrapped error is recorded as the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	e := &Error{Code: s, Message: err.Error()}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		e.Cause = u.Unwrap()
	}
	return e
}

// Code returns the status of err, or UnknownError if err carries none.
// Code returns OK for a nil error.
func Code(err error) Status {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return UnknownError
}

// Is, As, New, and Unwrap pass through to the standard library so callers do
// not need to import both packages.
func Is(err, target error) bool             { return errors.Is(err, target) }
func As(err error, target interface{}) bool { return errors.As(err, target) }
func New(text string) error                 { return errors.New(text) }
func Unwrap(err error) error                { return errors.Unwrap(err) }
