// Package fault classifies upstream failures as transient (worth retrying at
// a stage boundary, surfaced as 503) or permanent (recorded as failed,
// surfaced as 422). Classification survives wrapping with %w.
package fault

import (
	"errors"
	"fmt"
)

type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Transient marks err as a temporary upstream failure.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// Transientf formats and marks a transient error.
func Transientf(format string, args ...any) error {
	return &transientError{err: fmt.Errorf(format, args...)}
}

// Permanent marks err as an unretryable upstream failure.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Permanentf formats and marks a permanent error.
func Permanentf(format string, args ...any) error {
	return &permanentError{err: fmt.Errorf(format, args...)}
}

// IsTransient reports whether err is marked transient.
func IsTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// IsPermanent reports whether err is marked permanent.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}
