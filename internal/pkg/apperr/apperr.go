// Package apperr carries the engine's error taxonomy. Lookup misses and
// conflicts are recovered into typed values at the service boundary; store
// failures pass through wrapped as transient so callers can decide on retry.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindValidation
	KindTransient
)

// Error is a classified engine error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports a missing id, slug or unique-key lookup.
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Conflict reports a duplicate unique key on create.
func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// Validation reports rejected input.
func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Transient wraps a store/connectivity failure that is safe to retry for
// idempotent operations.
func Transient(err error, msg string) error {
	return &Error{Kind: KindTransient, Msg: msg, Err: err}
}

func is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool   { return is(err, KindNotFound) }
func IsConflict(err error) bool   { return is(err, KindConflict) }
func IsValidation(err error) bool { return is(err, KindValidation) }
func IsTransient(err error) bool  { return is(err, KindTransient) }
