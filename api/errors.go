// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-pooled.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library. Structured errors unwrap to one of these.
var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrOutOfRange             = errors.New("argument out of range")
	ErrEmptyCollection        = errors.New("collection is empty")
	ErrConcurrentModification = errors.New("collection was modified during enumeration")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeOutOfRange
	ErrCodeEmptyCollection
	ErrCodeConcurrentModification
)

// String returns the code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeEmptyCollection:
		return "empty_collection"
	case ErrCodeConcurrentModification:
		return "concurrent_modification"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// sentinel maps a code to the package-level error it unwraps to.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeEmptyCollection:
		return ErrEmptyCollection
	case ErrCodeConcurrentModification:
		return ErrConcurrentModification
	default:
		return nil
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// InvalidArgument builds an ErrCodeInvalidArgument error naming the argument.
func InvalidArgument(param, reason string) *Error {
	return NewError(ErrCodeInvalidArgument, fmt.Sprintf("invalid argument %q: %s", param, reason)).
		WithContext("param", param)
}

// OutOfRange builds an ErrCodeOutOfRange error carrying the rejected value.
func OutOfRange(param string, value int) *Error {
	return NewError(ErrCodeOutOfRange, fmt.Sprintf("argument %q out of range", param)).
		WithContext("param", param).
		WithContext("value", value)
}

// EmptyCollection builds an ErrCodeEmptyCollection error for the given container kind.
func EmptyCollection(kind string) *Error {
	return NewError(ErrCodeEmptyCollection, kind+" is empty")
}

// ConcurrentModification builds an ErrCodeConcurrentModification error.
func ConcurrentModification(kind string, want, got uint64) *Error {
	return NewError(ErrCodeConcurrentModification, kind+" was modified during enumeration").
		WithContext("version", want).
		WithContext("current", got)
}
