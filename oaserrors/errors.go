package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrTypeMismatch indicates a value of the wrong shape was supplied to a
	// typed attribute or list.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrConstruction indicates a raw mapping could not be turned into a node.
	ErrConstruction = errors.New("construction error")

	// ErrInvariant indicates a node-specific required-field rule failed.
	ErrInvariant = errors.New("invariant violation")

	// ErrUnknownStatusCode indicates an HTTP status code with no registered
	// reason phrase.
	ErrUnknownStatusCode = errors.New("unknown status code")
)

// TypeMismatchError reports a value that is neither the expected node type,
// a coercible mapping, nor an already-canonical node.
type TypeMismatchError struct {
	// Value is the offending value as supplied by the caller.
	Value any
	// Actual is the Go type of the offending value.
	Actual string
	// Expected names the node type the attribute or list was declared with.
	Expected string
	// Message provides additional context about the failure.
	Message string
}

// Error returns a human-readable error message.
func (e *TypeMismatchError) Error() string {
	msg := "type mismatch"
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}
	if e.Actual != "" {
		msg += ", got " + e.Actual
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (%v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as TypeMismatchError has no underlying cause.
func (e *TypeMismatchError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ConstructionError reports a raw mapping that could not be turned into the
// expected node type, either because a required field was missing or because
// a field failed its own invariant check. The underlying failure is preserved
// in Cause.
type ConstructionError struct {
	// TypeName is the node type that was being constructed.
	TypeName string
	// Input is the raw mapping as supplied by the caller, before alias
	// resolution.
	Input map[string]any
	// Cause is the underlying construction failure.
	Cause error
}

// Error returns a human-readable error message.
func (e *ConstructionError) Error() string {
	msg := "construction error"
	if e.TypeName != "" {
		msg += " for " + e.TypeName
	}
	if e.Input != nil {
		msg += fmt.Sprintf(": input %v", e.Input)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConstructionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

// InvariantViolationError reports a node-specific required-field rule that
// failed at construction time.
type InvariantViolationError struct {
	// TypeName is the node type whose invariant failed.
	TypeName string
	// Field is the specific field with the issue, if any.
	Field string
	// Message describes the violated rule.
	Message string
}

// Error returns a human-readable error message.
func (e *InvariantViolationError) Error() string {
	msg := "invariant violation"
	if e.TypeName != "" {
		msg += " in " + e.TypeName
	}
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as InvariantViolationError has no underlying cause.
func (e *InvariantViolationError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InvariantViolationError) Is(target error) bool {
	return target == ErrInvariant
}

// UnknownStatusCodeError reports an HTTP status code that has no registered
// reason phrase.
type UnknownStatusCodeError struct {
	// StatusCode is the unrecognized code.
	StatusCode int
}

// Error returns a human-readable error message.
func (e *UnknownStatusCodeError) Error() string {
	return fmt.Sprintf("unknown status code: %d", e.StatusCode)
}

// Unwrap returns nil as UnknownStatusCodeError has no underlying cause.
func (e *UnknownStatusCodeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnknownStatusCodeError) Is(target error) bool {
	return target == ErrUnknownStatusCode
}
