package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrConflict          = errors.New("conflict")
)

// sanitize collapses newlines so formatted error messages stay on a single line.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ObjectNotFoundError indicates that an object could not be located in storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) ObjectNotFoundError {
	return ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) ObjectNotFoundError {
	return ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a mandatory value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates an aggregate version mismatch.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping a cause.
func NewVersionIsInvalidError(paramName string, cause error) VersionIsInvalidError {
	return VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) VersionIsInvalidError {
	return VersionIsInvalidError{ParamName: paramName}
}

func (e VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ConflictError indicates that the store rejected a write because it collides with
// existing state, typically a uniqueness violation on a derived identifier.
// Callers may retry the operation exactly once.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without an underlying cause.
func NewConflictError(paramName string, id any) ConflictError {
	return ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping a cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) ConflictError {
	return ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.ID)
}

func (e ConflictError) Unwrap() error {
	return ErrConflict
}
