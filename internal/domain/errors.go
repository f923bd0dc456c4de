package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is returned by the operation catalog when a name
// has no registered operation. Reported to the caller, never fatal.
var ErrUnknownOperation = errors.New("unknown operation")

// ValidationError signals bad caller input: malformed operand text,
// magnitude over the configured limit, or a domain violation such as
// division by zero. Always recoverable; no engine state is mutated
// before validation completes.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// OperationError signals a failure outside the caller's control: no
// active operation set, persistence I/O failures, corrupt persisted
// data, or an unexpected internal failure during execution. The
// original cause, when present, is preserved for errors.Is/As.
type OperationError struct {
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates an OperationError wrapping cause. A nil
// cause is allowed for conditions with no underlying error.
func NewOperationError(message string, cause error) *OperationError {
	return &OperationError{Message: message, Err: cause}
}
