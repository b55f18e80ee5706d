package services

import (
	"errors"
	"fmt"
)

// Sentinel errors handlers translate into HTTP responses. Ownership
// failures surface as the not-found errors on purpose: a caller probing
// someone else's resource learns nothing beyond "no such thing".
var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTaskListNotFound   = errors.New("task list not found")
	ErrTaskNotFound       = errors.New("task not found")
)

// ValidationError carries a user-facing message about rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
