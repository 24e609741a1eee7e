package apperr

import (
	"errors"
	"fmt"
)

// Error codes shared across packages.
const (
	CodeInvalidArgument = 1000 + iota
	CodeAllocationFailure
	CodeInvalidConfig
	CodeInternal
)

// AppError is an error carrying a stable code, a message and an optional cause.
type AppError struct {
	Code    int
	Message string
	Cause   error
}

// New creates a new AppError.
func New(code int, msg string, cause error) *AppError {
	return &AppError{Code: code, Message: msg, Cause: cause}
}

// Wrap attaches a code and message to err. Returns nil when err is nil.
func Wrap(err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, err)
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *AppError) Unwrap() error { return e.Cause }

// Is matches an *AppError with the same code and message, so distinct
// sentinels sharing a code stay distinguishable. Use CodeOf to test by code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == e.Message
}

// CodeOf returns the code of the first AppError in err's chain, or 0.
func CodeOf(err error) int {
	var e *AppError
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}
