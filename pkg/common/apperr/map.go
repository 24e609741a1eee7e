package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgCreateFailed   = "failed to create"
	MsgLoadFailed     = "failed to load"
	MsgValidateFailed = "failed to validate"
	MsgProcessFailed  = "failed to process"
)

// MapError wraps an error with a standardized message
func MapError(component string, err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", component, msg)
	return Wrap(err, code, formattedMsg)
}

// NewError creates a new AppError with standardized message format
func NewError(component string, code int, msg string, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", component, msg)
	return New(code, formattedMsg, cause)
}
