package serrors

import "fmt"

// BaseError is a coded error used by API surfaces. Code is stable and
// machine-readable, Message is operator-facing, Details is optional context.
type BaseError struct {
	Code    string
	Message string
	Details string
}

func (e *BaseError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
}

func NewError(code, message, details string) *BaseError {
	return &BaseError{Code: code, Message: message, Details: details}
}

func NewValidationError(field string) *BaseError {
	return &BaseError{
		Code:    "VALIDATION_REQUIRED",
		Message: fmt.Sprintf("%s is required", field),
		Details: field,
	}
}
