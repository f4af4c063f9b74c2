package dto

import (
	"github.com/skillsphere/skillsphere/internal/pkg/apperrors"
)

// ErrorResponse is the uniform error shape returned by the API: a message and,
// for validation failures, per-field errors.
type ErrorResponse struct {
	Message string                 `json:"message" example:"Validation error"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
	Stack   string                 `json:"stack,omitempty"` // Populated outside production only
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// WithErrors attaches per-field validation errors
func (e *ErrorResponse) WithErrors(errors []apperrors.FieldError) *ErrorResponse {
	e.Errors = errors
	return e
}

// WithStack attaches a stack trace for non-production debugging
func (e *ErrorResponse) WithStack(stack string) *ErrorResponse {
	e.Stack = stack
	return e
}
