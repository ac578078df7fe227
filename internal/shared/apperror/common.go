package apperror

import (
	"fmt"
)

var (
	ErrNotFound     = New(CodeNotFound, "Resource not found", 0)
	ErrForbidden    = New(CodeForbidden, "You do not have permission to access this resource", 0)
	ErrInternal     = New(CodeInternalError, "An unexpected error occurred", 0)
	ErrUnauthorized = New(CodeUnauthorized, "Authentication is required", 0)
	ErrInvalidInput = New(CodeInvalidInput, "The provided input is invalid", 0)
)

func InvalidInput(message string) *AppError    { return New(CodeInvalidInput, message, 0) }
func NotFound(message string) *AppError        { return New(CodeNotFound, message, 0) }
func Conflict(message string) *AppError        { return New(CodeConflict, message, 0) }
func InvalidState(message string) *AppError    { return New(CodeInvalidState, message, 0) }
func Unauthorized(message string) *AppError    { return New(CodeUnauthorized, message, 0) }
func TooManyRequests(message string) *AppError { return New(CodeTooManyRequests, message, 0) }

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

func RequiredField(field string) *AppError {
	return fieldError(FieldError{Field: field, Rule: "required", Message: fmt.Sprintf("%s is required", humanize(field))})
}

func InvalidField(field string) *AppError {
	return fieldError(FieldError{Field: field, Rule: "invalid", Message: fmt.Sprintf("%s is invalid", humanize(field))})
}

func fieldError(fields ...FieldError) *AppError {
	appErr := New(CodeValidation, fields[0].Message, 0)
	appErr.Details = fields
	return appErr
}
