package domain

import (
	"fmt"
	"net/http"
)

// AppError is an application error carrying an HTTP status and a stable code.
// The message is safe to return to clients.
type AppError struct {
	Code    string
	Message string
	Status  int
}

func (e *AppError) Error() string { return e.Message }

// NewValidationError reports missing or malformed input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, Status: http.StatusBadRequest}
}

// NewConflictError reports a write that would violate a uniqueness rule.
func NewConflictError(message string) *AppError {
	return &AppError{Code: "CONFLICT", Message: message, Status: http.StatusConflict}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s %s not found", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewConfigurationError reports a required setting that is absent at runtime.
func NewConfigurationError(message string) *AppError {
	return &AppError{Code: "CONFIGURATION_ERROR", Message: message, Status: http.StatusInternalServerError}
}
