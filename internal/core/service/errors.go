package service

import "net/http"

// ServiceError carries an HTTP status code alongside a client-safe message.
// Anything that is not a *ServiceError is treated as an internal failure by
// the API layer and surfaced as a generic 500.
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code int, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) *ServiceError {
	return NewServiceError(http.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) *ServiceError {
	return NewServiceError(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *ServiceError {
	return NewServiceError(http.StatusForbidden, message)
}

func NewNotFoundError(message string) *ServiceError {
	return NewServiceError(http.StatusNotFound, message)
}

// NewConflictError maps duplicate unique keys. Returned as 400 to match the
// signup surface, which reports duplicates the same way as invalid input.
func NewConflictError(message string) *ServiceError {
	return NewServiceError(http.StatusBadRequest, message)
}
