package service

import "fmt"

// ServiceError wraps an unexpected store failure with the operation that hit it.
// Expected conditions are reported with domain sentinels instead.
type ServiceError struct {
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError for operation.
func NewServiceError(operation string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Err: err}
}
