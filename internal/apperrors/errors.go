package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnknownCurrency indicates a currency identifier that cannot be mapped to
// a known currency code or name.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrRateNotFound indicates that no dated exchange rate record exists for an
// otherwise-known currency. Callers must not substitute a default rate.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrInvalidTransportMode indicates a transport mode outside the recognized enumeration.
var ErrInvalidTransportMode = errors.New("invalid mode of transportation")

// ErrMissingTransactionType indicates an empty transaction type was passed to
// the CAF determination.
var ErrMissingTransactionType = errors.New("transaction type cannot be empty")

// AppError carries an HTTP-ish status code alongside the wrapped cause so the
// handler layer can map infrastructure failures without string matching.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches errors.Is(err, ErrValidation).
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
