// Package errors provides custom error types for the Kharcha API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Pipeline errors. Every analytics operation that cannot produce a result
// reports one of these instead of raising to the caller uncaught.
var (
	ErrParseFailure      = &AppError{Code: "PARSE_FAILURE", Message: "Value could not be interpreted", StatusCode: http.StatusUnprocessableEntity}
	ErrInsufficientData  = &AppError{Code: "INSUFFICIENT_DATA", Message: "Not enough data for this operation", StatusCode: http.StatusUnprocessableEntity}
	ErrDivisionUndefined = &AppError{Code: "DIVISION_UNDEFINED", Message: "Comparison base is zero", StatusCode: http.StatusUnprocessableEntity}
	ErrIOFailure         = &AppError{Code: "IO_FAILURE", Message: "Storage or file access failed", StatusCode: http.StatusInternalServerError}
)
