package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidState       = errors.New("invalid state")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAlreadyFinalized   = errors.New("booking already finalized")
	ErrProfileRequired    = errors.New("guide profile not found")
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "ERR_NOT_FOUND", message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "ERR_BAD_REQUEST", message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "ERR_UNAUTHORIZED", message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, "ERR_FORBIDDEN", message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, "ERR_CONFLICT", message, ErrAlreadyExists)
}

func InvalidState(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "ERR_INVALID_STATE", message, ErrInvalidState)
}

func AlreadyFinalized(message string) *AppError {
	return NewAppError(http.StatusConflict, "ERR_ALREADY_FINALIZED", message, ErrAlreadyFinalized)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "ERR_INTERNAL", "internal server error", err)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    "ERR_BAD_REQUEST",
		Message: message,
		Err:     err,
	}
}

// InsufficientFundsError carries the data a caller needs to prompt a
// wallet top-up.
type InsufficientFundsError struct {
	Required decimal.Decimal
	Balance  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance: required %s, available %s", e.Required.StringFixed(2), e.Balance.StringFixed(2))
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
