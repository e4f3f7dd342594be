package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against these to decide how a failure is surfaced.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Storage level errors
var (
	ErrAccountNotFound     = fmt.Errorf("account %w", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)
	ErrAccountNumberTaken  = errors.New("account number already exists")
)

// Error carries a message meant to be shown to the caller as is
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}

func Validation(message string) error {
	return &Error{kind: ErrValidation, message: message}
}

func NotFound(message string) error {
	return &Error{kind: ErrNotFound, message: message}
}

func InvalidState(message string) error {
	return &Error{kind: ErrInvalidState, message: message}
}

func InsufficientFunds(message string) error {
	return &Error{kind: ErrInsufficientFunds, message: message}
}
