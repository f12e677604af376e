package errors

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a repository or service wraps exactly
// one of these so handlers can map it to a status code with errors.Is.
var (
	ErrAuthenticationRequired = errors.New("unauthenticated")
	ErrPermissionDenied       = errors.New("forbidden")
	ErrNotFound               = errors.New("not found")
	ErrDuplicateKey           = errors.New("duplicate key")
	ErrValidationFailed       = errors.New("validation failed")
	ErrTransientIO            = errors.New("store unavailable")
)

var (
	ErrInvalidToken = New(ErrAuthenticationRequired, "invalid or expired token")
	ErrNoProfile    = New(ErrAuthenticationRequired, "no profile for authenticated user")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// New returns a sentinel error carrying msg that matches kind under errors.Is.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Wrap annotates err with the store operation that failed and tags it as
// ErrTransientIO.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransientIO, err)
}

type AppError struct {
	Code    string
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
	if e.Code == "VALIDATION_ERROR" {
		return ErrValidationFailed
	}
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation is shorthand for the VALIDATION_ERROR AppError.
func Validation(message string, err error) *AppError {
	return NewAppError("VALIDATION_ERROR", message, err)
}
