package domain

import (
	"errors"
	"fmt"
)

// Validation failures surfaced to the invoking action. None of them leave partial state.
var (
	ErrMissingField       = errors.New("required field is missing")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidAmount      = errors.New("amount must be greater than 0")
	ErrUnknownAsset       = errors.New("unknown asset")
	ErrReminderInPast     = errors.New("reminder time must be in the future")
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// FieldError names the empty field of a rejected request. It matches ErrMissingField.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, ErrMissingField)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

// MissingField returns the error reported for an empty required field.
func MissingField(field string) error {
	return &FieldError{Field: field}
}
