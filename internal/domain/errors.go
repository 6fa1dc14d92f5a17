package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UserFacingError is a business-rule violation whose message is shown to the
// client verbatim. It wraps one of the sentinel kinds above so the transport
// layer can still classify it with errors.Is.
type UserFacingError struct {
	Kind    error
	Message string
}

func (e *UserFacingError) Error() string { return e.Message }

func (e *UserFacingError) Unwrap() error { return e.Kind }

// Domain conflicts with their exact client-visible messages.
var (
	ErrCategoryNameEmpty    = &UserFacingError{Kind: ErrValidation, Message: "Category name cannot be empty"}
	ErrCategoryExists       = &UserFacingError{Kind: ErrAlreadyExists, Message: "Category already exists"}
	ErrCategoryNotFound     = &UserFacingError{Kind: ErrNotFound, Message: "Category does not exist"}
	ErrCategoryHasFavorites = &UserFacingError{Kind: ErrConflict, Message: "Cannot delete category because it has favorite things"}
	ErrEmailTaken           = &UserFacingError{Kind: ErrAlreadyExists, Message: "An account with this email already exists"}
	ErrInvalidCredentials   = &UserFacingError{Kind: ErrUnauthorized, Message: "Email or password is incorrect"}
)
