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
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Entity names used in NotFoundError messages.
const (
	EntityJournal  = "journal"
	EntityMealItem = "meal item"
	EntityRecipe   = "recipe"
	EntityUser     = "user"
)

// NotFoundError reports which entity is missing. It unwraps to ErrNotFound,
// so callers that only care about the class can keep using errors.Is.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a NotFoundError for the given entity.
func NewNotFoundError(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

// InternalError wraps an unexpected storage failure at an operation boundary.
// Op names the operation; Err keeps the original cause for diagnostics.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: internal error: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// NewInternalError wraps err unless it already carries a domain
// classification (not found, validation, ...), in which case it is returned
// unchanged.
func NewInternalError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsClassified(err) {
		return err
	}
	return &InternalError{Op: op, Err: err}
}

// IsClassified reports whether err maps onto one of the domain sentinels.
func IsClassified(err error) bool {
	for _, s := range []error{ErrNotFound, ErrAlreadyExists, ErrValidation, ErrUnauthorized, ErrForbidden, ErrConflict} {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
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
