package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MsgRequired is the per-field message for a missing required value.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrTooLarge    = errors.New("too large")

	// ErrUnknownField is returned when a record entity is read or written
	// through a field name outside its fixed field set. It signals a caller
	// contract violation, not bad input data, and is never suppressed.
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UnknownFieldError reports the offending name together with ErrUnknownField.
type UnknownFieldError struct {
	Entity string
	Name   string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: %q is not an allowed attribute: %s", e.Entity, e.Name, ErrUnknownField.Error())
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}
