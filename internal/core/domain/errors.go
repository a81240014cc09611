package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrPriceNotFound = errors.New("price not found")
var ErrCountryNotFound = errors.New("country not found")
var ErrCountryExists = errors.New("country already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidUpdate = errors.New("invalid updates")

// ValidationError reports which input fields failed validation. It renders
// as a 400 at the transport layer.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// NewValidationError builds a ValidationError naming the offending fields.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Invalidf formats a single-field validation failure.
func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Fields: []string{fmt.Sprintf(format, args...)}}
}
