// Package apperr defines the error taxonomy shared by all services.
// Services return these unwrapped; the HTTP layer maps them to status
// codes in one place.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both genuinely absent records and records the
	// caller is not allowed to see, so existence never leaks.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the target version has been superseded by an edit.
	ErrConflict = errors.New("this version has been superseded")

	// ErrUnauthorized covers missing login, insufficient role and
	// posting suspensions.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUpstream wraps failures from external collaborators such as the
	// student-living site.
	ErrUpstream = errors.New("upstream failure")
)

// ValidationError reports malformed or too-short input on a named field.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
