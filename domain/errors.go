package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the item was modified by a concurrent request
	ErrConflict = errors.New("Your Item was modified concurrently")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrUnauthenticated will throw if the identity token is missing or empty
	ErrUnauthenticated = errors.New("Missing identity token")
	// ErrForbidden will throw if the caller is not the owner of the listing
	ErrForbidden = errors.New("You are not allowed to modify this listing")
	// ErrInvalidTransition will throw on a status change out of a terminal state
	ErrInvalidTransition = errors.New("Invalid status transition")
	// ErrStorageUnavailable will throw if the persistence layer is unreachable
	ErrStorageUnavailable = errors.New("Storage unavailable")
)

// ValidationError reports the missing or malformed fields of a request.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}

// IsValidationError unwraps err into a *ValidationError if it is one.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
