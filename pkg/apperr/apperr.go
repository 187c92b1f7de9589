package apperr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds shared by services and controllers. Services wrap
// them with context via Wrap; controllers match with errors.Is to pick a
// status code. Nothing in the request path retries.
var (
	ErrValidation    = errors.New("validation error")
	ErrEmptyCart     = errors.New("empty cart")
	ErrMissingField  = errors.New("missing field")
	ErrNotFound      = errors.New("not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrConflict      = errors.New("conflict")
)

// Wrap attaches a user-facing message to a kind. The message, not the kind
// name, is what ends up in the response body.
func Wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
