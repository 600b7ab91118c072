package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is the sentinel matched by every [*ValidationError],
	// so callers can branch with errors.Is without caring which fields
	// were rejected.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports every required field that was missing or empty on
// a single record. It is user-correctable and never fatal.
type ValidationError struct {
	Collection string
	Missing    []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Collection, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MissingFields extracts the rejected field names from err, or nil when err
// is not a [*ValidationError].
func MissingFields(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Missing
	}
	return nil
}
