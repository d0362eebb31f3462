package errors

import (
	"errors"
	"fmt"
)

// InvalidInputError reports that one or more checked candidates were not
// valid ISBNs. It is only returned when strict mode is enabled.
type InvalidInputError struct {
	Invalid int
	Total   int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%d of %d inputs are not valid ISBNs", e.Invalid, e.Total)
}

// NewInvalidInputError creates an InvalidInputError for the given counts.
func NewInvalidInputError(invalid, total int) *InvalidInputError {
	return &InvalidInputError{Invalid: invalid, Total: total}
}

// IsInvalidInputError reports whether err is an InvalidInputError (even when wrapped).
func IsInvalidInputError(err error) bool {
	var invalidErr *InvalidInputError
	return errors.As(err, &invalidErr)
}
