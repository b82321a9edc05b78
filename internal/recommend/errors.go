package recommend

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation means a required request key is absent.
	ErrValidation = errors.New("invalid request")
	// ErrDataUnavailable means the catalog could not be read or was empty.
	ErrDataUnavailable = errors.New("materials data unavailable")
	// ErrInternal wraps unexpected failures, including recovered panics.
	ErrInternal = errors.New("internal error")
)

// ValidationError carries the request keys that were missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
