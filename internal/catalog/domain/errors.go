package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the catalog services wraps exactly
// one of these, so callers branch with errors.Is.
var (
	// ErrValidation marks malformed input: unparsable dates, missing fields.
	ErrValidation = errors.New("validation error")

	// ErrConflict marks a transition not allowed from the current state.
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks a referenced record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDependency marks a failed write to the backing store.
	ErrDependency = errors.New("dependency error")
)

// Validationf builds an ErrValidation with a formatted detail.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Kind returns the kind sentinel err wraps, or nil.
func Kind(err error) error {
	for _, k := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrDependency} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
