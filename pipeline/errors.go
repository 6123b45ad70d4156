package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required key is absent from the
	// request document.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidField is returned when a key is present but its value cannot
	// be used.
	ErrInvalidField = errors.New("invalid field")
)

func missing(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, path)
}

func invalid(path, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidField, path, reason)
}

// fieldError adds the document path to an accessor error.
func fieldError(path string, err error) error {
	return fmt.Errorf("%s: %w", path, err)
}
