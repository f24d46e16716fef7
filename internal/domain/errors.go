package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required argument is absent.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrTaskActive    = errors.New("task is already active")
	ErrTaskNotActive = errors.New("task is not active")
)

// MissingArgument returns an ErrInvalidArgument naming the absent parameter.
func MissingArgument(name string) error {
	return fmt.Errorf("%w: argument %q must not be nil", ErrInvalidArgument, name)
}
