package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks operations whose target row does not exist.
	ErrNotFound = errors.New("does not exist")

	// ErrInvalidArgument marks a nil entity passed to a mutating operation.
	ErrInvalidArgument = errors.New("entity must not be nil")
)

func notFound(resource string, id uint) error {
	return fmt.Errorf("%s with ID %d %w", resource, id, ErrNotFound)
}
