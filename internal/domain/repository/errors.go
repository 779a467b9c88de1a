// Package repository defines the interfaces for the persistence layer.
package repository

import "github.com/pkg/errors"

// Persistence errors shared by every repository. Implementations translate driver
// errors into these so that use cases never inspect driver types.
var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("record already exists")
	// ErrReferenced is returned when a write violates a foreign key.
	ErrReferenced = errors.New("record is referenced by other records")
)
