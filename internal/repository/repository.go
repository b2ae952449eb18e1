// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) and contain no business logic.
package repository

import "errors"

var (
	// ErrConflict marks a serialization failure; the whole operation may be retried.
	ErrConflict = errors.New("serialization conflict")
	// ErrUniqueViolation marks a rejected insert or update of a unique column.
	ErrUniqueViolation = errors.New("unique violation")
)
