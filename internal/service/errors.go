package service

import (
	"database/sql"
	"errors"
	"fmt"

	"stockroom/internal/repository"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrForbidden       = errors.New("forbidden")
	ErrUniqueViolation = errors.New("already exists")
	ErrUnauthorized    = errors.New("unauthorized")
	// ErrConflict is retryable: a concurrent transaction touched the same rows.
	ErrConflict = errors.New("conflict, retry the operation")
	// ErrCapacityExceeded is a BadRequest that callers can tell apart.
	ErrCapacityExceeded = fmt.Errorf("%w: no free space on shelves", ErrBadRequest)
)

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

// translate maps repository errors onto service sentinels. what names the
// missing entity for NotFound.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s %w", what, ErrNotFound)
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, repository.ErrUniqueViolation):
		return fmt.Errorf("%w: %v", ErrUniqueViolation, err)
	}
	return err
}
