package gormdb

import (
	"strings"

	"leafcare/internal/domain/repository"
	"leafcare/internal/errors"

	"gorm.io/gorm"
)

// Driver messages used when an error escapes GORM's translator, e.g. one wrapped by a driver plugin.
var (
	uniqueViolationMarkers = []string{
		"unique constraint failed", // sqlite
		"duplicate key value",      // postgres
		"duplicate entry",          // mysql
	}
	foreignKeyViolationMarkers = []string{
		"foreign key constraint failed",        // sqlite
		"violates foreign key constraint",      // postgres
		"a foreign key constraint fails",       // mysql
		"cannot delete or update a parent row", // mysql
	}
)

// isUniqueConstraintViolation reports whether err comes from a unique index.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return containsAny(err, uniqueViolationMarkers)
}

// isForeignKeyConstraintViolation reports whether err comes from a foreign key.
func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return containsAny(err, foreignKeyViolationMarkers)
}

func containsAny(err error, markers []string) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range markers {
		if strings.Contains(msg, marker) {
			return true
		}
	}

	return false
}

// translateWriteError maps constraint violations onto repository errors and wraps everything else.
func translateWriteError(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrDuplicate, action)
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(repository.ErrReferenced, action)
	default:
		return errors.Wrap(err, action)
	}
}

// translateReadError maps a missing row onto repository.ErrNotFound.
func translateReadError(err error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}

	return errors.Wrap(err, action)
}
