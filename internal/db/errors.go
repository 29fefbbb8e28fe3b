package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsContention reports whether err is a transient write conflict worth
// retrying: a duplicate-key race (two writers creating the same row), a
// serialization failure, or a held write lock. Covers the Postgres error
// strings plus sqlite's busy/locked messages for the test driver.
func IsContention(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "could not serialize access"),
		strings.Contains(msg, "deadlock detected"),
		strings.Contains(msg, "database is locked"),
		strings.Contains(msg, "database table is locked"):
		return true
	}
	return false
}
