package db

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestIsContention(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm duplicated key", fmt.Errorf("create category: %w", gorm.ErrDuplicatedKey), true},
		{"postgres duplicate key", errors.New(`ERROR: duplicate key value violates unique constraint "idx_category_name" (SQLSTATE 23505)`), true},
		{"postgres serialization", errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"), true},
		{"postgres deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), true},
		{"sqlite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), true},
		{"sqlite table locked", errors.New("database table is locked (6) (SQLITE_LOCKED)"), true},
		{"not found", gorm.ErrRecordNotFound, false},
		{"plain failure", errors.New("connection refused"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsContention(tc.err); got != tc.want {
				t.Fatalf("IsContention(%v)=%v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
