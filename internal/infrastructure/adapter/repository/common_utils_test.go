package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"nil", nil, ""},
		{"pg unique", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"pg serialization", &pgconn.PgError{Code: "40001"}, LockError},
		{"pg deadlock", &pgconn.PgError{Code: "40P01"}, LockError},
		{"pg not null", &pgconn.PgError{Code: "23502"}, ConstraintError},
		{"pg connection", &pgconn.PgError{Code: "08006"}, ConnectionError},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, DuplicateKeyError},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, LockError},
		{"connection reset", errors.New("read: connection reset by peer"), TransientError},
		{"wrapped pg unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), DuplicateKeyError},
		{"plain text", errors.New("something odd"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_ViolatesIndex(t *testing.T) {
	c := NewErrorClassifier()

	t.Run("PostgreSQL uses the constraint name", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", ConstraintName: IndexOpenLoanPerBook}

		assert.True(t, c.ViolatesIndex(err, IndexOpenLoanPerBook))
		assert.False(t, c.ViolatesIndex(err, IndexOpenLoanPerStudent))
	})

	t.Run("SQLite uses the indexed column", func(t *testing.T) {
		err := errors.New("UNIQUE constraint failed: loans.student_id")

		assert.True(t, c.ViolatesIndex(err, IndexOpenLoanPerStudent))
		assert.False(t, c.ViolatesIndex(err, IndexOpenLoanPerBook))
	})

	t.Run("Barcode index", func(t *testing.T) {
		err := errors.New("UNIQUE constraint failed: books.barcode")

		assert.True(t, c.ViolatesIndex(err, IndexBookBarcode))
	})

	t.Run("Not a duplicate", func(t *testing.T) {
		err := &pgconn.PgError{Code: "40001", ConstraintName: IndexOpenLoanPerBook}

		assert.False(t, c.ViolatesIndex(err, IndexOpenLoanPerBook))
	})
}

func TestIsContextError(t *testing.T) {
	assert.True(t, isContextError(context.Canceled))
	assert.True(t, isContextError(fmt.Errorf("query: %w", context.DeadlineExceeded)))
	assert.False(t, isContextError(errors.New("boom")))
}
