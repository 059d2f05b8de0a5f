package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// Index names created by the migrations. Unique violations are attributed by name.
const (
	IndexOpenLoanPerBook    = "idx_loans_open_book"
	IndexOpenLoanPerStudent = "idx_loans_open_student"
	IndexBookBarcode        = "idx_books_barcode"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation           = "23505"
	pgSerializationFailure      = "40001"
	pgDeadlockDetected          = "40P01"
	pgLockNotAvailable          = "55P03"
	pgIntegrityConstraintPrefix = "23"
	pgConnectionPrefix          = "08"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if c.IsDuplicateKeyError(err) {
		return DuplicateKeyError
	}
	if c.IsLockError(err) {
		return LockError
	}
	if c.IsTransientError(err) {
		return TransientError
	}
	if c.IsConnectionError(err) {
		return ConnectionError
	}
	if c.IsConstraintError(err) {
		return ConstraintError
	}

	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgUniqueViolation
	}
	if sqliteErr, ok := asSqliteError(err); ok {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// ViolatesIndex reports whether a duplicate key error was raised by the named unique index.
// SQLite reports the indexed columns instead of the index name, so those are matched too.
func (c *ErrorClassifier) ViolatesIndex(err error, index string) bool {
	if !c.IsDuplicateKeyError(err) {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return pgErr.ConstraintName == index
	}

	msg := err.Error()
	if strings.Contains(msg, index) {
		return true
	}
	switch index {
	case IndexOpenLoanPerBook:
		return strings.Contains(msg, "loans.book_id")
	case IndexOpenLoanPerStudent:
		return strings.Contains(msg, "loans.student_id")
	case IndexBookBarcode:
		return strings.Contains(msg, "books.barcode")
	}
	return false
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if sqliteErr, ok := asSqliteError(err); ok {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return strings.Contains(err.Error(), "connection reset") ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "EOF") ||
		strings.Contains(err.Error(), "server closed") ||
		strings.Contains(err.Error(), "broken pipe")
}

// IsLockError checks if the error is due to locking or a serialization conflict
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgSerializationFailure ||
			pgErr.Code == pgDeadlockDetected ||
			pgErr.Code == pgLockNotAvailable
	}
	if sqliteErr, ok := asSqliteError(err); ok {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return strings.Contains(err.Error(), "deadlock") ||
		strings.Contains(err.Error(), "lock wait timeout") ||
		strings.Contains(err.Error(), "could not serialize access") ||
		strings.Contains(err.Error(), "serialization failure") ||
		strings.Contains(err.Error(), "database is locked")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return strings.HasPrefix(pgErr.Code, pgConnectionPrefix)
	}
	return strings.Contains(err.Error(), "connection") ||
		strings.Contains(err.Error(), "dial") ||
		strings.Contains(err.Error(), "network") ||
		c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return strings.HasPrefix(pgErr.Code, pgIntegrityConstraintPrefix)
	}
	if sqliteErr, ok := asSqliteError(err); ok {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return strings.Contains(err.Error(), "constraint") ||
		strings.Contains(err.Error(), "violates") ||
		strings.Contains(err.Error(), "not null") ||
		c.IsDuplicateKeyError(err)
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func asSqliteError(err error) (sqlite3.Error, bool) {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr, true
	}
	return sqlite3.Error{}, false
}

// isPostgres reports whether the connection speaks the PostgreSQL dialect
func isPostgres(db *gorm.DB) bool {
	return db.Dialector != nil && db.Dialector.Name() == "postgres"
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
