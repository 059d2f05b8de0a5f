package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// Begin starts a new database transaction.
// PostgreSQL transactions run SERIALIZABLE; SQLite transactions are serialized by its single writer.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", map[string]any{
		"dialect": u.db.Dialector.Name(),
	})

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", u.errorMapper.MapError(tx.Error, "begin"))
	}

	if u.db.Dialector.Name() == "postgres" {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
		}
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", u.errorMapper.MapError(err, "commit"))
	}

	return nil
}

// Rollback rolls back the current transaction.
// Rolling back a finished transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Debug("Transaction has already been committed or rolled back", nil)
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Savepoint runs fn inside a nested savepoint of the transaction in ctx.
// When fn fails only its own writes are rolled back and the error is returned.
func (u *UnitOfWork) Savepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	return tx.Transaction(func(nested *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey, nested))
	})
}

// GetStudentRepository returns a student repository in the current transaction
func (u *UnitOfWork) GetStudentRepository(ctx context.Context) persistence.StudentRepository {
	return repository.NewStudentRepository(u.getDbFromContext(ctx), u.logger)
}

// GetBookRepository returns a book repository in the current transaction
func (u *UnitOfWork) GetBookRepository(ctx context.Context) persistence.BookRepository {
	return repository.NewBookRepository(u.getDbFromContext(ctx), u.logger)
}

// GetLoanRepository returns a loan repository in the current transaction
func (u *UnitOfWork) GetLoanRepository(ctx context.Context) persistence.LoanRepository {
	return repository.NewLoanRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
