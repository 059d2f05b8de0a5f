package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new serializable transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Savepoint runs fn inside a nested savepoint of the current transaction.
	// A failing fn only rolls back its own writes.
	Savepoint(ctx context.Context, fn func(ctx context.Context) error) error

	// GetStudentRepository returns a student repository bound to the current transaction
	GetStudentRepository(ctx context.Context) StudentRepository

	// GetBookRepository returns a book repository bound to the current transaction
	GetBookRepository(ctx context.Context) BookRepository

	// GetLoanRepository returns a loan repository bound to the current transaction
	GetLoanRepository(ctx context.Context) LoanRepository
}
