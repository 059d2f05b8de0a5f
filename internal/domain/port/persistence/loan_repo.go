package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
)

// LoanRepository defines methods to interact with loan transactions
type LoanRepository interface {
	// Create inserts a new open loan and assigns its ID
	//
	// Possible errors:
	// - ErrAlreadyCheckedOut: If the student already holds an open loan
	// - ErrBookOnLoan: If the book already has an open loan
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, loan *entity.Loan) error

	// HasOpenLoanForStudent reports whether the student holds an open loan
	HasOpenLoanForStudent(ctx context.Context, studentID uint64) (bool, error)

	// FindOpenByBook returns the most recent open loan of the book, locking it for update
	//
	// Possible errors:
	// - ErrNoOpenLoan: If the book has no open loan
	FindOpenByBook(ctx context.Context, bookID uint64) (*entity.Loan, error)

	// Close sets the return time of an open loan
	//
	// Possible errors:
	// - ErrNoOpenLoan: If the loan is already closed or missing
	Close(ctx context.Context, loanID uint64, returnedAt time.Time) error
}

// LoanQueryRepository defines the read-only projections over the store
type LoanQueryRepository interface {
	// ActiveLoansForStudent returns the open loans of a student joined with book data
	ActiveLoansForStudent(ctx context.Context, studentID uint64) ([]entity.ActiveLoan, error)

	// CheckoutsBetween returns loans checked out in [from, to) joined with student and book data
	CheckoutsBetween(ctx context.Context, from, to time.Time) ([]entity.DailyReportEntry, error)
}
