package usecase

import (
	"context"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
)

// LoanUseCase defines the checkout/return state machine
type LoanUseCase interface {
	// Checkout opens a loan of the book with the given barcode for the student
	//
	// Possible errors:
	// - ErrAlreadyCheckedOut: If the student already holds an open loan
	// - ErrInvalidReference: If the student or barcode is unknown
	// - ErrBookOnLoan: If the book is already out
	// - ErrLoanConflict: If concurrent writers kept aborting the transaction
	Checkout(ctx context.Context, studentID uint64, barcode string) (*entity.Loan, error)

	// Return closes the most recent open loan of the book with the given barcode
	//
	// Possible errors:
	// - ErrNoOpenLoan: If the book has no open loan or the barcode is unknown
	Return(ctx context.Context, barcode string) (*entity.Loan, error)

	// ActiveLoansForStudent lists the open loans of a student
	ActiveLoansForStudent(ctx context.Context, studentID uint64) ([]entity.ActiveLoan, error)
}
