package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
)

// LoanState is the explicit state of a loan.
// A (student, book) pair moves NoLoan -> Open -> Closed; Closed is terminal.
type LoanState string

// Loan states
const (
	LoanOpen   LoanState = "open"
	LoanClosed LoanState = "closed"
)

// Loan is a checkout transaction of one book by one student
type Loan struct {
	ID           uint64
	StudentID    uint64
	BookID       uint64
	CheckedOutAt time.Time
	ReturnedAt   *time.Time // nil while the book is out
}

// NewLoan opens a loan at the given time
func NewLoan(studentID, bookID uint64, checkedOutAt time.Time) (*Loan, error) {
	if studentID == 0 || bookID == 0 {
		return nil, errs.ErrInvalidReference
	}

	return &Loan{
		StudentID:    studentID,
		BookID:       bookID,
		CheckedOutAt: checkedOutAt,
	}, nil
}

// State returns the current state of the loan
func (l *Loan) State() LoanState {
	if l.ReturnedAt == nil {
		return LoanOpen
	}
	return LoanClosed
}

// IsOpen reports whether the book is still out
func (l *Loan) IsOpen() bool {
	return l.State() == LoanOpen
}

// Close moves an open loan to the closed state
func (l *Loan) Close(returnedAt time.Time) error {
	if !l.IsOpen() {
		return errs.ErrLoanClosed
	}
	l.ReturnedAt = &returnedAt
	return nil
}

// Duration returns how long the book was (or has been) out
func (l *Loan) Duration(now time.Time) time.Duration {
	if l.ReturnedAt != nil {
		return l.ReturnedAt.Sub(l.CheckedOutAt)
	}
	return now.Sub(l.CheckedOutAt)
}
