package dto

import (
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
)

// CheckoutRequest represents the API request for checking out a book
type CheckoutRequest struct {
	StudentID uint64          `json:"student_id" binding:"required"`
	Barcode   FlexibleBarcode `json:"barcode" binding:"required"`
}

// ReturnRequest represents the API request for returning a book
type ReturnRequest struct {
	Barcode FlexibleBarcode `json:"barcode" binding:"required"`
}

// LoanResponse represents a loan after a checkout or return
type LoanResponse struct {
	Message      string     `json:"message"`
	LoanID       uint64     `json:"loan_id"`
	StudentID    uint64     `json:"student_id"`
	BookID       uint64     `json:"book_id"`
	CheckedOutAt time.Time  `json:"checked_out_at"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
}

// NewLoanResponse maps a loan entity
func NewLoanResponse(message string, loan *entity.Loan) LoanResponse {
	return LoanResponse{
		Message:      message,
		LoanID:       loan.ID,
		StudentID:    loan.StudentID,
		BookID:       loan.BookID,
		CheckedOutAt: loan.CheckedOutAt,
		ReturnedAt:   loan.ReturnedAt,
	}
}

// ActiveLoanResponse represents a book currently held by a student
type ActiveLoanResponse struct {
	Title        string    `json:"title"`
	Barcode      string    `json:"barcode"`
	CheckoutDate time.Time `json:"checkout_date"`
}

// DailyReportEntryResponse represents one checkout of the reported day
type DailyReportEntryResponse struct {
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Class        string    `json:"class"`
	BookTitle    string    `json:"book_title"`
	CheckoutDate time.Time `json:"checkout_date"`
}
