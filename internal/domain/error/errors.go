package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeAlreadyCheckedOut   = 4001
	CodeInvalidReference    = 4002
	CodeNoOpenLoan          = 4003
	CodeConstraintViolation = 4004
	CodeBookOnLoan          = 4005
	CodeUnauthorized        = 4010
	CodeNotFound            = 4040
	CodeLoanConflict        = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Loan state machine errors
var (
	// ErrAlreadyCheckedOut is returned when the student already holds an open loan
	ErrAlreadyCheckedOut = errors.New("student already has a book checked out")

	// ErrInvalidReference is returned when the student or the barcode of a checkout does not resolve
	ErrInvalidReference = errors.New("invalid student or book")

	// ErrNoOpenLoan is returned when a book being returned has no open loan
	ErrNoOpenLoan = errors.New("no open transaction found for this book")

	// ErrBookOnLoan is returned when the book already has an open loan
	ErrBookOnLoan = errors.New("book is already checked out")

	// ErrLoanClosed is returned when closing a loan that is already closed
	ErrLoanClosed = errors.New("loan is already closed")

	// ErrLoanConflict is returned when a loan operation kept losing to concurrent writers
	ErrLoanConflict = errors.New("loan operation conflicted with a concurrent request")
)

// Entity store errors
var (
	// ErrConstraintViolation is returned when a row violates a database constraint
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInvalidStudent is returned when student fields are malformed
	ErrInvalidStudent = errors.New("invalid student record")

	// ErrInvalidStudentID is returned when a student ID is not a positive integer
	ErrInvalidStudentID = errors.New("student ID must be positive")

	// ErrInvalidBook is returned when book fields are malformed
	ErrInvalidBook = errors.New("invalid book record")

	// ErrInvalidBarcode is returned when a barcode is empty
	ErrInvalidBarcode = errors.New("barcode cannot be empty")

	// ErrInvalidDate is returned when a report date is not formatted as YYYY-MM-DD
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

	// ErrStudentNotFound is returned when the requested student doesn't exist
	ErrStudentNotFound = errors.New("student not found")

	// ErrBookNotFound is returned when the requested book doesn't exist
	ErrBookNotFound = errors.New("book not found")

	// ErrDuplicateBarcode is returned when inserting a barcode that already exists
	ErrDuplicateBarcode = errors.New("book with this barcode already exists")
)

// Generic errors
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when credentials are missing or wrong
	ErrUnauthorized = errors.New("invalid username or password")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrSerialization is returned when the database aborted a transaction to keep it serializable
	ErrSerialization = errors.New("could not serialize access due to concurrent update")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrAlreadyCheckedOut):
		return CodeAlreadyCheckedOut
	case errors.Is(err, ErrInvalidReference):
		return CodeInvalidReference
	case errors.Is(err, ErrNoOpenLoan):
		return CodeNoOpenLoan
	case errors.Is(err, ErrBookOnLoan):
		return CodeBookOnLoan
	case errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrDuplicateBarcode):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidStudent),
		errors.Is(err, ErrInvalidStudentID),
		errors.Is(err, ErrInvalidBook),
		errors.Is(err, ErrInvalidBarcode),
		errors.Is(err, ErrInvalidDate):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrLoanConflict), errors.Is(err, ErrSerialization):
		return CodeLoanConflict
	default:
		return CodeInternalServer
	}
}

// LoanError represents an error related to a checkout or return
type LoanError struct {
	Operation string
	StudentID uint64
	Barcode   string
	Err       error
}

// Error implements the error interface for LoanError
func (e *LoanError) Error() string {
	if e.StudentID == 0 {
		return fmt.Sprintf("%s failed for book %q: %v", e.Operation, e.Barcode, e.Err)
	}
	return fmt.Sprintf("%s failed for student %d and book %q: %v", e.Operation, e.StudentID, e.Barcode, e.Err)
}

// Unwrap returns the underlying error
func (e *LoanError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LoanError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "loan_error",
		"operation":  e.Operation,
		"student_id": e.StudentID,
		"barcode":    e.Barcode,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLoanError creates a detailed loan error
func NewLoanError(operation string, studentID uint64, barcode string, err error) *LoanError {
	return &LoanError{
		Operation: operation,
		StudentID: studentID,
		Barcode:   barcode,
		Err:       err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrBookNotFound)
}

// IsLoanRuleError checks if the error is one of the client-visible loan rule violations
func IsLoanRuleError(err error) bool {
	return errors.Is(err, ErrAlreadyCheckedOut) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrNoOpenLoan) ||
		errors.Is(err, ErrBookOnLoan)
}

// IsClientError checks if the error should be reported as a 4xx response
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}
