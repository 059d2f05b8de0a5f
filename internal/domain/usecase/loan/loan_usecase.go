package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/persistence"
)

// Operation names used in errors and logs
const (
	OperationCheckout = "checkout"
	OperationReturn   = "return"
)

const defaultRetryBackoff = 20 * time.Millisecond

// LoanUseCase runs the checkout/return state machine.
// Every operation owns one serializable transaction and retries it when the
// database aborts it because of a concurrent writer.
type LoanUseCase struct {
	uow          persistence.UnitOfWork
	queryRepo    persistence.LoanQueryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	maxRetries   int
	retryBackoff time.Duration
	location     *time.Location
}

// NewLoanUseCase creates a new LoanUseCase
func NewLoanUseCase(
	uow persistence.UnitOfWork,
	queryRepo persistence.LoanQueryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	maxRetries int,
) *LoanUseCase {
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &LoanUseCase{
		uow:          uow,
		queryRepo:    queryRepo,
		timeProvider: timeProvider,
		logger:       logger,
		maxRetries:   maxRetries,
		retryBackoff: defaultRetryBackoff,
		location:     time.UTC,
	}
}

// WithRetryBackoff sets the base backoff between serialization retries
func (u *LoanUseCase) WithRetryBackoff(backoff time.Duration) *LoanUseCase {
	u.retryBackoff = backoff
	return u
}

// WithLocation sets the time zone checkout dates are reported in
func (u *LoanUseCase) WithLocation(location *time.Location) *LoanUseCase {
	if location != nil {
		u.location = location
	}
	return u
}

// Checkout opens a loan of the book with the given barcode for the student
func (u *LoanUseCase) Checkout(ctx context.Context, studentID uint64, barcode string) (*entity.Loan, error) {
	barcode, err := entity.NormalizeBarcode(barcode)
	if err != nil || studentID == 0 {
		return nil, u.fail(OperationCheckout, studentID, barcode, errs.ErrInvalidReference)
	}

	var loan *entity.Loan
	err = u.inTransaction(ctx, OperationCheckout, func(txCtx context.Context) error {
		var txErr error
		loan, txErr = u.checkout(txCtx, studentID, barcode)
		return txErr
	})
	if err != nil {
		return nil, u.fail(OperationCheckout, studentID, barcode, err)
	}

	u.logger.Info("Book checked out", map[string]any{
		"loan_id":    loan.ID,
		"student_id": studentID,
		"barcode":    barcode,
	})
	return loan, nil
}

// checkout applies the checkout rules inside the transaction in txCtx
func (u *LoanUseCase) checkout(txCtx context.Context, studentID uint64, barcode string) (*entity.Loan, error) {
	loanRepo := u.uow.GetLoanRepository(txCtx)

	open, err := loanRepo.HasOpenLoanForStudent(txCtx, studentID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, errs.ErrAlreadyCheckedOut
	}

	book, err := u.uow.GetBookRepository(txCtx).GetByBarcode(txCtx, barcode)
	if err != nil {
		if errors.Is(err, errs.ErrBookNotFound) {
			return nil, errs.ErrInvalidReference
		}
		return nil, err
	}

	exists, err := u.uow.GetStudentRepository(txCtx).Exists(txCtx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrInvalidReference
	}

	_, err = loanRepo.FindOpenByBook(txCtx, book.ID)
	switch {
	case err == nil:
		return nil, errs.ErrBookOnLoan
	case !errors.Is(err, errs.ErrNoOpenLoan):
		return nil, err
	}

	loan, err := entity.NewLoan(studentID, book.ID, u.timeProvider.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := loanRepo.Create(txCtx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// Return closes the most recent open loan of the book with the given barcode
func (u *LoanUseCase) Return(ctx context.Context, barcode string) (*entity.Loan, error) {
	barcode, err := entity.NormalizeBarcode(barcode)
	if err != nil {
		return nil, u.fail(OperationReturn, 0, barcode, errs.ErrNoOpenLoan)
	}

	var loan *entity.Loan
	err = u.inTransaction(ctx, OperationReturn, func(txCtx context.Context) error {
		var txErr error
		loan, txErr = u.returnBook(txCtx, barcode)
		return txErr
	})
	if err != nil {
		return nil, u.fail(OperationReturn, 0, barcode, err)
	}

	u.logger.Info("Book returned", map[string]any{
		"loan_id":    loan.ID,
		"student_id": loan.StudentID,
		"barcode":    barcode,
	})
	return loan, nil
}

// returnBook closes the open loan inside the transaction in txCtx
func (u *LoanUseCase) returnBook(txCtx context.Context, barcode string) (*entity.Loan, error) {
	book, err := u.uow.GetBookRepository(txCtx).GetByBarcode(txCtx, barcode)
	if err != nil {
		if errors.Is(err, errs.ErrBookNotFound) {
			return nil, errs.ErrNoOpenLoan
		}
		return nil, err
	}

	loanRepo := u.uow.GetLoanRepository(txCtx)
	loan, err := loanRepo.FindOpenByBook(txCtx, book.ID)
	if err != nil {
		return nil, err
	}

	returnedAt := u.timeProvider.Now().UTC()
	if err := loan.Close(returnedAt); err != nil {
		return nil, errs.ErrNoOpenLoan
	}

	if err := loanRepo.Close(txCtx, loan.ID, returnedAt); err != nil {
		return nil, err
	}
	return loan, nil
}

// ActiveLoansForStudent lists the open loans of a student
func (u *LoanUseCase) ActiveLoansForStudent(ctx context.Context, studentID uint64) ([]entity.ActiveLoan, error) {
	if studentID == 0 {
		return nil, errs.ErrInvalidStudentID
	}

	loans, err := u.queryRepo.ActiveLoansForStudent(ctx, studentID)
	if err != nil {
		u.logger.Error("Failed to list active loans", map[string]any{
			"student_id": studentID,
			"error":      err.Error(),
		})
		return nil, err
	}

	for i := range loans {
		loans[i].CheckoutDate = loans[i].CheckoutDate.In(u.location)
	}
	return loans, nil
}

// inTransaction runs fn in a fresh transaction, retrying serialization failures with exponential backoff
func (u *LoanUseCase) inTransaction(ctx context.Context, operation string, fn func(txCtx context.Context) error) error {
	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, fn)
		if err == nil || !errors.Is(err, errs.ErrSerialization) {
			return err
		}

		if attempt >= u.maxRetries {
			u.logger.Error("Serialization retries exhausted", map[string]any{
				"operation": operation,
				"attempts":  attempt + 1,
				"error":     err.Error(),
			})
			return fmt.Errorf("%w: %v", errs.ErrLoanConflict, err)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		backoff := u.retryBackoff << attempt
		u.logger.Warn("Transaction aborted by a concurrent writer, retrying", map[string]any{
			"operation":   operation,
			"attempt":     attempt + 1,
			"max_retries": u.maxRetries,
			"retry_after": backoff.String(),
		})
		u.timeProvider.Sleep(coreport.Duration(backoff))
	}
}

// runOnce runs fn in one transaction that is committed on success and rolled back otherwise
func (u *LoanUseCase) runOnce(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
				u.logger.Error("Failed to rollback transaction", map[string]any{
					"error": rbErr.Error(),
				})
			}
		}
	}()

	if err = fn(txCtx); err != nil {
		return err
	}
	return u.uow.Commit(txCtx)
}

// fail wraps err with the loan context and logs it at a level matching its cause
func (u *LoanUseCase) fail(operation string, studentID uint64, barcode string, err error) error {
	loanErr := errs.NewLoanError(operation, studentID, barcode, err)

	switch {
	case errs.IsLoanRuleError(err):
		u.logger.Info("Loan rule violated", loanErr.LogFields())
	case errs.IsClientError(err):
		u.logger.Warn("Loan request rejected", loanErr.LogFields())
	default:
		u.logger.Error("Loan request failed", loanErr.LogFields())
	}
	return loanErr
}
