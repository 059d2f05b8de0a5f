package loan

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	mcore "github.com/amirhossein-jamali/library-lending/mocks/port/core"
	mpers "github.com/amirhossein-jamali/library-lending/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Key for transaction context
const txKey contextKey = "tx"

type loanFixture struct {
	uow          *mpers.MockUnitOfWork
	studentRepo  *mpers.MockStudentRepository
	bookRepo     *mpers.MockBookRepository
	loanRepo     *mpers.MockLoanRepository
	queryRepo    *mpers.MockLoanQueryRepository
	timeProvider *mcore.MockTimeProvider
	logger       *mcore.MockLogger
	txCtx        context.Context
	now          time.Time
	useCase      *LoanUseCase
}

func newLoanFixture(maxRetries int) *loanFixture {
	f := &loanFixture{
		uow:          new(mpers.MockUnitOfWork),
		studentRepo:  new(mpers.MockStudentRepository),
		bookRepo:     new(mpers.MockBookRepository),
		loanRepo:     new(mpers.MockLoanRepository),
		queryRepo:    new(mpers.MockLoanQueryRepository),
		timeProvider: new(mcore.MockTimeProvider),
		logger:       new(mcore.MockLogger),
		txCtx:        context.WithValue(context.Background(), txKey, "mockTransaction"),
		now:          time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
	}

	f.uow.On("GetStudentRepository", mock.Anything).Return(f.studentRepo).Maybe()
	f.uow.On("GetBookRepository", mock.Anything).Return(f.bookRepo).Maybe()
	f.uow.On("GetLoanRepository", mock.Anything).Return(f.loanRepo).Maybe()
	f.timeProvider.On("Now").Return(f.now).Maybe()
	f.timeProvider.On("Sleep", mock.Anything).Maybe()

	// Logger setup - just accept anything with Maybe() to allow zero or more calls
	f.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Error", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Debug", mock.Anything, mock.Anything).Maybe()

	f.useCase = NewLoanUseCase(f.uow, f.queryRepo, f.timeProvider, f.logger, maxRetries)
	return f
}

func (f *loanFixture) expectCommittedTx() {
	f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
	f.uow.On("Commit", f.txCtx).Return(nil)
}

func (f *loanFixture) expectRolledBackTx() {
	f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
	f.uow.On("Rollback", f.txCtx).Return(nil)
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	book := &entity.Book{ID: 7, Title: "Thirukkural", Barcode: "BK001"}

	tests := []struct {
		name          string
		studentID     uint64
		barcode       string
		setupMocks    func(f *loanFixture)
		expectedError error
	}{
		{
			name:      "Successful checkout",
			studentID: 3,
			barcode:   " BK001 ",
			setupMocks: func(f *loanFixture) {
				f.expectCommittedTx()
				f.loanRepo.On("HasOpenLoanForStudent", f.txCtx, uint64(3)).Return(false, nil)
				f.bookRepo.On("GetByBarcode", f.txCtx, "BK001").Return(book, nil)
				f.studentRepo.On("Exists", f.txCtx, uint64(3)).Return(true, nil)
				f.loanRepo.On("FindOpenByBook", f.txCtx, uint64(7)).Return(nil, errs.ErrNoOpenLoan)
				f.loanRepo.On("Create", f.txCtx, mock.AnythingOfType("*entity.Loan")).
					Run(func(args mock.Arguments) { args.Get(1).(*entity.Loan).ID = 42 }).
					Return(nil)
			},
		},
		{
			name:      "Student already holds a book",
			studentID: 3,
			barcode:   "BK001",
			setupMocks: func(f *loanFixture) {
				f.expectRolledBackTx()
				f.loanRepo.On("HasOpenLoanForStudent", f.txCtx, uint64(3)).Return(true, nil)
			},
			expectedError: errs.ErrAlreadyCheckedOut,
		},
		{
			name:      "Unknown barcode",
			studentID: 3,
			barcode:   "NOPE",
			setupMocks: func(f *loanFixture) {
				f.expectRolledBackTx()
				f.loanRepo.On("HasOpenLoanForStudent", f.txCtx, uint64(3)).Return(false, nil)
				f.bookRepo.On("GetByBarcode", f.txCtx, "NOPE").Return(nil, errs.ErrBookNotFound)
			},
			expectedError: errs.ErrInvalidReference,
		},
		{
			name:      "Unknown student",
			studentID: 99,
			barcode:   "BK001",
			setupMocks: func(f *loanFixture) {
				f.expectRolledBackTx()
				f.loanRepo.On("HasOpenLoanForStudent", f.txCtx, uint64(99)).Return(false, nil)
				f.bookRepo.On("GetByBarcode", f.txCtx, "BK001").Return(book, nil)
				f.studentRepo.On("Exists", f.txCtx, uint64(99)).Return(false, nil)
			},
			expectedError: errs.ErrInvalidReference,
		},
		{
			name:      "Book already on loan",
			studentID: 3,
			barcode:   "BK001",
			setupMocks: func(f *loanFixture) {
				f.expectRolledBackTx()
				f.loanRepo.On("HasOpenLoanForStudent", f.txCtx, uint64(3)).Return(false, nil)
				f.bookRepo.On("GetByBarcode", f.txCtx, "BK001").Return(book, nil)
				f.studentRepo.On("Exists", f.txCtx, uint64(3)).Return(true, nil)
				f.loanRepo.On("FindOpenByBook", f.txCtx, uint64(7)).Return(&entity.Loan{ID: 1, StudentID: 4, BookID: 7}, nil)
			},
			expectedError: errs.ErrBookOnLoan,
		},
		{
			name:      "Open-loan guard rejects the insert",
			studentID: 3,
			barcode:   "BK001",
			setupMocks: func(f *loanFixture) {
				f.expectRolledBackTx()
				f.loanRepo.On("HasOpenLoanForStudent", f.txCtx, uint64(3)).Return(false, nil)
				f.bookRepo.On("GetByBarcode", f.txCtx, "BK001").Return(book, nil)
				f.studentRepo.On("Exists", f.txCtx, uint64(3)).Return(true, nil)
				f.loanRepo.On("FindOpenByBook", f.txCtx, uint64(7)).Return(nil, errs.ErrNoOpenLoan)
				f.loanRepo.On("Create", f.txCtx, mock.Anything).Return(errs.ErrBookOnLoan)
			},
			expectedError: errs.ErrBookOnLoan,
		},
		{
			name:          "Zero student ID",
			studentID:     0,
			barcode:       "BK001",
			setupMocks:    func(f *loanFixture) {},
			expectedError: errs.ErrInvalidReference,
		},
		{
			name:          "Empty barcode",
			studentID:     3,
			barcode:       "  ",
			setupMocks:    func(f *loanFixture) {},
			expectedError: errs.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLoanFixture(3)
			tt.setupMocks(f)

			loan, err := f.useCase.Checkout(ctx, tt.studentID, tt.barcode)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Nil(t, loan)
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)

				var loanErr *errs.LoanError
				require.True(t, errors.As(err, &loanErr))
				assert.Equal(t, OperationCheckout, loanErr.Operation)
				assert.Equal(t, tt.studentID, loanErr.StudentID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint64(42), loan.ID)
				assert.Equal(t, uint64(3), loan.StudentID)
				assert.Equal(t, uint64(7), loan.BookID)
				assert.Equal(t, f.now, loan.CheckedOutAt)
				assert.True(t, loan.IsOpen())
			}

			f.uow.AssertExpectations(t)
			f.loanRepo.AssertExpectations(t)
		})
	}
}

func TestCheckout_RetriesSerializationFailures(t *testing.T) {
	f := newLoanFixture(3)
	ctx := context.Background()
	book := &entity.Book{ID: 7, Title: "Thirukkural", Barcode: "BK001"}

	f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil).Times(2)
	f.uow.On("Rollback", f.txCtx).Return(nil).Once()
	f.uow.On("Commit", f.txCtx).Return(nil).Once()
	f.loanRepo.On("HasOpenLoanForStudent", f.txCtx, uint64(3)).Return(false, nil)
	f.bookRepo.On("GetByBarcode", f.txCtx, "BK001").Return(book, nil)
	f.studentRepo.On("Exists", f.txCtx, uint64(3)).Return(true, nil)
	f.loanRepo.On("FindOpenByBook", f.txCtx, uint64(7)).Return(nil, errs.ErrNoOpenLoan)
	f.loanRepo.On("Create", f.txCtx, mock.Anything).
		Return(fmt.Errorf("%w: could not serialize access", errs.ErrSerialization)).Once()
	f.loanRepo.On("Create", f.txCtx, mock.Anything).Return(nil).Once()

	loan, err := f.useCase.Checkout(ctx, 3, "BK001")

	require.NoError(t, err)
	assert.NotNil(t, loan)
	f.uow.AssertExpectations(t)
	f.timeProvider.AssertNumberOfCalls(t, "Sleep", 1)
}

func TestCheckout_ExhaustedRetriesReportConflict(t *testing.T) {
	f := newLoanFixture(2)
	ctx := context.Background()
	book := &entity.Book{ID: 7, Title: "Thirukkural", Barcode: "BK001"}

	f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
	f.uow.On("Rollback", f.txCtx).Return(nil)
	f.uow.On("Commit", f.txCtx).Return(fmt.Errorf("failed to commit transaction: %w", errs.ErrSerialization))
	f.loanRepo.On("HasOpenLoanForStudent", f.txCtx, uint64(3)).Return(false, nil)
	f.bookRepo.On("GetByBarcode", f.txCtx, "BK001").Return(book, nil)
	f.studentRepo.On("Exists", f.txCtx, uint64(3)).Return(true, nil)
	f.loanRepo.On("FindOpenByBook", f.txCtx, uint64(7)).Return(nil, errs.ErrNoOpenLoan)
	f.loanRepo.On("Create", f.txCtx, mock.Anything).Return(nil)

	loan, err := f.useCase.Checkout(ctx, 3, "BK001")

	assert.Nil(t, loan)
	assert.True(t, errors.Is(err, errs.ErrLoanConflict))
	assert.Equal(t, errs.CodeLoanConflict, errs.ErrorCode(err))
	f.uow.AssertNumberOfCalls(t, "Begin", 3)
	f.timeProvider.AssertNumberOfCalls(t, "Sleep", 2)
}

func TestFailureLogLevels(t *testing.T) {
	ctx := context.Background()

	t.Run("Rule violations are informational", func(t *testing.T) {
		f := newLoanFixture(0)
		logger := new(mcore.MockLogger)
		logger.On("Info", "Loan rule violated", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error_code"] == errs.CodeInvalidReference && fields["operation"] == OperationCheckout
		})).Once()
		f.useCase = NewLoanUseCase(f.uow, f.queryRepo, f.timeProvider, logger, 0)

		_, err := f.useCase.Checkout(ctx, 0, "BK001")

		assert.True(t, errors.Is(err, errs.ErrInvalidReference))
		logger.AssertExpectations(t)
	})

	t.Run("Database failures are errors", func(t *testing.T) {
		f := newLoanFixture(0)
		logger := new(mcore.MockLogger)
		logger.On("Error", "Loan request failed", mock.Anything).Once()
		f.useCase = NewLoanUseCase(f.uow, f.queryRepo, f.timeProvider, logger, 0)
		f.uow.On("Begin", mock.Anything).Return(ctx, errs.ErrDatabaseConnection)

		_, err := f.useCase.Return(ctx, "BK001")

		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
		logger.AssertExpectations(t)
		logger.AssertNotCalled(t, "Info", mock.Anything, mock.Anything)
	})
}

func TestReturn(t *testing.T) {
	ctx := context.Background()
	book := &entity.Book{ID: 7, Title: "Thirukkural", Barcode: "BK001"}

	t.Run("Successful return", func(t *testing.T) {
		f := newLoanFixture(3)
		f.expectCommittedTx()
		openLoan := &entity.Loan{ID: 42, StudentID: 3, BookID: 7, CheckedOutAt: f.now.Add(-72 * time.Hour)}
		f.bookRepo.On("GetByBarcode", f.txCtx, "BK001").Return(book, nil)
		f.loanRepo.On("FindOpenByBook", f.txCtx, uint64(7)).Return(openLoan, nil)
		f.loanRepo.On("Close", f.txCtx, uint64(42), f.now).Return(nil)

		loan, err := f.useCase.Return(ctx, "BK001")

		require.NoError(t, err)
		assert.Equal(t, entity.LoanClosed, loan.State())
		assert.Equal(t, f.now, *loan.ReturnedAt)
		f.loanRepo.AssertExpectations(t)
	})

	t.Run("Unknown barcode", func(t *testing.T) {
		f := newLoanFixture(3)
		f.expectRolledBackTx()
		f.bookRepo.On("GetByBarcode", f.txCtx, "NOPE").Return(nil, errs.ErrBookNotFound)

		_, err := f.useCase.Return(ctx, "NOPE")

		assert.True(t, errors.Is(err, errs.ErrNoOpenLoan))
		assert.Equal(t, errs.CodeNoOpenLoan, errs.ErrorCode(err))
	})

	t.Run("Book not on loan", func(t *testing.T) {
		f := newLoanFixture(3)
		f.expectRolledBackTx()
		f.bookRepo.On("GetByBarcode", f.txCtx, "BK001").Return(book, nil)
		f.loanRepo.On("FindOpenByBook", f.txCtx, uint64(7)).Return(nil, errs.ErrNoOpenLoan)

		_, err := f.useCase.Return(ctx, "BK001")

		assert.True(t, errors.Is(err, errs.ErrNoOpenLoan))
	})

	t.Run("Loan closed concurrently", func(t *testing.T) {
		f := newLoanFixture(3)
		f.expectRolledBackTx()
		f.bookRepo.On("GetByBarcode", f.txCtx, "BK001").Return(book, nil)
		f.loanRepo.On("FindOpenByBook", f.txCtx, uint64(7)).Return(&entity.Loan{ID: 42, StudentID: 3, BookID: 7}, nil)
		f.loanRepo.On("Close", f.txCtx, uint64(42), f.now).Return(errs.ErrNoOpenLoan)

		_, err := f.useCase.Return(ctx, "BK001")

		assert.True(t, errors.Is(err, errs.ErrNoOpenLoan))
	})

	t.Run("Empty barcode", func(t *testing.T) {
		f := newLoanFixture(3)

		_, err := f.useCase.Return(ctx, "")

		assert.True(t, errors.Is(err, errs.ErrNoOpenLoan))
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestActiveLoansForStudent(t *testing.T) {
	ctx := context.Background()
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	t.Run("Dates are reported in the library time zone", func(t *testing.T) {
		f := newLoanFixture(3)
		f.useCase.WithLocation(kolkata)
		checkout := time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC)
		f.queryRepo.On("ActiveLoansForStudent", ctx, uint64(3)).
			Return([]entity.ActiveLoan{{Title: "Thirukkural", Barcode: "BK001", CheckoutDate: checkout}}, nil)

		loans, err := f.useCase.ActiveLoansForStudent(ctx, 3)

		require.NoError(t, err)
		require.Len(t, loans, 1)
		assert.Equal(t, kolkata, loans[0].CheckoutDate.Location())
		assert.Equal(t, 3, loans[0].CheckoutDate.Day())
		assert.True(t, checkout.Equal(loans[0].CheckoutDate))
	})

	t.Run("Zero student ID", func(t *testing.T) {
		f := newLoanFixture(3)

		_, err := f.useCase.ActiveLoansForStudent(ctx, 0)

		assert.Equal(t, errs.ErrInvalidStudentID, err)
	})

	t.Run("Query failure", func(t *testing.T) {
		f := newLoanFixture(3)
		f.queryRepo.On("ActiveLoansForStudent", ctx, uint64(3)).Return(nil, errs.ErrDatabaseConnection)

		_, err := f.useCase.ActiveLoansForStudent(ctx, 3)

		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	})
}
