package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoanRepository implements LoanRepository interface using GORM
type LoanRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLoanRepository creates a new LoanRepository instance
func NewLoanRepository(db *gorm.DB, logger coreport.Logger) *LoanRepository {
	return &LoanRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a loan entity to a database model.
// Timestamps are stored in UTC so range scans compare consistently on every dialect.
func (r *LoanRepository) entityToModel(loan *entity.Loan) model.Loan {
	m := model.Loan{
		ID:           loan.ID,
		StudentID:    loan.StudentID,
		BookID:       loan.BookID,
		CheckedOutAt: loan.CheckedOutAt.UTC(),
	}
	if loan.ReturnedAt != nil {
		returned := loan.ReturnedAt.UTC()
		m.ReturnedAt = &returned
	}
	return m
}

func (r *LoanRepository) modelToEntity(m *model.Loan) *entity.Loan {
	return &entity.Loan{
		ID:           m.ID,
		StudentID:    m.StudentID,
		BookID:       m.BookID,
		CheckedOutAt: m.CheckedOutAt,
		ReturnedAt:   m.ReturnedAt,
	}
}

// handleDatabaseError maps loan write failures, attributing unique violations to the open-loan guards
func (r *LoanRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	switch {
	case r.errorClassifier.ViolatesIndex(err, IndexOpenLoanPerBook):
		r.logger.Warn("Open loan already exists for book", logFields)
		return errs.ErrBookOnLoan
	case r.errorClassifier.ViolatesIndex(err, IndexOpenLoanPerStudent):
		r.logger.Warn("Open loan already exists for student", logFields)
		return errs.ErrAlreadyCheckedOut
	case r.errorClassifier.IsLockError(err):
		r.logger.Warn(fmt.Sprintf("Serialization conflict when %s", operation), logFields)
		return fmt.Errorf("%w: %s", errs.ErrSerialization, err.Error())
	case isContextError(err):
		return err
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a new open loan and assigns its ID
func (r *LoanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	loanModel := r.entityToModel(loan)

	if err := r.db.WithContext(ctx).Create(&loanModel).Error; err != nil {
		return r.handleDatabaseError("creating loan", err, map[string]any{
			"student_id": loan.StudentID,
			"book_id":    loan.BookID,
		})
	}

	loan.ID = loanModel.ID
	r.logger.Debug("Loan created", map[string]any{
		"loan_id":    loan.ID,
		"student_id": loan.StudentID,
		"book_id":    loan.BookID,
	})
	return nil
}

// HasOpenLoanForStudent reports whether the student holds an open loan
func (r *LoanRepository) HasOpenLoanForStudent(ctx context.Context, studentID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Loan{}).
		Where("student_id = ? AND returned_at IS NULL", studentID).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking open loans", err, map[string]any{
			"student_id": studentID,
		})
	}
	return count > 0, nil
}

// FindOpenByBook returns the most recent open loan of the book.
// On PostgreSQL the row is locked until the surrounding transaction ends.
func (r *LoanRepository) FindOpenByBook(ctx context.Context, bookID uint64) (*entity.Loan, error) {
	query := r.db.WithContext(ctx).
		Where("book_id = ? AND returned_at IS NULL", bookID).
		Order("checked_out_at DESC").
		Limit(1)
	if isPostgres(r.db) {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var loanModel model.Loan
	if err := query.First(&loanModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNoOpenLoan
		}
		return nil, r.handleDatabaseError("finding open loan", err, map[string]any{
			"book_id": bookID,
		})
	}

	return r.modelToEntity(&loanModel), nil
}

// Close sets the return time of a loan that is still open
func (r *LoanRepository) Close(ctx context.Context, loanID uint64, returnedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Loan{}).
		Where("id = ? AND returned_at IS NULL", loanID).
		Update("returned_at", returnedAt.UTC())

	if result.Error != nil {
		return r.handleDatabaseError("closing loan", result.Error, map[string]any{
			"loan_id": loanID,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Loan already closed", map[string]any{
			"loan_id": loanID,
		})
		return errs.ErrNoOpenLoan
	}

	r.logger.Debug("Loan closed", map[string]any{
		"loan_id":     loanID,
		"returned_at": returnedAt,
	})
	return nil
}
