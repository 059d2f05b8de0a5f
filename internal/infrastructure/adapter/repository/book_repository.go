package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookRepository implements BookRepository interface using GORM
type BookRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBookRepository creates a new BookRepository instance
func NewBookRepository(db *gorm.DB, logger coreport.Logger) *BookRepository {
	return &BookRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *BookRepository) modelToEntity(m *model.Book) *entity.Book {
	return &entity.Book{
		ID:      m.ID,
		Title:   m.Title,
		Barcode: m.Barcode,
	}
}

// handleDatabaseError standardizes database error handling
func (r *BookRepository) handleDatabaseError(operation string, err error, barcode string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Book not found", map[string]any{
			"barcode": barcode,
		})
		return errs.ErrBookNotFound
	}

	if r.errorClassifier.ViolatesIndex(err, IndexBookBarcode) {
		r.logger.Warn("Duplicate barcode", map[string]any{
			"barcode": barcode,
		})
		return errs.ErrDuplicateBarcode
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"barcode": barcode,
		"error":   err.Error(),
	})

	switch {
	case isContextError(err):
		return err
	case r.errorClassifier.IsLockError(err):
		return fmt.Errorf("%w: %s", errs.ErrSerialization, err.Error())
	case r.errorClassifier.IsConstraintError(err):
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

// Create inserts a new book
func (r *BookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookModel := model.Book{
		Title:   book.Title,
		Barcode: book.Barcode,
	}

	if err := r.db.WithContext(ctx).Create(&bookModel).Error; err != nil {
		return r.handleDatabaseError("creating book", err, book.Barcode)
	}

	book.ID = bookModel.ID
	r.logger.Debug("Book created", map[string]any{
		"book_id": book.ID,
		"barcode": book.Barcode,
	})
	return nil
}

// Upsert inserts a book or updates the title of the book holding the same barcode.
// The ID of an existing book never changes.
func (r *BookRepository) Upsert(ctx context.Context, book *entity.Book) (bool, error) {
	existing, err := r.find(ctx, book.Barcode)
	if err != nil {
		return false, err
	}

	bookModel := model.Book{
		Title:   book.Title,
		Barcode: book.Barcode,
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "barcode"}},
		DoUpdates: clause.AssignmentColumns([]string{"title"}),
	}).Create(&bookModel)
	if result.Error != nil {
		return false, r.handleDatabaseError("upserting book", result.Error, book.Barcode)
	}

	if existing != nil {
		book.ID = existing.ID
	} else {
		book.ID = bookModel.ID
	}

	r.logger.Debug("Book upserted", map[string]any{
		"book_id":  book.ID,
		"barcode":  book.Barcode,
		"inserted": existing == nil,
	})
	return existing == nil, nil
}

// GetByBarcode retrieves a book by barcode
func (r *BookRepository) GetByBarcode(ctx context.Context, barcode string) (*entity.Book, error) {
	book, err := r.find(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errs.ErrBookNotFound
	}
	return book, nil
}

// find returns nil without an error when no book carries the barcode
func (r *BookRepository) find(ctx context.Context, barcode string) (*entity.Book, error) {
	var models []model.Book
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).Limit(1).Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting book", err, barcode)
	}
	if len(models) == 0 {
		return nil, nil
	}
	return r.modelToEntity(&models[0]), nil
}

// List returns all books ordered by ID
func (r *BookRepository) List(ctx context.Context) ([]entity.Book, error) {
	var models []model.Book
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing books", err, "")
	}

	books := make([]entity.Book, 0, len(models))
	for i := range models {
		books = append(books, *r.modelToEntity(&models[i]))
	}
	return books, nil
}

// UpdateTitle changes the title of the book with the given barcode
func (r *BookRepository) UpdateTitle(ctx context.Context, barcode, title string) error {
	result := r.db.WithContext(ctx).Model(&model.Book{}).
		Where("barcode = ?", barcode).
		Update("title", title)

	if result.Error != nil {
		return r.handleDatabaseError("updating book", result.Error, barcode)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Book not found during update", map[string]any{
			"barcode": barcode,
		})
		return errs.ErrBookNotFound
	}

	r.logger.Info("Book updated", map[string]any{
		"barcode": barcode,
	})
	return nil
}

// Delete removes the book with the given barcode; loans referencing it are left untouched
func (r *BookRepository) Delete(ctx context.Context, barcode string) error {
	result := r.db.WithContext(ctx).Where("barcode = ?", barcode).Delete(&model.Book{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting book", result.Error, barcode)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Book not found during delete", map[string]any{
			"barcode": barcode,
		})
		return errs.ErrBookNotFound
	}

	r.logger.Info("Book deleted", map[string]any{
		"barcode": barcode,
	})
	return nil
}
