package usecase

import (
	"context"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
)

// StudentInput is a raw student row as received from the API or an import
type StudentInput struct {
	ID        uint64
	FirstName string
	LastName  string
	Class     string
}

// BookInput is a raw book row as received from the API or an import
type BookInput struct {
	Title   string
	Barcode string
}

// CatalogUseCase defines the entity store operations for students and books
type CatalogUseCase interface {
	// AddStudents inserts a batch of students, skipping malformed rows
	AddStudents(ctx context.Context, rows []StudentInput) (*entity.UpsertSummary, error)

	// UpsertStudents inserts or updates students keyed on their optional ID
	UpsertStudents(ctx context.Context, rows []StudentInput) (*entity.UpsertSummary, error)

	// ListStudents returns all students
	ListStudents(ctx context.Context) ([]entity.Student, error)

	// UpdateStudent overwrites name and class of a student
	UpdateStudent(ctx context.Context, id uint64, row StudentInput) (*entity.Student, error)

	// DeleteStudent removes a student
	DeleteStudent(ctx context.Context, id uint64) error

	// AddBooks inserts a batch of books, skipping duplicate barcodes
	AddBooks(ctx context.Context, rows []BookInput) (*entity.UpsertSummary, error)

	// UpsertBooks inserts books or updates titles keyed on barcode
	UpsertBooks(ctx context.Context, rows []BookInput) (*entity.UpsertSummary, error)

	// ListBooks returns all books
	ListBooks(ctx context.Context) ([]entity.Book, error)

	// UpdateBookTitle changes the title of a book
	UpdateBookTitle(ctx context.Context, barcode, title string) (*entity.Book, error)

	// DeleteBook removes a book
	DeleteBook(ctx context.Context, barcode string) error
}
