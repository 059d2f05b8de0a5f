package persistence

import (
	"context"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
)

// BookRepository defines methods to interact with book records keyed by barcode
type BookRepository interface {
	// Create inserts a new book
	//
	// Possible errors:
	// - ErrDuplicateBarcode: If the barcode already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, book *entity.Book) error

	// Upsert inserts a book or updates the title of the book with the same barcode
	// Returns true when a new row was inserted
	Upsert(ctx context.Context, book *entity.Book) (bool, error)

	// GetByBarcode retrieves a book by barcode
	//
	// Possible errors:
	// - ErrBookNotFound: If no book carries the barcode
	GetByBarcode(ctx context.Context, barcode string) (*entity.Book, error)

	// List returns all books ordered by ID
	List(ctx context.Context) ([]entity.Book, error)

	// UpdateTitle changes the title of the book with the given barcode
	//
	// Possible errors:
	// - ErrBookNotFound: If no book carries the barcode
	UpdateTitle(ctx context.Context, barcode, title string) error

	// Delete removes the book with the given barcode; loans referencing it are left untouched
	//
	// Possible errors:
	// - ErrBookNotFound: If no book carries the barcode
	Delete(ctx context.Context, barcode string) error
}
