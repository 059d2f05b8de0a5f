package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/usecase"
)

// AddBooks inserts a batch of books. Duplicate barcodes and malformed rows are skipped.
func (u *CatalogUseCase) AddBooks(ctx context.Context, rows []usecase.BookInput) (*entity.UpsertSummary, error) {
	return u.runBatch(ctx, "add_books", len(rows), func(rowCtx context.Context, i int) (bool, error) {
		book, err := entity.NewBook(rows[i].Title, rows[i].Barcode)
		if err != nil {
			return false, err
		}
		if err := u.uow.GetBookRepository(rowCtx).Create(rowCtx, book); err != nil {
			return false, err
		}
		return true, nil
	})
}

// UpsertBooks inserts books or replaces the title of the book holding the barcode
func (u *CatalogUseCase) UpsertBooks(ctx context.Context, rows []usecase.BookInput) (*entity.UpsertSummary, error) {
	return u.runBatch(ctx, "upsert_books", len(rows), func(rowCtx context.Context, i int) (bool, error) {
		book, err := entity.NewBook(rows[i].Title, rows[i].Barcode)
		if err != nil {
			return false, err
		}
		return u.uow.GetBookRepository(rowCtx).Upsert(rowCtx, book)
	})
}

// ListBooks returns all books
func (u *CatalogUseCase) ListBooks(ctx context.Context) ([]entity.Book, error) {
	return u.uow.GetBookRepository(ctx).List(ctx)
}

// UpdateBookTitle changes the title of the book with the given barcode
func (u *CatalogUseCase) UpdateBookTitle(ctx context.Context, barcode, title string) (*entity.Book, error) {
	barcode, err := entity.NormalizeBarcode(barcode)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is empty for barcode %s", errs.ErrInvalidBook, barcode)
	}

	repo := u.uow.GetBookRepository(ctx)
	if err := repo.UpdateTitle(ctx, barcode, title); err != nil {
		return nil, err
	}

	u.logger.Info("Book title updated", map[string]any{
		"barcode": barcode,
	})
	return repo.GetByBarcode(ctx, barcode)
}

// DeleteBook removes the book with the given barcode. Loans of the book are kept.
func (u *CatalogUseCase) DeleteBook(ctx context.Context, barcode string) error {
	barcode, err := entity.NormalizeBarcode(barcode)
	if err != nil {
		return err
	}

	if err := u.uow.GetBookRepository(ctx).Delete(ctx, barcode); err != nil {
		return err
	}

	u.logger.Info("Book deleted", map[string]any{
		"barcode": barcode,
	})
	return nil
}
