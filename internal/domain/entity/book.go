package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
)

// Book represents one physical copy identified by its barcode
type Book struct {
	ID      uint64
	Title   string
	Barcode string // Natural key used by all loan operations
}

// NewBook creates a book from raw fields
func NewBook(title, barcode string) (*Book, error) {
	barcode, err := NormalizeBarcode(barcode)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is empty for barcode %s", errs.ErrInvalidBook, barcode)
	}

	return &Book{
		Title:   title,
		Barcode: barcode,
	}, nil
}

// NormalizeBarcode trims a barcode and rejects empty values.
// An integral barcode written as a float ("100234.0") is reduced to its digits.
func NormalizeBarcode(barcode string) (string, error) {
	barcode = strings.TrimSpace(barcode)
	if digits, ok := strings.CutSuffix(barcode, ".0"); ok && isDigits(digits) {
		barcode = digits
	}
	if barcode == "" {
		return "", errs.ErrInvalidBarcode
	}
	return barcode, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
