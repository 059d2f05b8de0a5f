package model

// Book represents the database model for books
type Book struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	Title   string `gorm:"not null;size:500"`
	Barcode string `gorm:"uniqueIndex:idx_books_barcode;not null;size:100"`
}

// TableName specifies the table name for Book
func (Book) TableName() string {
	return "books"
}
