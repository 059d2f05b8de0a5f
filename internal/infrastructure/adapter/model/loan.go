package model

import (
	"time"
)

// Loan represents the database model for checkout transactions.
// Open loans have a NULL returned_at; the partial unique indexes created by
// the migrations allow one such row per book and per student.
type Loan struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement"`
	StudentID    uint64     `gorm:"not null;index"`
	BookID       uint64     `gorm:"not null;index"`
	CheckedOutAt time.Time  `gorm:"not null;index"`
	ReturnedAt   *time.Time
}

// TableName specifies the table name for Loan
func (Loan) TableName() string {
	return "loans"
}
