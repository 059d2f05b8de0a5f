package entity

import "time"

// ActiveLoan is an open loan joined with its book
type ActiveLoan struct {
	Title        string
	Barcode      string
	CheckoutDate time.Time
}

// DailyReportEntry is a loan checked out on the reported day, joined with student and book
type DailyReportEntry struct {
	FirstName    string
	LastName     string
	Class        string
	BookTitle    string
	CheckoutDate time.Time
}

// UpsertSummary counts the outcome of a batch write
type UpsertSummary struct {
	Inserted int
	Updated  int
	Skipped  int
	Failures []RowFailure
}

// RowFailure records a skipped row of a batch
type RowFailure struct {
	Index  int
	Reason string
}

// Skip records a failed row
func (s *UpsertSummary) Skip(index int, err error) {
	s.Skipped++
	s.Failures = append(s.Failures, RowFailure{Index: index, Reason: err.Error()})
}

// Total returns the number of rows processed
func (s *UpsertSummary) Total() int {
	return s.Inserted + s.Updated + s.Skipped
}
