package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/usecase"
)

// StudentRequest is one student row of a batch or an update body
type StudentRequest struct {
	ID        uint64 `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Class     string `json:"class"`
}

// ToInput converts the request into a use case row
func (r StudentRequest) ToInput() usecase.StudentInput {
	return usecase.StudentInput{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Class:     r.Class,
	}
}

// StudentResponse represents a stored student
type StudentResponse struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Class     string `json:"class"`
}

// NewStudentResponse maps a student entity
func NewStudentResponse(s *entity.Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Class:     s.Class,
	}
}

// FlexibleBarcode accepts a barcode sent as a JSON string or number
type FlexibleBarcode string

// UnmarshalJSON implements json.Unmarshaler
func (b *FlexibleBarcode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = FlexibleBarcode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("barcode must be a string or number: %w", err)
	}
	*b = FlexibleBarcode(numericBarcode(n))
	return nil
}

// numericBarcode renders an integral JSON number without a fraction or exponent
func numericBarcode(n json.Number) string {
	if _, err := n.Int64(); err == nil {
		return n.String()
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= 1<<53 {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// BookRequest is one book row of a batch
type BookRequest struct {
	Title   string          `json:"title"`
	Barcode FlexibleBarcode `json:"barcode"`
}

// ToInput converts the request into a use case row
func (r BookRequest) ToInput() usecase.BookInput {
	return usecase.BookInput{
		Title:   r.Title,
		Barcode: string(r.Barcode),
	}
}

// BookTitleRequest is the body of a book update
type BookTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

// BookResponse represents a stored book
type BookResponse struct {
	ID      uint64 `json:"id"`
	Title   string `json:"title"`
	Barcode string `json:"barcode"`
}

// NewBookResponse maps a book entity
func NewBookResponse(b *entity.Book) BookResponse {
	return BookResponse{
		ID:      b.ID,
		Title:   b.Title,
		Barcode: b.Barcode,
	}
}

// RowFailureResponse describes a skipped batch row
type RowFailureResponse struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BatchResponse reports the outcome of a batch write
type BatchResponse struct {
	Message  string               `json:"message"`
	Inserted int                  `json:"inserted"`
	Updated  *int                 `json:"updated,omitempty"`
	Skipped  int                  `json:"skipped"`
	Failures []RowFailureResponse `json:"failures,omitempty"`
}

// NewBatchResponse maps an upsert summary. withUpdated adds the updated count for upserts.
func NewBatchResponse(message string, summary *entity.UpsertSummary, withUpdated bool) BatchResponse {
	resp := BatchResponse{
		Message:  message,
		Inserted: summary.Inserted,
		Skipped:  summary.Skipped,
	}
	if withUpdated {
		updated := summary.Updated
		resp.Updated = &updated
	}
	for _, f := range summary.Failures {
		resp.Failures = append(resp.Failures, RowFailureResponse{Index: f.Index, Reason: f.Reason})
	}
	return resp
}
