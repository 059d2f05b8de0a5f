package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/usecase"
)

// Canonical column names
const (
	ColumnID        = "id"
	ColumnFirstName = "first_name"
	ColumnLastName  = "last_name"
	ColumnClass     = "class"
	ColumnTitle     = "title"
	ColumnBarcode   = "barcode"
)

// headerAliases maps normalized headers found in the school sheets to canonical column names
var headerAliases = map[string]string{
	"id":                              ColumnID,
	"student id":                      ColumnID,
	"first_name":                      ColumnFirstName,
	"first name":                      ColumnFirstName,
	"student first name (in english)": ColumnFirstName,
	"last_name":                       ColumnLastName,
	"last name":                       ColumnLastName,
	"student last name (in english)":  ColumnLastName,
	"class":                           ColumnClass,
	"title":                           ColumnTitle,
	"book title":                      ColumnTitle,
	"barcode":                         ColumnBarcode,
	"bar code":                        ColumnBarcode,
}

// ErrMissingColumn is returned when a required column is absent from the header row
var ErrMissingColumn = errors.New("required column is missing")

// sheet is a CSV file with its header resolved to canonical column positions
type sheet struct {
	columns map[string]int
	rows    [][]string
	// line numbers of rows, 1-based and counting the header
	lines []int
}

// ParseStudents reads student rows from CSV. defaultClass is used when the sheet has no class column.
func ParseStudents(r io.Reader, defaultClass string) ([]usecase.StudentInput, error) {
	s, err := readSheet(r)
	if err != nil {
		return nil, err
	}

	if !s.has(ColumnFirstName) && !s.has(ColumnLastName) {
		return nil, fmt.Errorf("%w: %s or %s", ErrMissingColumn, ColumnFirstName, ColumnLastName)
	}
	defaultClass = strings.TrimSpace(defaultClass)
	if !s.has(ColumnClass) && defaultClass == "" {
		return nil, fmt.Errorf("%w: %s (pass a default class)", ErrMissingColumn, ColumnClass)
	}

	students := make([]usecase.StudentInput, 0, len(s.rows))
	for i, row := range s.rows {
		id, err := parseID(s.value(row, ColumnID))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", s.lines[i], err)
		}

		class := s.value(row, ColumnClass)
		if class == "" {
			class = defaultClass
		}

		students = append(students, usecase.StudentInput{
			ID:        id,
			FirstName: s.value(row, ColumnFirstName),
			LastName:  s.value(row, ColumnLastName),
			Class:     class,
		})
	}
	return students, nil
}

// ParseBooks reads book rows from CSV
func ParseBooks(r io.Reader) ([]usecase.BookInput, error) {
	s, err := readSheet(r)
	if err != nil {
		return nil, err
	}

	for _, column := range []string{ColumnTitle, ColumnBarcode} {
		if !s.has(column) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}

	books := make([]usecase.BookInput, 0, len(s.rows))
	for _, row := range s.rows {
		books = append(books, usecase.BookInput{
			Title:   s.value(row, ColumnTitle),
			Barcode: normalizeNumeric(s.value(row, ColumnBarcode)),
		})
	}
	return books, nil
}

func readSheet(r io.Reader) (*sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty sheet", errs.ErrInvalidRequest)
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidRequest, err)
	}

	s := &sheet{columns: make(map[string]int)}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if column, ok := headerAliases[normalizeHeader(name)]; ok {
			if _, seen := s.columns[column]; !seen {
				s.columns[column] = i
			}
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errs.ErrInvalidRequest, line, err)
		}
		if isBlank(record) {
			continue
		}
		s.rows = append(s.rows, record)
		s.lines = append(s.lines, line)
	}

	return s, nil
}

func (s *sheet) has(column string) bool {
	_, ok := s.columns[column]
	return ok
}

// value returns the trimmed cell of column, or "" when the column or cell is absent
func (s *sheet) value(row []string, column string) string {
	i, ok := s.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseID accepts an empty cell (no ID) or a positive integer, also written as "12.0" by spreadsheet exports
func parseID(cell string) (uint64, error) {
	if cell == "" {
		return 0, nil
	}

	if id, err := strconv.ParseUint(cell, 10, 64); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || f <= 0 || f != math.Trunc(f) || f > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidStudentID, cell)
	}
	return uint64(f), nil
}

// normalizeNumeric drops the ".0" suffix spreadsheet exports add to integral numbers
func normalizeNumeric(cell string) string {
	if strings.HasSuffix(cell, ".0") {
		if _, err := strconv.ParseUint(strings.TrimSuffix(cell, ".0"), 10, 64); err == nil {
			return strings.TrimSuffix(cell, ".0")
		}
	}
	return cell
}
