package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
)

// Student represents a library member
type Student struct {
	ID        uint64 // Unique identifier; zero until persisted unless supplied by an import
	FirstName string
	LastName  string
	Class     string // Class label, e.g. "2-C"
}

// NewStudent creates a student from raw fields.
// A missing first or last name is filled from the other one.
func NewStudent(id uint64, firstName, lastName, class string) (*Student, error) {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	class = strings.TrimSpace(class)

	if first == "" && last == "" {
		return nil, fmt.Errorf("%w: first and last name are both empty", errs.ErrInvalidStudent)
	}
	if class == "" {
		return nil, fmt.Errorf("%w: class is empty", errs.ErrInvalidStudent)
	}

	if first == "" {
		first = last
	}
	if last == "" {
		last = first
	}

	return &Student{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Class:     class,
	}, nil
}

// HasID reports whether the caller supplied an explicit identity
func (s *Student) HasID() bool {
	return s.ID != 0
}

// FullName returns the display name of the student
func (s *Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
