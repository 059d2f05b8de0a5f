package persistence

import (
	"context"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
)

// StudentRepository defines methods to interact with student records
type StudentRepository interface {
	// Create inserts a new student and assigns its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the row violates a constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, student *entity.Student) error

	// Upsert inserts a student with its caller-supplied ID or updates the existing row
	// Returns true when a new row was inserted
	//
	// Possible errors:
	// - ErrConstraintViolation: If the row violates a constraint
	// - ErrDatabaseConnection: If database connection fails
	Upsert(ctx context.Context, student *entity.Student) (bool, error)

	// GetByID retrieves a student by ID
	//
	// Possible errors:
	// - ErrStudentNotFound: If the student doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Student, error)

	// Exists reports whether a student with the given ID exists
	Exists(ctx context.Context, id uint64) (bool, error)

	// List returns all students ordered by ID
	List(ctx context.Context) ([]entity.Student, error)

	// Update overwrites name and class of an existing student
	//
	// Possible errors:
	// - ErrStudentNotFound: If the student doesn't exist
	Update(ctx context.Context, student *entity.Student) error

	// Delete removes a student; loans referencing it are left untouched
	//
	// Possible errors:
	// - ErrStudentNotFound: If the student doesn't exist
	Delete(ctx context.Context, id uint64) error

	// SyncIdentity realigns the ID generator after rows were inserted with explicit IDs
	SyncIdentity(ctx context.Context) error
}
