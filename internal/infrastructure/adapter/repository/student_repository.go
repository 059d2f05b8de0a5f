package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudentRepository implements StudentRepository interface using GORM
type StudentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewStudentRepository creates a new StudentRepository instance
func NewStudentRepository(db *gorm.DB, logger coreport.Logger) *StudentRepository {
	return &StudentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *StudentRepository) entityToModel(student *entity.Student) model.Student {
	return model.Student{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Class:     student.Class,
	}
}

func (r *StudentRepository) modelToEntity(m *model.Student) *entity.Student {
	return &entity.Student{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Class:     m.Class,
	}
}

// handleDatabaseError standardizes database error handling
func (r *StudentRepository) handleDatabaseError(operation string, err error, studentID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Student not found", map[string]any{
			"student_id": studentID,
		})
		return errs.ErrStudentNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"student_id": studentID,
		"error":      err.Error(),
	})

	switch {
	case isContextError(err):
		return err
	case r.errorClassifier.IsLockError(err):
		return fmt.Errorf("%w: %s", errs.ErrSerialization, err.Error())
	case r.errorClassifier.IsConstraintError(err):
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

// Create inserts a new student and assigns its ID
func (r *StudentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentModel := r.entityToModel(student)

	if err := r.db.WithContext(ctx).Create(&studentModel).Error; err != nil {
		return r.handleDatabaseError("creating student", err, student.ID)
	}

	student.ID = studentModel.ID
	r.logger.Debug("Student created", map[string]any{
		"student_id": student.ID,
		"class":      student.Class,
	})
	return nil
}

// Upsert inserts a student with its caller-supplied ID or updates the row holding that ID.
// Students without an ID are always inserted.
func (r *StudentRepository) Upsert(ctx context.Context, student *entity.Student) (bool, error) {
	if !student.HasID() {
		if err := r.Create(ctx, student); err != nil {
			return false, err
		}
		return true, nil
	}

	exists, err := r.Exists(ctx, student.ID)
	if err != nil {
		return false, err
	}

	studentModel := r.entityToModel(student)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "class"}),
	}).Create(&studentModel)
	if result.Error != nil {
		return false, r.handleDatabaseError("upserting student", result.Error, student.ID)
	}

	r.logger.Debug("Student upserted", map[string]any{
		"student_id": student.ID,
		"inserted":   !exists,
	})
	return !exists, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id uint64) (*entity.Student, error) {
	var studentModel model.Student
	if err := r.db.WithContext(ctx).First(&studentModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting student", err, id)
	}
	return r.modelToEntity(&studentModel), nil
}

// Exists reports whether a student with the given ID exists
func (r *StudentRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking student existence", err, id)
	}
	return count > 0, nil
}

// List returns all students ordered by ID
func (r *StudentRepository) List(ctx context.Context) ([]entity.Student, error) {
	var models []model.Student
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing students", err, 0)
	}

	students := make([]entity.Student, 0, len(models))
	for i := range models {
		students = append(students, *r.modelToEntity(&models[i]))
	}
	return students, nil
}

// Update overwrites name and class of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *entity.Student) error {
	result := r.db.WithContext(ctx).Model(&model.Student{}).
		Where("id = ?", student.ID).
		Updates(map[string]interface{}{
			"first_name": student.FirstName,
			"last_name":  student.LastName,
			"class":      student.Class,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating student", result.Error, student.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Student not found during update", map[string]any{
			"student_id": student.ID,
		})
		return errs.ErrStudentNotFound
	}

	r.logger.Info("Student updated", map[string]any{
		"student_id": student.ID,
	})
	return nil
}

// Delete removes a student; loans referencing it are left untouched
func (r *StudentRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Student{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting student", result.Error, id)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Student not found during delete", map[string]any{
			"student_id": id,
		})
		return errs.ErrStudentNotFound
	}

	r.logger.Info("Student deleted", map[string]any{
		"student_id": id,
	})
	return nil
}

// SyncIdentity moves the students.id sequence past the highest stored ID.
// SQLite derives the next rowid from the table itself, so only PostgreSQL needs it.
func (r *StudentRepository) SyncIdentity(ctx context.Context) error {
	if !isPostgres(r.db) {
		return nil
	}

	err := r.db.WithContext(ctx).Exec(
		`SELECT setval(pg_get_serial_sequence('students', 'id'), COALESCE((SELECT MAX(id) FROM students), 0) + 1, false)`,
	).Error
	if err != nil {
		return r.handleDatabaseError("synchronising student identity", err, 0)
	}
	return nil
}
