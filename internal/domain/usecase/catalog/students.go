package catalog

import (
	"context"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/usecase"
)

// AddStudents inserts a batch of students. Rows that fail validation or the insert are skipped.
func (u *CatalogUseCase) AddStudents(ctx context.Context, rows []usecase.StudentInput) (*entity.UpsertSummary, error) {
	return u.runBatch(ctx, "add_students", len(rows), func(rowCtx context.Context, i int) (bool, error) {
		row := rows[i]
		student, err := entity.NewStudent(0, row.FirstName, row.LastName, row.Class)
		if err != nil {
			return false, err
		}
		if err := u.uow.GetStudentRepository(rowCtx).Create(rowCtx, student); err != nil {
			return false, err
		}
		return true, nil
	})
}

// UpsertStudents inserts or updates students keyed on their optional ID.
// Rows without an ID are always inserted. The ID generator is realigned right after
// each explicit-ID insert so later rows of the same batch do not collide with it.
func (u *CatalogUseCase) UpsertStudents(ctx context.Context, rows []usecase.StudentInput) (*entity.UpsertSummary, error) {
	return u.runBatch(ctx, "upsert_students", len(rows), func(rowCtx context.Context, i int) (bool, error) {
		row := rows[i]
		student, err := entity.NewStudent(row.ID, row.FirstName, row.LastName, row.Class)
		if err != nil {
			return false, err
		}

		repo := u.uow.GetStudentRepository(rowCtx)
		inserted, err := repo.Upsert(rowCtx, student)
		if err != nil {
			return false, err
		}
		if inserted && row.ID != 0 {
			if err := repo.SyncIdentity(rowCtx); err != nil {
				return false, err
			}
		}
		return inserted, nil
	})
}

// ListStudents returns all students
func (u *CatalogUseCase) ListStudents(ctx context.Context) ([]entity.Student, error) {
	return u.uow.GetStudentRepository(ctx).List(ctx)
}

// UpdateStudent overwrites name and class of a student
func (u *CatalogUseCase) UpdateStudent(ctx context.Context, id uint64, row usecase.StudentInput) (*entity.Student, error) {
	if id == 0 {
		return nil, errs.ErrInvalidStudentID
	}

	student, err := entity.NewStudent(id, row.FirstName, row.LastName, row.Class)
	if err != nil {
		return nil, err
	}

	if err := u.uow.GetStudentRepository(ctx).Update(ctx, student); err != nil {
		return nil, err
	}

	u.logger.Info("Student updated", map[string]any{
		"student_id": id,
	})
	return student, nil
}

// DeleteStudent removes a student. Loans of the student are kept.
func (u *CatalogUseCase) DeleteStudent(ctx context.Context, id uint64) error {
	if id == 0 {
		return errs.ErrInvalidStudentID
	}

	if err := u.uow.GetStudentRepository(ctx).Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Student deleted", map[string]any{
		"student_id": id,
	})
	return nil
}
