package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// OpenLoanGuards creates the partial unique indexes that allow at most one
// open loan per book and per student. Both PostgreSQL and SQLite accept the syntax.
type OpenLoanGuards struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewOpenLoanGuards creates a new migration instance
func NewOpenLoanGuards(db *gorm.DB, logger coreport.Logger) *OpenLoanGuards {
	return &OpenLoanGuards{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration. It refuses to run while the data already breaks a guard.
func (m *OpenLoanGuards) Run(ctx context.Context) error {
	m.logger.Info("Adding open-loan guards to loans table", nil)

	for _, column := range []string{"book_id", "student_id"} {
		conflicts, err := m.countConflicts(ctx, column)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			m.logger.Error("Existing loans violate the open-loan guard", map[string]any{
				"column":    column,
				"conflicts": conflicts,
			})
			return fmt.Errorf("%d %s values hold more than one open loan; close the duplicates before migrating", conflicts, column)
		}
	}

	statements := []struct {
		name string
		sql  string
	}{
		{repository.IndexOpenLoanPerBook, "CREATE UNIQUE INDEX IF NOT EXISTS " + repository.IndexOpenLoanPerBook + " ON loans (book_id) WHERE returned_at IS NULL"},
		{repository.IndexOpenLoanPerStudent, "CREATE UNIQUE INDEX IF NOT EXISTS " + repository.IndexOpenLoanPerStudent + " ON loans (student_id) WHERE returned_at IS NULL"},
	}

	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create open-loan guard", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Successfully added open-loan guards", nil)
	return nil
}

// countConflicts counts the values of column that currently hold more than one open loan
func (m *OpenLoanGuards) countConflicts(ctx context.Context, column string) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT COUNT(*) FROM (
			SELECT %s FROM loans WHERE returned_at IS NULL GROUP BY %s HAVING COUNT(*) > 1
		) conflicts`, column, column)).Scan(&count).Error
	if err != nil {
		m.logger.Error("Failed to check open-loan conflicts", map[string]any{"error": err.Error()})
		return 0, err
	}
	return count, nil
}
