package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager creates the secondary indexes used by the query layer
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the read-side indexes and, on PostgreSQL, applies planner tweaks
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	// Active loans of a student
	if err := m.db.WithContext(ctx).Exec(`
		CREATE INDEX IF NOT EXISTS idx_loans_student_returned
		ON loans (student_id, returned_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create student/returned composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if m.db.Dialector.Name() != "postgres" {
		return nil
	}

	// Daily report range scans over an append-mostly table
	if err := m.db.WithContext(ctx).Exec(`
		CREATE INDEX IF NOT EXISTS idx_loans_checked_out_at_brin
		ON loans USING BRIN (checked_out_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on checked_out_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.db.WithContext(ctx).Exec(`
		ALTER TABLE loans ALTER COLUMN book_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for book_id", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL indexes created successfully", nil)
	return nil
}
