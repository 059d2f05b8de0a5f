package usecase

import (
	"context"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
)

// ReportUseCase defines the read-only reporting projections
type ReportUseCase interface {
	// DailyReport lists every loan checked out on the given calendar day (YYYY-MM-DD)
	DailyReport(ctx context.Context, date string) ([]entity.DailyReportEntry, error)
}
