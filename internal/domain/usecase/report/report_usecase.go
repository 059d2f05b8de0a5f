package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/persistence"
)

// DateLayout is the calendar day format accepted by the daily report
const DateLayout = "2006-01-02"

// ReportUseCase serves the read-only reports
type ReportUseCase struct {
	queryRepo persistence.LoanQueryRepository
	location  *time.Location
	logger    coreport.Logger
}

// NewReportUseCase creates a new ReportUseCase. Calendar days are interpreted in location.
func NewReportUseCase(
	queryRepo persistence.LoanQueryRepository,
	location *time.Location,
	logger coreport.Logger,
) *ReportUseCase {
	if location == nil {
		location = time.UTC
	}

	return &ReportUseCase{
		queryRepo: queryRepo,
		location:  location,
		logger:    logger,
	}
}

// DailyReport lists every loan checked out on the given calendar day
func (u *ReportUseCase) DailyReport(ctx context.Context, date string) ([]entity.DailyReportEntry, error) {
	from, to, err := u.DayRange(date)
	if err != nil {
		return nil, err
	}

	entries, err := u.queryRepo.CheckoutsBetween(ctx, from, to)
	if err != nil {
		u.logger.Error("Failed to build daily report", map[string]any{
			"date":  date,
			"error": err.Error(),
		})
		return nil, err
	}

	for i := range entries {
		entries[i].CheckoutDate = entries[i].CheckoutDate.In(u.location)
	}

	u.logger.Debug("Daily report built", map[string]any{
		"date":    date,
		"entries": len(entries),
	})
	return entries, nil
}

// DayRange returns the half-open UTC range [start, end) covering the calendar day in the library time zone
func (u *ReportUseCase) DayRange(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), u.location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", errs.ErrInvalidDate, date)
	}

	return day.UTC(), day.AddDate(0, 0, 1).UTC(), nil
}
