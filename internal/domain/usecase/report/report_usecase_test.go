package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	mcore "github.com/amirhossein-jamali/library-lending/mocks/port/core"
	mpers "github.com/amirhossein-jamali/library-lending/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *mcore.MockLogger {
	logger := new(mcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestDayRange(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	tests := []struct {
		name      string
		location  *time.Location
		date      string
		wantFrom  time.Time
		wantTo    time.Time
		wantError bool
	}{
		{
			name:     "UTC day",
			location: time.UTC,
			date:     "2025-06-02",
			wantFrom: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Library time zone ahead of UTC",
			location: kolkata,
			date:     "2025-06-02",
			wantFrom: time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC),
		},
		{
			name:     "Surrounding whitespace",
			location: time.UTC,
			date:     " 2024-02-29 ",
			wantFrom: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "Empty", location: time.UTC, date: "", wantError: true},
		{name: "Wrong layout", location: time.UTC, date: "02/06/2025", wantError: true},
		{name: "Impossible day", location: time.UTC, date: "2025-02-30", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewReportUseCase(new(mpers.MockLoanQueryRepository), tt.location, newLogger())

			from, to, err := useCase.DayRange(tt.date)

			if tt.wantError {
				assert.True(t, errors.Is(err, errs.ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantFrom.Equal(from), "from = %v", from)
			assert.True(t, tt.wantTo.Equal(to), "to = %v", to)
		})
	}
}

func TestDailyReport(t *testing.T) {
	ctx := context.Background()
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	t.Run("Queries the day range and localises dates", func(t *testing.T) {
		queryRepo := new(mpers.MockLoanQueryRepository)
		useCase := NewReportUseCase(queryRepo, kolkata, newLogger())
		checkout := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

		queryRepo.On("CheckoutsBetween", ctx,
			time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC),
			time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC),
		).Return([]entity.DailyReportEntry{
			{FirstName: "Anu", LastName: "Ravi", Class: "2-C", BookTitle: "Thirukkural", CheckoutDate: checkout},
		}, nil)

		entries, err := useCase.DailyReport(ctx, "2025-06-02")

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Anu", entries[0].FirstName)
		assert.Equal(t, 2, entries[0].CheckoutDate.Day())
		assert.Equal(t, kolkata, entries[0].CheckoutDate.Location())
		queryRepo.AssertExpectations(t)
	})

	t.Run("Invalid date never reaches the store", func(t *testing.T) {
		queryRepo := new(mpers.MockLoanQueryRepository)
		useCase := NewReportUseCase(queryRepo, time.UTC, newLogger())

		_, err := useCase.DailyReport(ctx, "yesterday")

		assert.True(t, errors.Is(err, errs.ErrInvalidDate))
		queryRepo.AssertNotCalled(t, "CheckoutsBetween", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store failure", func(t *testing.T) {
		queryRepo := new(mpers.MockLoanQueryRepository)
		useCase := NewReportUseCase(queryRepo, time.UTC, newLogger())
		queryRepo.On("CheckoutsBetween", ctx, mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection)

		_, err := useCase.DailyReport(ctx, "2025-06-02")

		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	})

	t.Run("Empty day", func(t *testing.T) {
		queryRepo := new(mpers.MockLoanQueryRepository)
		useCase := NewReportUseCase(queryRepo, time.UTC, newLogger())
		queryRepo.On("CheckoutsBetween", ctx, mock.Anything, mock.Anything).Return([]entity.DailyReportEntry{}, nil)

		entries, err := useCase.DailyReport(ctx, "2025-06-02")

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
