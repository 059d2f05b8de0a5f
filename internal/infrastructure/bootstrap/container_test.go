package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Environment: config.Test,
		Database: config.DatabaseConfig{
			Driver:        "sqlite",
			Path:          filepath.Join(t.TempDir(), "library.db"),
			MaxOpenConns:  1,
			MaxIdleConns:  1,
			QueryTimeout:  5 * time.Second,
			RetryAttempts: 1,
			LogLevel:      "silent",
		},
		Library: config.LibraryConfig{
			Timezone:           "Asia/Kolkata",
			CheckoutMaxRetries: 2,
		},
	}
}

func TestContainer(t *testing.T) {
	ctx := context.Background()
	// 23:00 in Kolkata on June 2nd
	clock := timeadapter.NewFixedTimeProvider(time.Date(2025, 6, 2, 17, 30, 0, 0, time.UTC))

	c, err := New(sqliteConfig(t), logger.NewNoopLogger(), clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Migrate(ctx))

	students, err := c.Catalog.AddStudents(ctx, []usecase.StudentInput{{FirstName: "Anu", LastName: "Ravi", Class: "2-C"}})
	require.NoError(t, err)
	require.Equal(t, 1, students.Inserted)

	books, err := c.Catalog.AddBooks(ctx, []usecase.BookInput{{Title: "Wings of Fire", Barcode: "BK003"}})
	require.NoError(t, err)
	require.Equal(t, 1, books.Inserted)

	list, err := c.Catalog.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	loan, err := c.Loans.Checkout(ctx, list[0].ID, "BK003")
	require.NoError(t, err)
	assert.True(t, loan.IsOpen())

	_, err = c.Loans.Checkout(ctx, list[0].ID, "BK003")
	assert.ErrorIs(t, err, errs.ErrAlreadyCheckedOut)

	report, err := c.Reports.DailyReport(ctx, "2025-06-02")
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, "Wings of Fire", report[0].BookTitle)
	assert.Equal(t, 23, report[0].CheckoutDate.Hour())

	empty, err := c.Reports.DailyReport(ctx, "2025-06-03")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestContainerRejectsInvalidDatabaseConfig(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Database.Path = ""
	t.Setenv("LIB_DB_PATH", "")

	_, err := New(cfg, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())

	assert.Error(t, err)
}
