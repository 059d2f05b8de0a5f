package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for testing with a migrated SQLite database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager backed by a file in t.TempDir.
// A nil timeProvider uses the wall clock.
func NewTestDBManager(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	if timeProvider == nil {
		timeProvider = timeprovider.NewRealTimeProvider()
	}

	config := &Config{
		Driver:          DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "library_test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent", // Silent logging in tests by default
		RetryAttempts:   1,        // One attempt for tests to fail fast
		RetryDelay:      time.Millisecond,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and runs all migrations
func (m *TestDBManager) Connect(t *testing.T) {
	t.Helper()

	if _, err := m.Manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := m.Manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { m.Close(t) })
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// CreateTestStudent inserts a student row and returns its ID
func (m *TestDBManager) CreateTestStudent(t *testing.T, firstName, lastName, class string) uint64 {
	t.Helper()

	student := model.Student{FirstName: firstName, LastName: lastName, Class: class}
	if err := m.Manager.DB().Create(&student).Error; err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	return student.ID
}

// CreateTestBook inserts a book row and returns its ID
func (m *TestDBManager) CreateTestBook(t *testing.T, title, barcode string) uint64 {
	t.Helper()

	book := model.Book{Title: title, Barcode: barcode}
	if err := m.Manager.DB().Create(&book).Error; err != nil {
		t.Fatalf("Failed to create test book: %v", err)
	}
	return book.ID
}

// CreateTestLoan inserts a loan row; a nil returnedAt leaves it open
func (m *TestDBManager) CreateTestLoan(t *testing.T, studentID, bookID uint64, checkedOutAt time.Time, returnedAt *time.Time) uint64 {
	t.Helper()

	loan := model.Loan{
		StudentID:    studentID,
		BookID:       bookID,
		CheckedOutAt: checkedOutAt.UTC(),
		ReturnedAt:   returnedAt,
	}
	if err := m.Manager.DB().Create(&loan).Error; err != nil {
		t.Fatalf("Failed to create test loan: %v", err)
	}
	return loan.ID
}
