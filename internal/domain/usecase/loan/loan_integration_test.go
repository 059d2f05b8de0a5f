package loan_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/domain/usecase/loan"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/query"
	timeprovider "github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLoanUseCase(t *testing.T) (*database.TestDBManager, *loan.LoanUseCase, *timeprovider.FixedTimeProvider) {
	t.Helper()

	clock := timeprovider.NewFixedTimeProvider(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	testDB := database.NewTestDBManager(t, logger.NewNoopLogger(), clock)
	testDB.Connect(t)

	queryRepo, err := query.NewLoanQueryRepository(testDB.Manager, testDB.Logger, clock)
	require.NoError(t, err)

	useCase := loan.NewLoanUseCase(testDB.Manager.CreateUnitOfWork(), queryRepo, clock, testDB.Logger, 3)
	return testDB, useCase, clock
}

func TestLoanLifecycle(t *testing.T) {
	testDB, useCase, clock := setupLoanUseCase(t)
	ctx := context.Background()

	anu := testDB.CreateTestStudent(t, "Anu", "Ravi", "2-C")
	kavin := testDB.CreateTestStudent(t, "Kavin", "Kumar", "3-A")
	testDB.CreateTestBook(t, "Thirukkural", "BK001")
	testDB.CreateTestBook(t, "Ponniyin Selvan", "BK002")

	first, err := useCase.Checkout(ctx, anu, "BK001")
	require.NoError(t, err)
	assert.True(t, first.IsOpen())

	_, err = useCase.Checkout(ctx, anu, "BK002")
	assert.True(t, errors.Is(err, errs.ErrAlreadyCheckedOut))

	_, err = useCase.Checkout(ctx, kavin, "BK001")
	assert.True(t, errors.Is(err, errs.ErrBookOnLoan))

	_, err = useCase.Checkout(ctx, kavin, "NOPE")
	assert.True(t, errors.Is(err, errs.ErrInvalidReference))

	_, err = useCase.Checkout(ctx, 9999, "BK002")
	assert.True(t, errors.Is(err, errs.ErrInvalidReference))

	active, err := useCase.ActiveLoansForStudent(ctx, anu)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "BK001", active[0].Barcode)

	clock.Advance(72 * time.Hour)
	returned, err := useCase.Return(ctx, "BK001")
	require.NoError(t, err)
	assert.Equal(t, first.ID, returned.ID)
	assert.Equal(t, 72*time.Hour, returned.Duration(clock.Now()))

	_, err = useCase.Return(ctx, "BK001")
	assert.True(t, errors.Is(err, errs.ErrNoOpenLoan))

	_, err = useCase.Return(ctx, "NOPE")
	assert.True(t, errors.Is(err, errs.ErrNoOpenLoan))

	// The book can be lent again, and the student can borrow again
	second, err := useCase.Checkout(ctx, kavin, "BK001")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = useCase.Checkout(ctx, anu, "BK002")
	assert.NoError(t, err)

	active, err = useCase.ActiveLoansForStudent(ctx, anu)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "BK002", active[0].Barcode)
}

func TestConcurrentCheckoutOfSameBook(t *testing.T) {
	testDB, useCase, _ := setupLoanUseCase(t)
	ctx := context.Background()

	const callers = 8
	students := make([]uint64, callers)
	for i := range students {
		students[i] = testDB.CreateTestStudent(t, "Student", "Racer", "5-A")
	}
	testDB.CreateTestBook(t, "Thirukkural", "BK001")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		onLoan    int
		other     []error
	)

	start := make(chan struct{})
	for _, studentID := range students {
		wg.Add(1)
		go func(studentID uint64) {
			defer wg.Done()
			<-start

			_, err := useCase.Checkout(ctx, studentID, "BK001")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, errs.ErrBookOnLoan):
				onLoan++
			default:
				other = append(other, err)
			}
		}(studentID)
	}
	close(start)
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, onLoan)

	var open int64
	require.NoError(t, testDB.Manager.DB().Raw(`SELECT COUNT(*) FROM loans WHERE returned_at IS NULL`).Scan(&open).Error)
	assert.Equal(t, int64(1), open)
}

func TestConcurrentCheckoutBySameStudent(t *testing.T) {
	testDB, useCase, _ := setupLoanUseCase(t)
	ctx := context.Background()

	student := testDB.CreateTestStudent(t, "Anu", "Ravi", "2-C")
	barcodes := []string{"BK001", "BK002", "BK003", "BK004"}
	for _, barcode := range barcodes {
		testDB.CreateTestBook(t, "Book "+barcode, barcode)
	}

	var wg sync.WaitGroup
	results := make([]error, len(barcodes))
	for i, barcode := range barcodes {
		wg.Add(1)
		go func(i int, barcode string) {
			defer wg.Done()
			_, results[i] = useCase.Checkout(ctx, student, barcode)
		}(i, barcode)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.True(t, errors.Is(err, errs.ErrAlreadyCheckedOut), "got %v", err)
	}
	assert.Equal(t, 1, successes)
}
