package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/persistence"
)

const defaultRetryBackoff = 50 * time.Millisecond

// CatalogUseCase handles student and book records
type CatalogUseCase struct {
	uow          persistence.UnitOfWork
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	maxRetries   int
	retryBackoff time.Duration
}

// NewCatalogUseCase creates a new CatalogUseCase. Batches are not retried until WithRetry is set.
func NewCatalogUseCase(
	uow persistence.UnitOfWork,
	logger coreport.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		uow:          uow,
		logger:       logger,
		retryBackoff: defaultRetryBackoff,
	}
}

// WithRetry reruns a batch whose transaction was aborted by a concurrent writer
func (u *CatalogUseCase) WithRetry(timeProvider coreport.TimeProvider, maxRetries int, backoff time.Duration) *CatalogUseCase {
	if maxRetries < 0 {
		maxRetries = 0
	}
	u.timeProvider = timeProvider
	u.maxRetries = maxRetries
	if backoff > 0 {
		u.retryBackoff = backoff
	}
	return u
}

// rowFunc writes a single row and reports whether a new record was inserted
type rowFunc func(ctx context.Context, index int) (bool, error)

// runBatch runs the batch in one transaction and reruns it from the first row
// when the transaction fails with a serialization error.
func (u *CatalogUseCase) runBatch(ctx context.Context, operation string, size int, write rowFunc) (*entity.UpsertSummary, error) {
	for attempt := 0; ; attempt++ {
		summary, err := u.runBatchOnce(ctx, operation, size, write)
		if err == nil || !errors.Is(err, errs.ErrSerialization) {
			return summary, err
		}

		if attempt >= u.maxRetries || u.timeProvider == nil {
			u.logger.Error("Batch aborted by concurrent writers", map[string]any{
				"operation": operation,
				"attempts":  attempt + 1,
				"error":     err.Error(),
			})
			return nil, err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		backoff := u.retryBackoff << attempt
		u.logger.Warn("Batch transaction aborted by a concurrent writer, retrying", map[string]any{
			"operation":   operation,
			"attempt":     attempt + 1,
			"max_retries": u.maxRetries,
			"retry_after": backoff.String(),
		})
		u.timeProvider.Sleep(coreport.Duration(backoff))
	}
}

// runBatchOnce writes every row in its own savepoint of one transaction.
// A failing row is rolled back and counted as skipped; the rest of the batch still commits.
func (u *CatalogUseCase) runBatchOnce(
	ctx context.Context,
	operation string,
	size int,
	write rowFunc,
) (summary *entity.UpsertSummary, err error) {
	summary = &entity.UpsertSummary{}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		u.logger.Error("Failed to begin batch transaction", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return nil, err
	}

	defer func() {
		if err != nil {
			if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
				u.logger.Error("Failed to rollback batch transaction", map[string]any{
					"operation": operation,
					"error":     rbErr.Error(),
				})
			}
		}
	}()

	for i := 0; i < size; i++ {
		var inserted bool
		rowErr := u.uow.Savepoint(txCtx, func(rowCtx context.Context) error {
			var writeErr error
			inserted, writeErr = write(rowCtx, i)
			return writeErr
		})

		switch {
		case rowErr != nil && errors.Is(rowErr, errs.ErrSerialization):
			// A serialization failure aborts the whole transaction.
			return nil, rowErr
		case rowErr != nil:
			u.logger.Warn("Skipping row", map[string]any{
				"operation": operation,
				"row":       i,
				"error":     rowErr.Error(),
			})
			summary.Skip(i, rowErr)
		case inserted:
			summary.Inserted++
		default:
			summary.Updated++
		}
	}

	if err = u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("Batch completed", map[string]any{
		"operation": operation,
		"inserted":  summary.Inserted,
		"updated":   summary.Updated,
		"skipped":   summary.Skipped,
	})

	return summary, nil
}
