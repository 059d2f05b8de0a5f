package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
)

// QueryMetrics holds metrics about a database query
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsReturned int64
	Failed       bool
	ErrorMessage string
}

// MetricsCollector measures read queries and reports slow ones
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: 100 * time.Millisecond,
	}
}

// MeasureQuery runs fn and logs it when it exceeds the slow threshold
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func() (int64, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	rows, err := fn()

	metrics := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Now().Sub(start),
		RowsReturned: rows,
		Failed:       err != nil,
	}

	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if metrics.Duration > c.slowThreshold {
		c.logger.Warn("Slow database query detected", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"rows_returned": rows,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
			"request_id":    applogger.RequestIDFromContext(ctx),
		})
	}

	return metrics, err
}
