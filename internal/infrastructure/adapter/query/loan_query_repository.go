package query

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/database"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/jmoiron/sqlx"
)

// goqu dialect names
const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// Table and column identifiers
const (
	tableLoans    = "loans"
	tableBooks    = "books"
	tableStudents = "students"

	colLoanID       = "l.id"
	colLoanStudent  = "l.student_id"
	colLoanBook     = "l.book_id"
	colCheckedOutAt = "l.checked_out_at"
	colReturnedAt   = "l.returned_at"
	colBookID       = "b.id"
	colBookTitle    = "b.title"
	colBookBarcode  = "b.barcode"
	colStudentID    = "s.id"
	colFirstName    = "s.first_name"
	colLastName     = "s.last_name"
	colClass        = "s.class"
)

type activeLoanRow struct {
	Title        string    `db:"title"`
	Barcode      string    `db:"barcode"`
	CheckoutDate time.Time `db:"checkout_date"`
}

type dailyReportRow struct {
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Class        string    `db:"class"`
	BookTitle    string    `db:"book_title"`
	CheckoutDate time.Time `db:"checkout_date"`
}

// LoanQueryRepository serves the read-side projections with goqu-built SQL executed through sqlx
type LoanQueryRepository struct {
	db          *sqlx.DB
	builder     goqu.DialectWrapper
	manager     *database.Manager
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
	metrics     *database.MetricsCollector
	retryConfig database.RetryConfig
}

// NewLoanQueryRepository creates a query repository sharing the manager's connection pool
func NewLoanQueryRepository(manager *database.Manager, logger coreport.Logger, timeProvider coreport.TimeProvider) (*LoanQueryRepository, error) {
	db, err := manager.SQLX()
	if err != nil {
		return nil, err
	}

	dialect := dialectPostgres
	if manager.Dialect() == database.DriverSQLite {
		dialect = dialectSQLite
	}

	return &LoanQueryRepository{
		db:          db,
		builder:     goqu.Dialect(dialect),
		manager:     manager,
		logger:      logger,
		errorMapper: manager.GetErrorMapper(),
		metrics:     database.NewMetricsCollector(logger, timeProvider),
		retryConfig: database.DefaultRetryConfig(),
	}, nil
}

// ActiveLoansForStudent returns the open loans of a student joined with book title and barcode
func (r *LoanQueryRepository) ActiveLoansForStudent(ctx context.Context, studentID uint64) ([]entity.ActiveLoan, error) {
	ds := r.builder.
		From(goqu.T(tableLoans).As("l")).
		Join(goqu.T(tableBooks).As("b"), goqu.On(goqu.I(colBookID).Eq(goqu.I(colLoanBook)))).
		Select(
			goqu.I(colBookTitle).As("title"),
			goqu.I(colBookBarcode).As("barcode"),
			goqu.I(colCheckedOutAt).As("checkout_date"),
		).
		Where(
			goqu.I(colLoanStudent).Eq(studentID),
			goqu.I(colReturnedAt).IsNull(),
		)

	rows, err := selectRows[activeLoanRow](ctx, r, "active_loans_for_student", ds)
	if err != nil {
		return nil, err
	}

	loans := make([]entity.ActiveLoan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, entity.ActiveLoan{
			Title:        row.Title,
			Barcode:      row.Barcode,
			CheckoutDate: row.CheckoutDate.UTC(),
		})
	}
	return loans, nil
}

// CheckoutsBetween returns loans checked out in [from, to) joined with student and book data
func (r *LoanQueryRepository) CheckoutsBetween(ctx context.Context, from, to time.Time) ([]entity.DailyReportEntry, error) {
	ds := r.builder.
		From(goqu.T(tableLoans).As("l")).
		Join(goqu.T(tableStudents).As("s"), goqu.On(goqu.I(colStudentID).Eq(goqu.I(colLoanStudent)))).
		Join(goqu.T(tableBooks).As("b"), goqu.On(goqu.I(colBookID).Eq(goqu.I(colLoanBook)))).
		Select(
			goqu.I(colFirstName).As("first_name"),
			goqu.I(colLastName).As("last_name"),
			goqu.I(colClass).As("class"),
			goqu.I(colBookTitle).As("book_title"),
			goqu.I(colCheckedOutAt).As("checkout_date"),
		).
		Where(
			goqu.I(colCheckedOutAt).Gte(from.UTC()),
			goqu.I(colCheckedOutAt).Lt(to.UTC()),
		).
		Order(goqu.I(colCheckedOutAt).Asc(), goqu.I(colLoanID).Asc())

	rows, err := selectRows[dailyReportRow](ctx, r, "checkouts_between", ds)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.DailyReportEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entity.DailyReportEntry{
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Class:        row.Class,
			BookTitle:    row.BookTitle,
			CheckoutDate: row.CheckoutDate.UTC(),
		})
	}
	return entries, nil
}

// selectRows renders ds as a prepared statement and scans the result, retrying transient failures
func selectRows[T any](ctx context.Context, r *LoanQueryRepository, operation string, ds *goqu.SelectDataset) ([]T, error) {
	sqlQuery, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		r.logger.Error("Failed to build query", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: building %s query: %v", errs.ErrInternalServer, operation, err)
	}

	var rows []T
	err = database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		rows = rows[:0]
		queryCtx, cancel := r.manager.WithTimeout(ctx)
		defer cancel()

		_, err := r.metrics.MeasureQuery(ctx, operation, func() (int64, error) {
			if err := r.db.SelectContext(queryCtx, &rows, sqlQuery, args...); err != nil {
				return 0, err
			}
			return int64(len(rows)), nil
		})
		return err
	}, r.errorMapper, r.logger)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
