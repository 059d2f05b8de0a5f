package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/time"
	mcore "github.com/amirhossein-jamali/library-lending/mocks/port/core"
	musecase "github.com/amirhossein-jamali/library-lending/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionSecret = "0123456789abcdef0123456789abcdef"

type stubProbe struct {
	err error
}

func (p stubProbe) Ping(ctx context.Context) error { return p.err }

func (p stubProbe) PoolMetrics() database.ConnectionPoolMetrics {
	return database.ConnectionPoolMetrics{OpenConnections: 1, MaxOpenConnections: 1}
}

type fixture struct {
	router        *gin.Engine
	catalog       *musecase.MockCatalogUseCase
	loans         *musecase.MockLoanUseCase
	reports       *musecase.MockReportUseCase
	authenticator *mcore.MockAuthenticator
	log           *logger.RecordingLogger
}

func newFixture(t *testing.T, probe stubProbe, withAuth bool) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		router:        gin.New(),
		catalog:       new(musecase.MockCatalogUseCase),
		loans:         new(musecase.MockLoanUseCase),
		reports:       new(musecase.MockReportUseCase),
		authenticator: new(mcore.MockAuthenticator),
		log:           logger.NewRecordingLogger(),
	}

	h := routes.Handlers{
		Student: handler.NewStudentHandler(f.catalog, f.log),
		Book:    handler.NewBookHandler(f.catalog, f.log),
		Loan:    handler.NewLoanHandler(f.loans, f.log),
		Report:  handler.NewReportHandler(f.reports, f.log),
		Health:  handler.NewHealthHandler(probe, f.log),
	}

	var sessions *auth.SessionManager
	if withAuth {
		var err error
		sessions, err = auth.NewSessionManager(sessionSecret, 3600, false)
		require.NoError(t, err)
		h.Auth = handler.NewAuthHandler(f.authenticator, sessions, f.log)
	}

	routes.SetupMiddlewares(f.router, f.log, timeadapter.NewRealTimeProvider())
	routes.SetupRoutes(f.router, h, sessions)

	t.Cleanup(func() {
		f.catalog.AssertExpectations(t)
		f.loans.AssertExpectations(t)
		f.reports.AssertExpectations(t)
		f.authenticator.AssertExpectations(t)
	})
	return f
}

func (f *fixture) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCheckout(t *testing.T) {
	checkedOut := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setupMocks func(f *fixture)
		wantStatus int
		wantCode   int
		wantError  string
	}{
		{
			name: "Success",
			body: `{"student_id": 7, "barcode": "BK001"}`,
			setupMocks: func(f *fixture) {
				f.loans.On("Checkout", mock.Anything, uint64(7), "BK001").
					Return(&entity.Loan{ID: 1, StudentID: 7, BookID: 3, CheckedOutAt: checkedOut}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Numeric barcode is stringified",
			body: `{"student_id": 7, "barcode": 100234}`,
			setupMocks: func(f *fixture) {
				f.loans.On("Checkout", mock.Anything, uint64(7), "100234").
					Return(&entity.Loan{ID: 2, StudentID: 7, BookID: 4, CheckedOutAt: checkedOut}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Float barcode keeps its digits",
			body: `{"student_id": 7, "barcode": 100234.0}`,
			setupMocks: func(f *fixture) {
				f.loans.On("Checkout", mock.Anything, uint64(7), "100234").
					Return(&entity.Loan{ID: 2, StudentID: 7, BookID: 4, CheckedOutAt: checkedOut}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Exponent barcode keeps its digits",
			body: `{"student_id": 7, "barcode": 1.00234e5}`,
			setupMocks: func(f *fixture) {
				f.loans.On("Checkout", mock.Anything, uint64(7), "100234").
					Return(&entity.Loan{ID: 2, StudentID: 7, BookID: 4, CheckedOutAt: checkedOut}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Student already holds a book",
			body: `{"student_id": 7, "barcode": "BK001"}`,
			setupMocks: func(f *fixture) {
				f.loans.On("Checkout", mock.Anything, uint64(7), "BK001").
					Return(nil, errs.NewLoanError("checkout", 7, "BK001", errs.ErrAlreadyCheckedOut))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   errs.CodeAlreadyCheckedOut,
			wantError:  "Student already has a book checked out",
		},
		{
			name: "Unknown student or book",
			body: `{"student_id": 7, "barcode": "NOPE"}`,
			setupMocks: func(f *fixture) {
				f.loans.On("Checkout", mock.Anything, uint64(7), "NOPE").
					Return(nil, errs.NewLoanError("checkout", 7, "NOPE", errs.ErrInvalidReference))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   errs.CodeInvalidReference,
			wantError:  "Invalid student or book",
		},
		{
			name: "Book already on loan",
			body: `{"student_id": 8, "barcode": "BK001"}`,
			setupMocks: func(f *fixture) {
				f.loans.On("Checkout", mock.Anything, uint64(8), "BK001").
					Return(nil, errs.NewLoanError("checkout", 8, "BK001", errs.ErrBookOnLoan))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   errs.CodeBookOnLoan,
			wantError:  "Book is already checked out",
		},
		{
			name: "Retries exhausted",
			body: `{"student_id": 8, "barcode": "BK001"}`,
			setupMocks: func(f *fixture) {
				f.loans.On("Checkout", mock.Anything, uint64(8), "BK001").
					Return(nil, fmt.Errorf("%w: %v", errs.ErrLoanConflict, errs.ErrSerialization))
			},
			wantStatus: http.StatusConflict,
			wantCode:   errs.CodeLoanConflict,
		},
		{
			name: "Database down",
			body: `{"student_id": 8, "barcode": "BK001"}`,
			setupMocks: func(f *fixture) {
				f.loans.On("Checkout", mock.Anything, uint64(8), "BK001").
					Return(nil, errs.ErrDatabaseConnection)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   errs.CodeInternalServer,
			wantError:  "Internal server error",
		},
		{
			name:       "Missing student id",
			body:       `{"barcode": "BK001"}`,
			setupMocks: func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   errs.CodeInvalidRequest,
		},
		{
			name:       "Malformed barcode",
			body:       `{"student_id": 7, "barcode": {"a": 1}}`,
			setupMocks: func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   errs.CodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, stubProbe{}, false)
			tt.setupMocks(f)

			rec := f.do(http.MethodPost, "/checkout", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				resp := decode[dto.LoanResponse](t, rec)
				assert.Equal(t, "Book checked out", resp.Message)
				assert.Nil(t, resp.ReturnedAt)
				return
			}

			resp := decode[dto.ErrorResponse](t, rec)
			assert.Equal(t, tt.wantCode, resp.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp.Error)
			}
		})
	}
}

func TestReturn(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		out := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		back := out.Add(48 * time.Hour)
		f.loans.On("Return", mock.Anything, "BK001").
			Return(&entity.Loan{ID: 1, StudentID: 7, BookID: 3, CheckedOutAt: out, ReturnedAt: &back}, nil)

		rec := f.do(http.MethodPost, "/return", `{"barcode": "BK001"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.LoanResponse](t, rec)
		assert.Equal(t, "Book returned", resp.Message)
		require.NotNil(t, resp.ReturnedAt)
		assert.True(t, back.Equal(*resp.ReturnedAt))
	})

	t.Run("No open loan", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.loans.On("Return", mock.Anything, "BK001").
			Return(nil, errs.NewLoanError("return", 0, "BK001", errs.ErrNoOpenLoan))

		rec := f.do(http.MethodPost, "/return", `{"barcode": "BK001"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decode[dto.ErrorResponse](t, rec)
		assert.Equal(t, errs.CodeNoOpenLoan, resp.Code)
		assert.Equal(t, "No open transaction found for this book", resp.Error)

		entry, found := f.log.Find("Return rejected")
		require.True(t, found)
		assert.Equal(t, core.LogLevelWarn, entry.Level)
	})
}

func TestStudentRoutes(t *testing.T) {
	t.Run("Add students", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("AddStudents", mock.Anything, []usecase.StudentInput{
			{FirstName: "Anu", LastName: "Ravi", Class: "2-C"},
			{FirstName: "", LastName: "", Class: "2-C"},
		}).Return(&entity.UpsertSummary{
			Inserted: 1,
			Skipped:  1,
			Failures: []entity.RowFailure{{Index: 1, Reason: "invalid student record"}},
		}, nil)

		rec := f.do(http.MethodPost, "/students",
			`[{"first_name":"Anu","last_name":"Ravi","class":"2-C"},{"class":"2-C"}]`)

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decode[map[string]any](t, rec)
		assert.Equal(t, "Students added", resp["message"])
		assert.Equal(t, float64(1), resp["inserted"])
		assert.NotContains(t, resp, "updated")
		assert.Len(t, resp["failures"], 1)
	})

	t.Run("Upsert students reports all counts", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("UpsertStudents", mock.Anything, []usecase.StudentInput{
			{ID: 12, FirstName: "Anu", LastName: "Ravi", Class: "2-C"},
		}).Return(&entity.UpsertSummary{Updated: 1}, nil)

		rec := f.do(http.MethodPost, "/students/upsert",
			`[{"id":12,"first_name":"Anu","last_name":"Ravi","class":"2-C"}]`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[map[string]any](t, rec)
		assert.Equal(t, "Upsert complete for students", resp["message"])
		assert.Equal(t, float64(0), resp["inserted"])
		assert.Equal(t, float64(1), resp["updated"])
		assert.Equal(t, float64(0), resp["skipped"])
	})

	t.Run("Body is not an array", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)

		rec := f.do(http.MethodPost, "/students", `{"first_name":"Anu"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("List students", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("ListStudents", mock.Anything).Return([]entity.Student{
			{ID: 1, FirstName: "Anu", LastName: "Ravi", Class: "2-C"},
		}, nil)

		rec := f.do(http.MethodGet, "/students", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[[]dto.StudentResponse](t, rec)
		assert.Equal(t, []dto.StudentResponse{{ID: 1, FirstName: "Anu", LastName: "Ravi", Class: "2-C"}}, resp)
	})

	t.Run("Empty list is an array", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("ListStudents", mock.Anything).Return(nil, nil)

		rec := f.do(http.MethodGet, "/students", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Update student", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("UpdateStudent", mock.Anything, uint64(5), usecase.StudentInput{FirstName: "Mala", LastName: "Devi", Class: "3-A"}).
			Return(&entity.Student{ID: 5, FirstName: "Mala", LastName: "Devi", Class: "3-A"}, nil)

		rec := f.do(http.MethodPut, "/student/5", `{"first_name":"Mala","last_name":"Devi","class":"3-A"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Student updated")
	})

	t.Run("Update missing student", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("UpdateStudent", mock.Anything, uint64(99), mock.Anything).Return(nil, errs.ErrStudentNotFound)

		rec := f.do(http.MethodPut, "/student/99", `{"first_name":"Mala","last_name":"Devi","class":"3-A"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errs.CodeNotFound, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Invalid student id", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)

		rec := f.do(http.MethodDelete, "/student/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid student ID format", decode[dto.ErrorResponse](t, rec).Error)
	})

	t.Run("Delete student", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("DeleteStudent", mock.Anything, uint64(5)).Return(nil)

		rec := f.do(http.MethodDelete, "/student/5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Student deleted"}`, rec.Body.String())
	})
}

func TestBookRoutes(t *testing.T) {
	t.Run("Add books counts skipped duplicates", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("AddBooks", mock.Anything, []usecase.BookInput{
			{Title: "Ponniyin Selvan", Barcode: "BK001"},
			{Title: "Copy", Barcode: "BK001"},
		}).Return(&entity.UpsertSummary{Inserted: 1, Skipped: 1}, nil)

		rec := f.do(http.MethodPost, "/books",
			`[{"title":"Ponniyin Selvan","barcode":"BK001"},{"title":"Copy","barcode":"BK001"}]`)

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decode[dto.BatchResponse](t, rec)
		assert.Equal(t, 1, resp.Inserted)
		assert.Equal(t, 1, resp.Skipped)
	})

	t.Run("Upsert books with numeric barcode", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("UpsertBooks", mock.Anything, []usecase.BookInput{{Title: "Wings of Fire", Barcode: "100234"}}).
			Return(&entity.UpsertSummary{Updated: 1}, nil)

		rec := f.do(http.MethodPost, "/books/upsert", `[{"title":"Wings of Fire","barcode":100234}]`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[dto.BatchResponse](t, rec)
		require.NotNil(t, resp.Updated)
		assert.Equal(t, 1, *resp.Updated)
	})

	t.Run("Upsert books with float barcode", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("UpsertBooks", mock.Anything, []usecase.BookInput{{Title: "Wings of Fire", Barcode: "100234"}}).
			Return(&entity.UpsertSummary{Updated: 1}, nil)

		rec := f.do(http.MethodPost, "/books/upsert", `[{"title":"Wings of Fire","barcode":100234.0}]`)

		require.Equal(t, http.StatusOK, rec.Code)
		f.catalog.AssertExpectations(t)
	})

	t.Run("List books", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("ListBooks", mock.Anything).Return([]entity.Book{{ID: 3, Title: "Wings of Fire", Barcode: "BK003"}}, nil)

		rec := f.do(http.MethodGet, "/books", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":3,"title":"Wings of Fire","barcode":"BK003"}]`, rec.Body.String())
	})

	t.Run("Update title", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("UpdateBookTitle", mock.Anything, "BK003", "Wings of Fire (2nd ed.)").
			Return(&entity.Book{ID: 3, Title: "Wings of Fire (2nd ed.)", Barcode: "BK003"}, nil)

		rec := f.do(http.MethodPut, "/book/BK003", `{"title":"Wings of Fire (2nd ed.)"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Update without title", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)

		rec := f.do(http.MethodPut, "/book/BK003", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Delete missing book", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("DeleteBook", mock.Anything, "BK404").Return(errs.ErrBookNotFound)

		rec := f.do(http.MethodDelete, "/book/BK404", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Book not found", decode[dto.ErrorResponse](t, rec).Error)
	})
}

func TestQueryRoutes(t *testing.T) {
	checkedOut := time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)

	t.Run("Active loans", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.loans.On("ActiveLoansForStudent", mock.Anything, uint64(7)).
			Return([]entity.ActiveLoan{{Title: "Wings of Fire", Barcode: "BK003", CheckoutDate: checkedOut}}, nil)

		rec := f.do(http.MethodGet, "/student-loans/7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`[{"title":"Wings of Fire","barcode":"BK003","checkout_date":"2025-06-02T14:30:00Z"}]`,
			rec.Body.String())
	})

	t.Run("Daily report", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.reports.On("DailyReport", mock.Anything, "2025-06-02").Return([]entity.DailyReportEntry{{
			FirstName:    "Anu",
			LastName:     "Ravi",
			Class:        "2-C",
			BookTitle:    "Wings of Fire",
			CheckoutDate: checkedOut,
		}}, nil)

		rec := f.do(http.MethodGet, "/daily-report?date=2025-06-02", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[[]dto.DailyReportEntryResponse](t, rec)
		require.Len(t, resp, 1)
		assert.Equal(t, "Wings of Fire", resp[0].BookTitle)
	})

	t.Run("Daily report with bad date", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.reports.On("DailyReport", mock.Anything, "02/06/2025").
			Return(nil, fmt.Errorf("%w: %q", errs.ErrInvalidDate, "02/06/2025"))

		rec := f.do(http.MethodGet, "/daily-report?date=02/06/2025", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Date must be formatted as YYYY-MM-DD", decode[dto.ErrorResponse](t, rec).Error)
	})
}

func TestHealthRoutes(t *testing.T) {
	t.Run("Banner", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)

		rec := f.do(http.MethodGet, "/", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, handler.Banner, rec.Body.String())
	})

	t.Run("Healthy", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)

		rec := f.do(http.MethodGet, "/healthz", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[map[string]any](t, rec)
		assert.Equal(t, "up", resp["database"])
		assert.NotNil(t, resp["pool"])
	})

	t.Run("Database unreachable", func(t *testing.T) {
		f := newFixture(t, stubProbe{err: errs.ErrDatabaseConnection}, false)

		rec := f.do(http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "down", decode[dto.HealthResponse](t, rec).Database)
	})
}

func TestMiddlewares(t *testing.T) {
	t.Run("Request id is propagated", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("ListBooks", mock.MatchedBy(func(ctx context.Context) bool {
			return logger.RequestIDFromContext(ctx) == "req-42"
		})).Return([]entity.Book{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))

		entry, found := f.log.Find("Request processed")
		require.True(t, found)
		assert.Equal(t, "req-42", entry.Fields["request_id"])
	})

	t.Run("Request id is generated", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)

		rec := f.do(http.MethodGet, "/", "")

		assert.Len(t, rec.Header().Get(middleware.RequestIDHeader), 36)
	})

	t.Run("Panics become 500", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)
		f.catalog.On("ListBooks", mock.Anything).Run(func(args mock.Arguments) {
			panic("boom")
		}).Return(nil, nil)

		rec := f.do(http.MethodGet, "/books", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, errs.CodeInternalServer, decode[dto.ErrorResponse](t, rec).Code)
		_, found := f.log.Find("Panic recovered in API request")
		assert.True(t, found)
	})

	t.Run("CORS preflight", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, false)

		rec := f.do(http.MethodOptions, "/checkout", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoginGate(t *testing.T) {
	t.Run("Library routes require a session", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, true)

		rec := f.do(http.MethodGet, "/books", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errs.CodeUnauthorized, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Health stays public", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, true)

		rec := f.do(http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, true)
		f.authenticator.On("Authenticate", mock.Anything, "librarian", "nope").Return(nil, errs.ErrUnauthorized)

		rec := f.do(http.MethodPost, "/login", `{"username":"librarian","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("Login unlocks the library then logout locks it", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, true)
		f.authenticator.On("Authenticate", mock.Anything, "librarian", "shelf-42").
			Return(&core.Principal{Username: "librarian"}, nil)
		f.catalog.On("ListBooks", mock.Anything).Return([]entity.Book{}, nil).Once()

		login := f.do(http.MethodPost, "/login", `{"username":"librarian","password":"shelf-42"}`)
		require.Equal(t, http.StatusOK, login.Code)
		cookies := login.Result().Cookies()
		require.Len(t, cookies, 1)

		rec := f.do(http.MethodGet, "/books", "", cookies[0])
		assert.Equal(t, http.StatusOK, rec.Code)

		logout := f.do(http.MethodPost, "/logout", "", cookies[0])
		require.Equal(t, http.StatusOK, logout.Code)
		expired := logout.Result().Cookies()
		require.Len(t, expired, 1)
		assert.True(t, expired[0].MaxAge < 0)
	})

	t.Run("Login body is validated", func(t *testing.T) {
		f := newFixture(t, stubProbe{}, true)

		rec := f.do(http.MethodPost, "/login", `{"username":"librarian"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, handler.StatusCode(errs.ErrStudentNotFound))
	assert.Equal(t, http.StatusConflict, handler.StatusCode(errs.ErrSerialization))
	assert.Equal(t, http.StatusBadRequest, handler.StatusCode(errs.ErrDuplicateBarcode))
	assert.Equal(t, http.StatusUnauthorized, handler.StatusCode(errs.ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, handler.StatusCode(errors.New("boom")))
}
