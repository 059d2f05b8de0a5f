package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type server struct {
	t      *testing.T
	router *gin.Engine
	c      *Container
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := timeadapter.NewFixedTimeProvider(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	log := logger.NewNoopLogger()

	c, err := New(sqliteConfig(t), log, clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.Migrate(context.Background()))

	router := gin.New()
	routes.SetupMiddlewares(router, log, clock)
	routes.SetupRoutes(router, routes.Handlers{
		Student: handler.NewStudentHandler(c.Catalog, log),
		Book:    handler.NewBookHandler(c.Catalog, log),
		Loan:    handler.NewLoanHandler(c.Loans, log),
		Report:  handler.NewReportHandler(c.Reports, log),
		Health:  handler.NewHealthHandler(c.DB, log),
	}, nil)

	return &server{t: t, router: router, c: c}
}

func (s *server) do(method, path, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestListingsAreRepeatable(t *testing.T) {
	s := newServer(t)

	rec := s.do(http.MethodPost, "/students",
		`[{"first_name":"Anu","last_name":"Ravi","class":"2-C"},{"first_name":"Kavin","last_name":"Kumar","class":"3-A"}]`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/books", `[{"title":"Wings of Fire","barcode":"BK003"}]`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	for _, path := range []string{"/students", "/books"} {
		t.Run(path, func(t *testing.T) {
			first := s.do(http.MethodGet, path, "")
			second := s.do(http.MethodGet, path, "")

			require.Equal(t, http.StatusOK, first.Code)
			require.Equal(t, http.StatusOK, second.Code)
			assert.JSONEq(t, first.Body.String(), second.Body.String())
		})
	}

	students, err := s.c.Catalog.ListStudents(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 2)

	books, err := s.c.Catalog.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestFloatBarcodeMatchesImportedBook(t *testing.T) {
	s := newServer(t)

	rec := s.do(http.MethodPost, "/books", `[{"title":"Wings of Fire","barcode":"100234"}]`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/books/upsert", `[{"title":"Wings of Fire (2nd ed.)","barcode":100234.0}]`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var batch dto.BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	assert.Equal(t, 0, batch.Inserted)
	require.NotNil(t, batch.Updated)
	assert.Equal(t, 1, *batch.Updated)

	var books []dto.BookResponse
	rec = s.do(http.MethodGet, "/books", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	require.Len(t, books, 1)
	assert.Equal(t, "100234", books[0].Barcode)
	assert.Equal(t, "Wings of Fire (2nd ed.)", books[0].Title)

	rec = s.do(http.MethodPost, "/students", `[{"first_name":"Anu","last_name":"Ravi","class":"2-C"}]`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var students []dto.StudentResponse
	rec = s.do(http.MethodGet, "/students", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &students))
	require.Len(t, students, 1)

	rec = s.do(http.MethodPost, "/checkout", fmt.Sprintf(`{"student_id":%d,"barcode":100234.0}`, students[0].ID))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/return", `{"barcode":100234.0}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
