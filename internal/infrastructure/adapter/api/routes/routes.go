package routes

import (
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Student *handler.StudentHandler
	Book    *handler.BookHandler
	Loan    *handler.LoanHandler
	Report  *handler.ReportHandler
	Health  *handler.HealthHandler
	// Auth is nil when the login gate is disabled
	Auth *handler.AuthHandler
}

// SetupRoutes configures all the routes for the API.
// A non-nil sessions manager puts every library route behind a login.
func SetupRoutes(router *gin.Engine, h Handlers, sessions *auth.SessionManager) {
	router.GET("/", h.Health.Home)
	router.GET("/healthz", h.Health.Healthz)

	if h.Auth != nil {
		router.POST("/login", h.Auth.Login)
		router.POST("/logout", h.Auth.Logout)
	}

	library := router.Group("/")
	if sessions != nil {
		library.Use(middleware.RequireSession(sessions))
	}

	// Student routes
	{
		library.POST("/students", h.Student.AddStudents)
		library.GET("/students", h.Student.ListStudents)
		library.POST("/students/upsert", h.Student.UpsertStudents)
		library.PUT("/student/:id", h.Student.UpdateStudent)
		library.DELETE("/student/:id", h.Student.DeleteStudent)
	}

	// Book routes
	{
		library.POST("/books", h.Book.AddBooks)
		library.GET("/books", h.Book.ListBooks)
		library.POST("/books/upsert", h.Book.UpsertBooks)
		library.PUT("/book/:barcode", h.Book.UpdateBook)
		library.DELETE("/book/:barcode", h.Book.DeleteBook)
	}

	// Loan routes
	{
		library.POST("/checkout", h.Loan.Checkout)
		library.POST("/return", h.Loan.Return)
		library.GET("/student-loans/:studentId", h.Loan.ActiveLoans)
		library.GET("/daily-report", h.Report.DailyReport)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Request id first so recovery and access logs can carry it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
