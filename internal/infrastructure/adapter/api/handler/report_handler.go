package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read-only projections
type ReportHandler struct {
	reports usecase.ReportUseCase
	logger  coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(reports usecase.ReportUseCase, logger coreport.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		logger:  logger,
	}
}

// DailyReport handles the GET /daily-report?date=YYYY-MM-DD endpoint
func (h *ReportHandler) DailyReport(c *gin.Context) {
	date := c.Query("date")

	entries, err := h.reports.DailyReport(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, "Error building daily report", err, map[string]any{"date": date})
		return
	}

	resp := make([]dto.DailyReportEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.DailyReportEntryResponse{
			FirstName:    e.FirstName,
			LastName:     e.LastName,
			Class:        e.Class,
			BookTitle:    e.BookTitle,
			CheckoutDate: e.CheckoutDate,
		})
	}
	c.JSON(http.StatusOK, resp)
}
