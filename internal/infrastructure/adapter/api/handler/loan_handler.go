package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LoanHandler handles checkout and return requests
type LoanHandler struct {
	loans  usecase.LoanUseCase
	logger coreport.Logger
}

// NewLoanHandler creates a new loan handler instance
func NewLoanHandler(loans usecase.LoanUseCase, logger coreport.Logger) *LoanHandler {
	return &LoanHandler{
		loans:  loans,
		logger: logger,
	}
}

// Checkout handles the POST /checkout endpoint
func (h *LoanHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	loan, err := h.loans.Checkout(c.Request.Context(), req.StudentID, string(req.Barcode))
	if err != nil {
		respondError(c, h.logger, "Checkout rejected", err, map[string]any{
			"student_id": req.StudentID,
			"barcode":    string(req.Barcode),
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewLoanResponse("Book checked out", loan))
}

// Return handles the POST /return endpoint
func (h *LoanHandler) Return(c *gin.Context) {
	var req dto.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	loan, err := h.loans.Return(c.Request.Context(), string(req.Barcode))
	if err != nil {
		respondError(c, h.logger, "Return rejected", err, map[string]any{"barcode": string(req.Barcode)})
		return
	}

	c.JSON(http.StatusOK, dto.NewLoanResponse("Book returned", loan))
}

// ActiveLoans handles the GET /student-loans/:studentId endpoint
func (h *LoanHandler) ActiveLoans(c *gin.Context) {
	studentID, ok := studentIDParam(c, "studentId")
	if !ok {
		return
	}

	loans, err := h.loans.ActiveLoansForStudent(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, h.logger, "Error listing active loans", err, map[string]any{"student_id": studentID})
		return
	}

	resp := make([]dto.ActiveLoanResponse, 0, len(loans))
	for _, l := range loans {
		resp = append(resp, dto.ActiveLoanResponse{
			Title:        l.Title,
			Barcode:      l.Barcode,
			CheckoutDate: l.CheckoutDate,
		})
	}
	c.JSON(http.StatusOK, resp)
}
