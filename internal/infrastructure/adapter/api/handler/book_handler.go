package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// BookHandler handles book-related HTTP requests
type BookHandler struct {
	catalog usecase.CatalogUseCase
	logger  coreport.Logger
}

// NewBookHandler creates a new book handler instance
func NewBookHandler(catalog usecase.CatalogUseCase, logger coreport.Logger) *BookHandler {
	return &BookHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// AddBooks handles the POST /books endpoint
func (h *BookHandler) AddBooks(c *gin.Context) {
	rows, ok := bindBooks(c)
	if !ok {
		return
	}

	summary, err := h.catalog.AddBooks(c.Request.Context(), rows)
	if err != nil {
		respondError(c, h.logger, "Error adding books", err, map[string]any{"rows": len(rows)})
		return
	}

	c.JSON(http.StatusCreated, dto.NewBatchResponse("Books added", summary, false))
}

// UpsertBooks handles the POST /books/upsert endpoint
func (h *BookHandler) UpsertBooks(c *gin.Context) {
	rows, ok := bindBooks(c)
	if !ok {
		return
	}

	summary, err := h.catalog.UpsertBooks(c.Request.Context(), rows)
	if err != nil {
		respondError(c, h.logger, "Error upserting books", err, map[string]any{"rows": len(rows)})
		return
	}

	c.JSON(http.StatusOK, dto.NewBatchResponse("Upsert complete for books", summary, true))
}

// ListBooks handles the GET /books endpoint
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.catalog.ListBooks(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error listing books", err, nil)
		return
	}

	resp := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		resp = append(resp, dto.NewBookResponse(&books[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateBook handles the PUT /book/:barcode endpoint
func (h *BookHandler) UpdateBook(c *gin.Context) {
	barcode := c.Param("barcode")

	var req dto.BookTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	book, err := h.catalog.UpdateBookTitle(c.Request.Context(), barcode, req.Title)
	if err != nil {
		respondError(c, h.logger, "Error updating book", err, map[string]any{"barcode": barcode})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Book updated",
		"book":    dto.NewBookResponse(book),
	})
}

// DeleteBook handles the DELETE /book/:barcode endpoint
func (h *BookHandler) DeleteBook(c *gin.Context) {
	barcode := c.Param("barcode")

	if err := h.catalog.DeleteBook(c.Request.Context(), barcode); err != nil {
		respondError(c, h.logger, "Error deleting book", err, map[string]any{"barcode": barcode})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Book deleted"})
}

func bindBooks(c *gin.Context) ([]usecase.BookInput, bool) {
	var req []dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return nil, false
	}

	rows := make([]usecase.BookInput, 0, len(req))
	for _, r := range req {
		rows = append(rows, r.ToInput())
	}
	return rows, true
}
