package handler

import (
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// StudentHandler handles student-related HTTP requests
type StudentHandler struct {
	catalog usecase.CatalogUseCase
	logger  coreport.Logger
}

// NewStudentHandler creates a new student handler instance
func NewStudentHandler(catalog usecase.CatalogUseCase, logger coreport.Logger) *StudentHandler {
	return &StudentHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// AddStudents handles the POST /students endpoint
func (h *StudentHandler) AddStudents(c *gin.Context) {
	rows, ok := bindStudents(c)
	if !ok {
		return
	}

	summary, err := h.catalog.AddStudents(c.Request.Context(), rows)
	if err != nil {
		respondError(c, h.logger, "Error adding students", err, map[string]any{"rows": len(rows)})
		return
	}

	c.JSON(http.StatusCreated, dto.NewBatchResponse("Students added", summary, false))
}

// UpsertStudents handles the POST /students/upsert endpoint
func (h *StudentHandler) UpsertStudents(c *gin.Context) {
	rows, ok := bindStudents(c)
	if !ok {
		return
	}

	summary, err := h.catalog.UpsertStudents(c.Request.Context(), rows)
	if err != nil {
		respondError(c, h.logger, "Error upserting students", err, map[string]any{"rows": len(rows)})
		return
	}

	c.JSON(http.StatusOK, dto.NewBatchResponse("Upsert complete for students", summary, true))
}

// ListStudents handles the GET /students endpoint
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.catalog.ListStudents(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error listing students", err, nil)
		return
	}

	resp := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		resp = append(resp, dto.NewStudentResponse(&students[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStudent handles the PUT /student/:id endpoint
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := studentIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	student, err := h.catalog.UpdateStudent(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, h.logger, "Error updating student", err, map[string]any{"student_id": id})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Student updated",
		"student": dto.NewStudentResponse(student),
	})
}

// DeleteStudent handles the DELETE /student/:id endpoint
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := studentIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteStudent(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "Error deleting student", err, map[string]any{"student_id": id})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted"})
}

func bindStudents(c *gin.Context) ([]usecase.StudentInput, bool) {
	var req []dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return nil, false
	}

	rows := make([]usecase.StudentInput, 0, len(req))
	for _, r := range req {
		rows = append(rows, r.ToInput())
	}
	return rows, true
}

// studentIDParam parses a positive student id from the named path parameter
func studentIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  errs.ErrorCode(errs.ErrInvalidStudentID),
			Error: "Invalid student ID format",
		})
		return 0, false
	}
	return id, true
}
