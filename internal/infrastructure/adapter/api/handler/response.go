package handler

import (
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// publicErrors are the sentinels whose text is safe to show to clients, most specific first
var publicErrors = []error{
	errs.ErrAlreadyCheckedOut,
	errs.ErrBookOnLoan,
	errs.ErrInvalidReference,
	errs.ErrNoOpenLoan,
	errs.ErrLoanConflict,
	errs.ErrDuplicateBarcode,
	errs.ErrStudentNotFound,
	errs.ErrBookNotFound,
	errs.ErrInvalidStudentID,
	errs.ErrInvalidStudent,
	errs.ErrInvalidBook,
	errs.ErrInvalidBarcode,
	errs.ErrInvalidDate,
	errs.ErrUnauthorized,
	errs.ErrConstraintViolation,
	errs.ErrInvalidRequest,
	errs.ErrNotFound,
}

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrLoanConflict), errors.Is(err, errs.ErrSerialization):
		return http.StatusConflict
	case errs.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the client-facing text for err
func publicMessage(err error) string {
	for _, known := range publicErrors {
		if errors.Is(err, known) {
			return capitalize(known.Error())
		}
	}
	if errors.Is(err, errs.ErrSerialization) {
		return capitalize(errs.ErrLoanConflict.Error())
	}
	return "Internal server error"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// respondError logs err and writes the standard error body
func respondError(c *gin.Context, log coreport.Logger, message string, err error, fields map[string]any) {
	status := StatusCode(err)

	if fields == nil {
		fields = make(map[string]any)
	}
	fields["error"] = err.Error()
	fields["status"] = status
	fields["path"] = c.FullPath()
	if id := logger.RequestIDFromContext(c.Request.Context()); id != "" {
		fields["request_id"] = id
	}

	if status >= http.StatusInternalServerError {
		log.Error(message, fields)
	} else {
		log.Warn(message, fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:  errs.ErrorCode(err),
		Error: publicMessage(err),
	})
}

// badRequest writes a 400 for a malformed body or parameter
func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:  errs.ErrorCode(errs.ErrInvalidRequest),
		Error: strings.TrimSpace("Invalid request format: " + detail),
	})
}
