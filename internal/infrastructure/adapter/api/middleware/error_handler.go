package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	domainerr "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(log coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered in API request", map[string]any{
					"error":      fmt.Sprint(err),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": logger.RequestIDFromContext(c.Request.Context()),
					"user_agent": c.Request.UserAgent(),
					"stack":      string(debug.Stack()),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:  domainerr.ErrorCode(domainerr.ErrInternalServer),
					Error: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
