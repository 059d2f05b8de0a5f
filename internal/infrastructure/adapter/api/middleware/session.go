package middleware

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key holding the logged-in operator
const PrincipalKey = "principal"

// RequireSession rejects requests without a valid operator session
func RequireSession(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := sessions.Current(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Error: "Login required",
			})
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}
