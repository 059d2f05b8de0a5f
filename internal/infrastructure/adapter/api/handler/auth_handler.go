package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// AuthHandler logs operators in and out
type AuthHandler struct {
	authenticator coreport.Authenticator
	sessions      *auth.SessionManager
	logger        coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authenticator coreport.Authenticator, sessions *auth.SessionManager, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		sessions:      sessions,
		logger:        logger,
	}
}

// Login handles the POST /login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	principal, err := h.authenticator.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, "Login failed", err, map[string]any{"username": req.Username})
		return
	}

	if err := h.sessions.Login(c.Writer, c.Request, principal); err != nil {
		respondError(c, h.logger, "Failed to save session", errs.ErrInternalServer, map[string]any{"cause": err.Error()})
		return
	}

	h.logger.Info("Operator logged in", map[string]any{"username": principal.Username})
	c.JSON(http.StatusOK, dto.LoginResponse{Message: "Logged in", Username: principal.Username})
}

// Logout handles the POST /logout endpoint
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Writer, c.Request); err != nil {
		respondError(c, h.logger, "Failed to clear session", errs.ErrInternalServer, map[string]any{"cause": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}
