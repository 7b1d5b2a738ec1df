package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthapp/healthtrack/internal/auth/http/dto"
	authUseCase "github.com/healthapp/healthtrack/internal/auth/usecase"
	"github.com/healthapp/healthtrack/internal/httputil"
	"github.com/healthapp/healthtrack/internal/metrics"
)

// LoginHandler handles HTTP requests for user login.
type LoginHandler struct {
	authUseCase     authUseCase.AuthUseCase
	businessMetrics metrics.BusinessMetrics
	logger          *slog.Logger
}

// NewLoginHandler creates a new login handler with required dependencies.
func NewLoginHandler(
	uc authUseCase.AuthUseCase,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *LoginHandler {
	return &LoginHandler{
		authUseCase:     uc,
		businessMetrics: businessMetrics,
		logger:          logger,
	}
}

// Login authenticates a user and issues a signed token.
// POST /api/users/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the token, its expiry, and the user's public profile.
func (h *LoginHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	start := time.Now()
	output, err := h.authUseCase.Login(c.Request.Context(), dto.ToLoginInput(req))

	status := "success"
	if err != nil {
		status = "error"
	}
	if h.businessMetrics != nil {
		h.businessMetrics.RecordOperation(c.Request.Context(), "auth", "login", status)
		h.businessMetrics.RecordDuration(c.Request.Context(), "auth", "login", time.Since(start), status)
	}

	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user logged in",
		slog.String("user_id", output.User.ID.String()))

	c.JSON(http.StatusOK, dto.ToLoginResponse(output))
}
