package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/healthapp/healthtrack/internal/auth/domain"
	authService "github.com/healthapp/healthtrack/internal/auth/service"
	"github.com/healthapp/healthtrack/internal/httputil"
	"github.com/healthapp/healthtrack/internal/metrics"
)

// AuthenticationMiddleware verifies the Bearer token on protected routes.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Verifies signature, issuer, audience, expiry, and subject via TokenService.Verify
// 3. Stores the resulting identity in the request context
// 4. Allows downstream handlers to access the identity via GetIdentity()
//
// Every rejection is reported to the caller as 401 Unauthorized. The internal
// reason is kept distinguishable for logs and metrics only.
//
// Usage:
//
//	protected := router.Group("/api", AuthenticationMiddleware(tokenService, businessMetrics, logger))
//	protected.GET("/users/profile", func(c *gin.Context) {
//	    identity, ok := GetIdentity(c.Request.Context())
//	    ...
//	})
func AuthenticationMiddleware(
	tokenService authService.TokenService,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err == nil {
			var identity *authDomain.Identity
			identity, err = tokenService.Verify(token)
			if err == nil {
				ctx := WithIdentity(c.Request.Context(), identity)
				c.Request = c.Request.WithContext(ctx)
				c.Next()
				return
			}
		}

		kind := authDomain.RejectionKind(err)
		logger.Debug("authentication failed",
			slog.String("rejection", kind),
			slog.String("error", err.Error()))
		if businessMetrics != nil {
			businessMetrics.RecordOperation(c.Request.Context(), "auth", "token_verify", kind)
		}

		httputil.HandleErrorGin(c, err, logger)
		c.Abort()
	}
}

// extractBearerToken parses an Authorization header value of the form
// "Bearer <token>" with a case-insensitive scheme.
func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", authDomain.ErrMissingCredential
	}

	const bearerPrefix = "bearer "
	if len(header) <= len(bearerPrefix) ||
		!strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", authDomain.ErrMissingCredential
	}

	token := header[len(bearerPrefix):]
	if strings.TrimSpace(token) == "" {
		return "", authDomain.ErrMissingCredential
	}

	return token, nil
}
