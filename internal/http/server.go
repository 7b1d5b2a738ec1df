// Package http provides the HTTP API server and request routing.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	authHTTP "github.com/healthapp/healthtrack/internal/auth/http"
	authService "github.com/healthapp/healthtrack/internal/auth/service"
	"github.com/healthapp/healthtrack/internal/config"
	"github.com/healthapp/healthtrack/internal/metrics"
	reportHTTP "github.com/healthapp/healthtrack/internal/report/http"
	userHTTP "github.com/healthapp/healthtrack/internal/user/http"
)

// Server represents the HTTP API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server with all routes registered.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	logger *slog.Logger,
	tokenService authService.TokenService,
	businessMetrics metrics.BusinessMetrics,
	meterProvider metric.MeterProvider,
	loginHandler *authHTTP.LoginHandler,
	userHandler *userHTTP.UserHandler,
	reportHandler *reportHTTP.ReportHandler,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		id, err := uuid.NewV7()
		if err != nil {
			return uuid.NewString()
		}
		return id.String()
	})))
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, cfg.MetricsNamespace))
	}

	s := &Server{
		router: router,
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Public endpoints
	public := router.Group("/api")
	public.POST("/users", userHandler.RegisterUser)

	login := public.Group("")
	if cfg.RateLimitLoginEnabled {
		login.Use(authHTTP.LoginRateLimitMiddleware(
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			logger,
		))
	}
	login.POST("/users/login", loginHandler.Login)

	// Protected endpoints require a valid bearer token
	protected := router.Group("/api")
	protected.Use(authHTTP.AuthenticationMiddleware(tokenService, businessMetrics, logger))
	{
		protected.GET("/users/profile", userHandler.GetProfile)
		protected.PUT("/users/profile", userHandler.UpdateProfile)

		protected.POST("/reports/daily", reportHandler.CreateDailyReport)
		protected.GET("/reports/daily", reportHandler.ListDailyReports)
		protected.GET("/reports/daily/:id", reportHandler.GetDailyReport)
		protected.PUT("/reports/daily/:id", reportHandler.UpdateDailyReport)
		protected.DELETE("/reports/daily/:id", reportHandler.DeleteDailyReport)

		protected.POST("/reports/sport", reportHandler.CreateSportReport)
		protected.GET("/reports/sport", reportHandler.ListSportReports)
		protected.GET("/reports/sport/:id", reportHandler.GetSportReport)
	}

	return s
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// readinessHandler reports whether the server can serve traffic, which
// requires a reachable database.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"components": gin.H{
				"database": "error",
			},
		})
		return
	}

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"components": gin.H{
				"database": "error",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"components": gin.H{
			"database": "ok",
		},
	})
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
