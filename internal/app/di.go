// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.opentelemetry.io/otel/metric"

	authHTTP "github.com/healthapp/healthtrack/internal/auth/http"
	authService "github.com/healthapp/healthtrack/internal/auth/service"
	authUsecase "github.com/healthapp/healthtrack/internal/auth/usecase"
	"github.com/healthapp/healthtrack/internal/config"
	"github.com/healthapp/healthtrack/internal/database"
	"github.com/healthapp/healthtrack/internal/http"
	"github.com/healthapp/healthtrack/internal/metrics"
	reportHTTP "github.com/healthapp/healthtrack/internal/report/http"
	reportRepository "github.com/healthapp/healthtrack/internal/report/repository"
	reportUsecase "github.com/healthapp/healthtrack/internal/report/usecase"
	userHTTP "github.com/healthapp/healthtrack/internal/user/http"
	userRepository "github.com/healthapp/healthtrack/internal/user/repository"
	userUsecase "github.com/healthapp/healthtrack/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Managers
	txManager database.TxManager

	// Repositories
	userRepo        userUsecase.UserRepository
	dailyReportRepo reportUsecase.DailyReportRepository
	sportReportRepo reportUsecase.SportReportRepository

	// Services
	tokenService    authService.TokenService
	passwordService authService.PasswordService

	// Use Cases
	authUseCase   authUsecase.AuthUseCase
	userUseCase   userUsecase.UseCase
	reportUseCase reportUsecase.UseCase

	// Metrics
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	userRepoInit        sync.Once
	dailyReportRepoInit sync.Once
	sportReportRepoInit sync.Once
	tokenServiceInit    sync.Once
	passwordServiceInit sync.Once
	authUseCaseInit     sync.Once
	userUseCaseInit     sync.Once
	reportUseCaseInit   sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		txManager, err := c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
			return
		}
		c.txManager = txManager
	})
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		repo, err := c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
			return
		}
		c.userRepo = repo
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// DailyReportRepository returns the daily report repository instance.
func (c *Container) DailyReportRepository() (reportUsecase.DailyReportRepository, error) {
	c.dailyReportRepoInit.Do(func() {
		repo, err := c.initDailyReportRepository()
		if err != nil {
			c.initErrors["dailyReportRepo"] = err
			return
		}
		c.dailyReportRepo = repo
	})
	if storedErr, exists := c.initErrors["dailyReportRepo"]; exists {
		return nil, storedErr
	}
	return c.dailyReportRepo, nil
}

// SportReportRepository returns the sport report repository instance.
func (c *Container) SportReportRepository() (reportUsecase.SportReportRepository, error) {
	c.sportReportRepoInit.Do(func() {
		repo, err := c.initSportReportRepository()
		if err != nil {
			c.initErrors["sportReportRepo"] = err
			return
		}
		c.sportReportRepo = repo
	})
	if storedErr, exists := c.initErrors["sportReportRepo"]; exists {
		return nil, storedErr
	}
	return c.sportReportRepo, nil
}

// TokenService returns the token service used to issue and verify access tokens.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		if c.config.JWTSigningSecret == "" {
			c.initErrors["tokenService"] = fmt.Errorf("JWT_SIGNING_SECRET is required")
			return
		}
		c.tokenService = authService.NewTokenService(
			c.config.JWTSigningSecret,
			c.config.JWTIssuer,
			c.config.JWTAudience,
			c.config.JWTExpiry,
		)
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// AuthUseCase returns the authentication use case instance.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	c.authUseCaseInit.Do(func() {
		useCase, err := c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		c.authUseCase = useCase
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	c.userUseCaseInit.Do(func() {
		useCase, err := c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		c.userUseCase = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// ReportUseCase returns the report use case instance.
func (c *Container) ReportUseCase() (reportUsecase.UseCase, error) {
	c.reportUseCaseInit.Do(func() {
		useCase, err := c.initReportUseCase()
		if err != nil {
			c.initErrors["reportUseCase"] = err
			return
		}
		c.reportUseCase = useCase
	})
	if storedErr, exists := c.initErrors["reportUseCase"]; exists {
		return nil, storedErr
	}
	return c.reportUseCase, nil
}

// MetricsProvider returns the metrics provider instance.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// Returns nil without error when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			return
		}
		businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		c.businessMetrics = businessMetrics
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics HTTP server instance.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown HTTP server if initialized
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	// Shutdown metrics server if initialized
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Flush pending metrics if the provider was initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Close database connection if initialized
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initUserRepository creates the user repository instance.
func (c *Container) initUserRepository() (userUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initDailyReportRepository creates the daily report repository instance.
func (c *Container) initDailyReportRepository() (reportUsecase.DailyReportRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for daily report repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return reportRepository.NewMySQLDailyReportRepository(db), nil
	case "postgres":
		return reportRepository.NewPostgreSQLDailyReportRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSportReportRepository creates the sport report repository instance.
func (c *Container) initSportReportRepository() (reportUsecase.SportReportRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for sport report repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return reportRepository.NewMySQLSportReportRepository(db), nil
	case "postgres":
		return reportRepository.NewPostgreSQLSportReportRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUsecase.AuthUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	return authUsecase.NewAuthUseCase(userRepo, tokenService, c.PasswordService()), nil
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	return userUsecase.NewUserUseCase(txManager, userRepo, c.PasswordService()), nil
}

// initReportUseCase creates the report use case with all its dependencies.
func (c *Container) initReportUseCase() (reportUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for report use case: %w", err)
	}

	dailyRepo, err := c.DailyReportRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get daily report repository for report use case: %w", err)
	}

	sportRepo, err := c.SportReportRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get sport report repository for report use case: %w", err)
	}

	return reportUsecase.NewReportUseCase(txManager, dailyRepo, sportRepo), nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for http server: %w", err)
	}

	authUseCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for http server: %w", err)
	}

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}

	reportUseCase, err := c.ReportUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get report use case for http server: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	var meterProvider metric.MeterProvider
	if provider != nil {
		meterProvider = provider.MeterProvider()
	}

	loginHandler := authHTTP.NewLoginHandler(authUseCase, businessMetrics, logger)
	userHandler := userHTTP.NewUserHandler(userUseCase, logger)
	reportHandler := reportHTTP.NewReportHandler(reportUseCase, logger)

	server := http.NewServer(
		c.config,
		db,
		logger,
		tokenService,
		businessMetrics,
		meterProvider,
		loginHandler,
		userHandler,
		reportHandler,
	)

	return server, nil
}
