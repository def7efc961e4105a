package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/zarinpos/core/docs"
	httpHandlers "github.com/zarinpos/core/internal/adapters/http"
	"github.com/zarinpos/core/internal/adapters/repository"
	"github.com/zarinpos/core/internal/application/services"
	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/infrastructure/cache"
	"github.com/zarinpos/core/internal/infrastructure/config"
	"github.com/zarinpos/core/internal/infrastructure/database"
	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/infrastructure/metrics"
	"github.com/zarinpos/core/internal/ports"
)

// Server represents the HTTP server
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	logger  *logger.Logger
	db      *database.DB
	cache   *cache.Cache
	metrics *metrics.Collector
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance
func New(cfg *config.Config, db *database.DB, cacheClient *cache.Cache, appLogger *logger.Logger) (*Server, error) {
	e := echo.New()

	// Set custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	// Custom error handler
	e.HTTPErrorHandler = customErrorHandler(appLogger)

	// Metrics collector; services tolerate a nil collector when metrics are off
	var collector *metrics.Collector
	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(prometheus.NewGoCollector())
		registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
		collector = metrics.NewCollector("zarinpos", registry)
	}

	// Initialize repositories
	terminalRepo := repository.NewTerminalRepository(db.DB, collector)
	holidayRepo := repository.NewHolidayRepository(db.DB, collector)
	rateRepo := repository.NewRateRepository(db.DB, collector)

	// Initialize services
	clock := services.NewSystemClock(cfg.Calendar, appLogger)
	authService := services.NewAuthService(terminalRepo, cfg.JWT, appLogger, collector)
	holidayService := services.NewHolidayService(holidayRepo, cacheClient, appLogger, collector)
	rateService := services.NewRateService(rateRepo, clock, cacheClient, appLogger, collector)
	calendarService := services.NewCalendarService(clock, holidayService, appLogger, collector)
	pricingService := services.NewPricingService(rateService, cfg.Pricing, appLogger, collector)
	formatService := services.NewFormatService(appLogger)

	// Initialize handlers
	authHandler := httpHandlers.NewAuthHandler(authService, appLogger)
	calendarHandler := httpHandlers.NewCalendarHandler(calendarService, appLogger)
	holidayHandler := httpHandlers.NewHolidayHandler(holidayService, appLogger)
	rateHandler := httpHandlers.NewRateHandler(rateService, appLogger)
	pricingHandler := httpHandlers.NewPricingHandler(pricingService, appLogger)
	formatHandler := httpHandlers.NewFormatHandler(formatService, appLogger)

	server := &Server{
		echo:    e,
		config:  cfg,
		logger:  appLogger,
		db:      db,
		cache:   cacheClient,
		metrics: collector,
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup routes
	server.setupRoutes(authHandler, calendarHandler, holidayHandler, rateHandler, pricingHandler, formatHandler, authService)

	// Setup metrics
	if cfg.Metrics.Enabled {
		server.setupMetrics(registry)
	}

	return server, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Logger middleware
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency_ms", float64(values.Latency.Nanoseconds()) / 1000000,
				"remote_ip", values.RemoteIP,
				"user_agent", values.UserAgent,
			}

			if values.Error != nil {
				fields = append(fields, "error", values.Error.Error())
				s.logger.Errorw("HTTP request failed", fields...)
			} else {
				s.logger.Infow("HTTP request", fields...)
			}

			return nil
		},
	}))

	// CORS middleware
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(s.config.Security.CORSAllowedOrigins, ","),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
	}))

	// Rate limiting middleware
	s.echo.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(s.config.Security.RateLimitRequests), Burst: s.config.Security.RateLimitRequests, ExpiresIn: s.config.Security.RateLimitWindow},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			id := ctx.RealIP()
			return id, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(http.StatusForbidden, map[string]string{"message": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(http.StatusTooManyRequests, map[string]string{"message": "rate limit exceeded"})
		},
	}))

	// Security headers
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
	}))

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Timeout middleware
	s.echo.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: 30 * time.Second,
	}))

	// Gzip compression
	s.echo.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(
	authHandler *httpHandlers.AuthHandler,
	calendarHandler *httpHandlers.CalendarHandler,
	holidayHandler *httpHandlers.HolidayHandler,
	rateHandler *httpHandlers.RateHandler,
	pricingHandler *httpHandlers.PricingHandler,
	formatHandler *httpHandlers.FormatHandler,
	authService ports.AuthService,
) {
	// Health check routes
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	// Swagger documentation
	s.echo.GET("/docs/*", echoSwagger.WrapHandler)

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	// Auth routes (public)
	authGroup := v1.Group("/auth")
	authGroup.POST("/token", authHandler.IssueToken)

	// Calendar routes (authenticated)
	calendarGroup := v1.Group("/calendar", s.authMiddleware(authService))
	calendarGroup.GET("/today", calendarHandler.Today)
	calendarGroup.POST("/to-jalali", calendarHandler.ToJalali)
	calendarGroup.POST("/to-gregorian", calendarHandler.ToGregorian)
	calendarGroup.POST("/validate", calendarHandler.Validate)
	calendarGroup.GET("/months", calendarHandler.Months)
	calendarGroup.GET("/weekdays", calendarHandler.Weekdays)
	calendarGroup.GET("/ranges", calendarHandler.ListRanges)
	calendarGroup.GET("/ranges/:key", calendarHandler.ResolveRange)
	calendarGroup.POST("/business-days", calendarHandler.BusinessDays)

	// Formatting routes (authenticated)
	formatGroup := v1.Group("/format", s.authMiddleware(authService))
	formatGroup.POST("/number", formatHandler.FormatNumber)
	formatGroup.POST("/currency", formatHandler.FormatCurrency)

	// Weight routes (authenticated)
	weightGroup := v1.Group("/weights", s.authMiddleware(authService))
	weightGroup.GET("/units", formatHandler.ListUnits)
	weightGroup.POST("/convert", formatHandler.ConvertWeight)

	// Holiday routes (authenticated, mutations admin only)
	holidayGroup := v1.Group("/holidays", s.authMiddleware(authService))
	holidayGroup.GET("/:year", holidayHandler.ListYear)
	holidayGroup.GET("/:year/:month", holidayHandler.ListMonth)
	holidayGroup.POST("", holidayHandler.CreateHoliday, s.requireAdmin())
	holidayGroup.DELETE("/:id", holidayHandler.DeleteHoliday, s.requireAdmin())

	// Gold rate routes (authenticated, mutations admin only)
	rateGroup := v1.Group("/rates", s.authMiddleware(authService))
	rateGroup.GET("/latest", rateHandler.Latest)
	rateGroup.GET("/:year/:month", rateHandler.ListMonth)
	rateGroup.GET("/:year/:month/:day", rateHandler.GetByDay)
	rateGroup.PUT("", rateHandler.SetRate, s.requireAdmin())
	rateGroup.DELETE("/:id", rateHandler.DeleteRate, s.requireAdmin())

	// Pricing routes (authenticated)
	pricingGroup := v1.Group("/pricing", s.authMiddleware(authService))
	pricingGroup.POST("/quote", pricingHandler.Quote)

	// Terminal management routes (admin only)
	terminalGroup := v1.Group("/terminals", s.authMiddleware(authService), s.requireAdmin())
	terminalGroup.POST("", authHandler.CreateTerminal)
	terminalGroup.GET("", authHandler.ListTerminals)
	terminalGroup.DELETE("/:id", authHandler.RevokeTerminal)
}

// setupMetrics configures Prometheus metrics
func (s *Server) setupMetrics(registry *prometheus.Registry) {
	// Request metrics middleware
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			status := c.Response().Status

			s.metrics.RecordHTTPRequest(c.Path(), c.Request().Method, fmt.Sprintf("%d", status))
			s.metrics.ObserveHTTPDuration(c.Path(), duration.Seconds())

			return err
		}
	})

	// Metrics endpoint
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler))
}

// authMiddleware validates terminal JWT tokens
func (s *Server) authMiddleware(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			token := parts[1]

			// Validate token
			claims, err := authService.ValidateToken(token)
			if err != nil {
				s.logger.Warnw("Invalid token", "error", err, "ip", c.RealIP())
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			// Set terminal claims in context
			c.Set(httpHandlers.ClaimsContextKey, claims)

			return next(c)
		}
	}
}

// requireAdmin middleware checks that the terminal has the admin role
func (s *Server) requireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(httpHandlers.ClaimsContextKey).(*ports.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Role information not found")
			}

			if claims.Role != entities.TerminalRoleAdmin {
				s.logger.LogSecurityEvent("insufficient_permissions",
					claims.TerminalID.String(),
					c.RealIP(),
					map[string]interface{}{
						"terminal_role": string(claims.Role),
						"endpoint":      c.Request().URL.Path,
					})

				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}

			return next(c)
		}
	}
}

// Health check handlers
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) detailedHealthCheck(c echo.Context) error {
	status := "ok"
	checks := make(map[string]interface{})

	// Database health check
	if err := s.db.HealthCheck(); err != nil {
		status = "error"
		checks["database"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		checks["database"] = map[string]interface{}{
			"status": "ok",
			"stats":  s.db.GetConnectionInfo(),
		}
	}

	// Redis health check, skipped when caching is disabled
	if s.cache != nil {
		if err := s.cache.Ping(); err != nil {
			status = "error"
			checks["redis"] = map[string]interface{}{
				"status": "error",
				"error":  err.Error(),
			}
		} else {
			checks["redis"] = map[string]interface{}{
				"status": "ok",
				"stats":  s.cache.GetConnectionInfo(),
			}
		}
	}

	response := map[string]interface{}{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
		"version": map[string]string{
			"app": s.config.App.Version,
			"go":  "1.21",
		},
	}

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

func (s *Server) readinessCheck(c echo.Context) error {
	// Check if server is ready to accept requests
	if err := s.db.Ping(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "database_not_ready",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.Infow("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infow("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// customErrorHandler handles HTTP errors
func customErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code = http.StatusInternalServerError
			msg  interface{}
		)

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			msg = he.Message
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		} else {
			msg = "Internal server error"
		}

		if code >= http.StatusInternalServerError {
			logger.Errorw("HTTP error",
				"error", err,
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", code,
				"ip", c.RealIP(),
			)
		}

		// Send response
		if !c.Response().Committed {
			if c.Request().Method == echo.HEAD {
				err = c.NoContent(code)
			} else {
				response := map[string]interface{}{
					"error": msg,
					"code":  code,
				}

				if reqID := c.Response().Header().Get(echo.HeaderXRequestID); reqID != "" {
					response["request_id"] = reqID
				}

				err = c.JSON(code, response)
			}
			if err != nil {
				logger.Errorw("Error sending response", "error", err)
			}
		}
	}
}
