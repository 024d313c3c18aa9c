package server

import (
	"time"

	"mailpilot/internal/analytics"
	"mailpilot/internal/analyzer"
	"mailpilot/internal/config"
	"mailpilot/internal/email"
	"mailpilot/internal/handlers"
	"mailpilot/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo     *echo.Echo
	config   *config.Config
	logger   zerolog.Logger
	pipeline *analyzer.Analyzer
	calendar *store.CalendarStore
	replies  *email.ReplyService
	tracker  *analytics.Service
}

// New creates a new server instance
func New(cfg *config.Config, pipeline *analyzer.Analyzer, calendar *store.CalendarStore, logger zerolog.Logger) *Server {
	return &Server{
		config:   cfg,
		logger:   logger,
		pipeline: pipeline,
		calendar: calendar,
		replies:  email.NewReplyService(cfg.SendGridAPIKey, cfg.ReplyFromEmail),
		tracker:  analytics.NewService(),
	}
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	// Middleware
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	// Hide Echo banner
	s.echo.HideBanner = true

	// Setup routes
	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	// API group with /api prefix
	api := s.echo.Group("/api")

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoints (keep at root level for monitoring)
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version))
	s.echo.GET("/healthz/store", handlers.StoreHealthHandler(s.calendar))

	// API endpoints under /api prefix
	api.GET("/", handlers.RootHandler(s.config.Version))
	api.POST("/analyze", handlers.AnalyzeHandler(s.pipeline, s.calendar, s.tracker))
	api.GET("/calendar", handlers.CalendarHandler(s.calendar))
	api.GET("/calendar.ics", handlers.CalendarExportHandler(s.calendar))
	api.POST("/reply", handlers.ReplyHandler(analyzer.NewReplyTable(s.config.TagVocabulary), s.replies))
	api.GET("/analytics", handlers.AnalyticsHandler(s.tracker))

	// Serve static files (this should be last to avoid conflicts)
	s.echo.Static("/", "static")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
