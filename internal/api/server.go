// Package api exposes the computed report over HTTP.
package api

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/sales-report-backend/internal/api/handlers"
	"github.com/eshaffer321/sales-report-backend/internal/application/service"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Server is the HTTP API server.
type Server struct {
	config Config
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new API server around the report service.
func NewServer(cfg Config, svc *service.ReportService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s := &Server{
		config: cfg,
		router: router,
		logger: logger,
	}
	s.setupRoutes(svc)
	return s
}

func (s *Server) setupRoutes(svc *service.ReportService) {
	// Health check without the /api prefix, for load balancers.
	s.router.GET("/health", handlers.Health)

	reportHandler := handlers.NewReportHandler(svc, s.logger)
	apiGroup := s.router.Group("/api")
	{
		apiGroup.GET("/report", reportHandler.Get)
		apiGroup.GET("/report/csv", reportHandler.GetCSV)
	}
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server and blocks until it exits.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Info("starting API server", "addr", addr)
	return s.router.Run(addr)
}
