package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rohit/delimfmt/internal/api/handlers"
	"github.com/rohit/delimfmt/internal/api/middleware"
	"github.com/rohit/delimfmt/internal/config"
	"github.com/rohit/delimfmt/internal/metrics"
	"github.com/rs/zerolog"
)

const metricsPath = "/metrics"

// Router holds all dependencies for the API router
type Router struct {
	engine           *gin.Engine
	logger           zerolog.Logger
	cfg              *config.Config
	metricsCollector *metrics.Collector
}

// NewRouter creates a new API router
func NewRouter(
	processor handlers.FileProcessor,
	metricsCollector *metrics.Collector,
	logger zerolog.Logger,
	cfg *config.Config,
) *Router {
	// Set gin mode
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Global middleware
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(logger))

	if metricsCollector != nil {
		engine.Use(middleware.Metrics(metricsCollector, metricsPath))
	}

	// Create handlers
	healthHandler := handlers.NewHealthHandler(cfg.Process.OutputDir)
	runHandler := handlers.NewRunHandler(processor, logger, cfg.Process.InputRoot)

	// Health routes (no version prefix)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/ready", healthHandler.Ready)
	engine.GET("/live", healthHandler.Live)

	// Metrics endpoint
	if cfg.Prometheus.Enabled && metricsCollector != nil {
		engine.GET(metricsPath, gin.WrapH(promhttp.HandlerFor(metricsCollector.Registry(), promhttp.HandlerOpts{})))
	}

	// API v1 routes
	v1 := engine.Group("/v1")
	{
		v1.POST("/runs", runHandler.CreateRun)
	}

	return &Router{
		engine:           engine,
		logger:           logger,
		cfg:              cfg,
		metricsCollector: metricsCollector,
	}
}

// Engine returns the gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
