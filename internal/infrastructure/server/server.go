// Package server wires the scripthost backend together: logging, metrics,
// the file-list registry, provider registration, and the ops HTTP surface.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/modforge/scripthost/internal/api/http"
	"github.com/modforge/scripthost/internal/api/middleware"
	"github.com/modforge/scripthost/internal/domain/filelist"
	"github.com/modforge/scripthost/internal/domain/service"
	"github.com/modforge/scripthost/internal/infrastructure/config"
	"github.com/modforge/scripthost/internal/infrastructure/logging"
	"github.com/modforge/scripthost/internal/infrastructure/monitoring"
	filelistProvider "github.com/modforge/scripthost/internal/providers/filelist"
)

const gaugeInterval = 15 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router    *gin.Engine
	http      *http.Server
	registry  *service.Registry
	filelists *filelistProvider.Provider
	logger    *logging.Logger
	config    *config.Config
	metrics   *monitoring.Metrics
	stopGauge chan struct{}
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing scripthost backend",
		zap.String("port", cfg.Server.Port),
		zap.Int("max_path_len", cfg.Filelist.MaxPathLen),
	)

	metrics := monitoring.NewMetrics()

	// Core file-list registry and its provider
	lists := filelist.NewRegistry()
	provider := filelistProvider.NewProvider(lists, cfg.Filelist.MaxPathLen)

	serviceRegistry := service.NewRegistry()
	if err := serviceRegistry.Register(provider); err != nil {
		return nil, fmt.Errorf("failed to register filelist provider: %w", err)
	}
	logger.Info("Registered service providers",
		zap.Int("count", len(serviceRegistry.List(nil))),
	)

	// Seed predefined lists if a manifest is configured
	if cfg.Filelist.SeedManifest != "" {
		seeder := filelist.NewSeeder(lists, cfg.Filelist.SeedManifest)
		if err := seeder.Seed(); err != nil {
			logger.Warn("Failed to seed file lists", zap.Error(err))
		}
	}
	stats := lists.Stats()
	metrics.SetFilelistStats(stats.TotalLists, stats.TotalEntries)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(serviceRegistry, metrics)
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.GET("/filelists", handlers.ListFilelists)
	router.GET("/filelists/:name", handlers.GetFilelist)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s := &Server{
		router:    router,
		registry:  serviceRegistry,
		filelists: provider,
		logger:    logger,
		config:    cfg,
		metrics:   metrics,
		stopGauge: make(chan struct{}),
	}
	go s.gaugeLoop()

	return s, nil
}

// Run starts the HTTP server and blocks until it exits
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%s", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Close shuts the server down and tears down the registry
func (s *Server) Close() error {
	s.logger.Info("Shutting down")
	close(s.stopGauge)

	if s.http != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Warn("HTTP shutdown error", zap.Error(err))
		}
	}

	s.filelists.Clear()
	_ = s.logger.Sync()
	return nil
}

// gaugeLoop refreshes the file-list gauges on a fixed interval
func (s *Server) gaugeLoop() {
	ticker := time.NewTicker(gaugeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := s.filelists.Stats()
			s.metrics.SetFilelistStats(stats.TotalLists, stats.TotalEntries)
		case <-s.stopGauge:
			return
		}
	}
}
