package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/diskwise/backend/internal/api/http"
	"github.com/diskwise/backend/internal/api/middleware"
	"github.com/diskwise/backend/internal/api/ws"
	"github.com/diskwise/backend/internal/infrastructure/config"
	"github.com/diskwise/backend/internal/infrastructure/logging"
	"github.com/diskwise/backend/internal/infrastructure/monitoring"
	filesystemProvider "github.com/diskwise/backend/internal/providers/filesystem"
	notificationsProvider "github.com/diskwise/backend/internal/providers/notifications"
	safetyProvider "github.com/diskwise/backend/internal/providers/safety"
	settingsProvider "github.com/diskwise/backend/internal/providers/settings"
	systemProvider "github.com/diskwise/backend/internal/providers/system"
	"github.com/diskwise/backend/internal/safety"
	"github.com/diskwise/backend/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	hub      *ws.Hub
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing DiskWise backend",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.String("platform", string(safety.CurrentPlatform())),
	)

	metrics := monitoring.NewMetrics()

	classifier := safety.New()
	serviceRegistry := service.NewRegistry()
	hub := ws.NewHub(serviceRegistry, logger, metrics)

	registerProviders(serviceRegistry, classifier, hub, cfg, logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
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

	handlers := http.NewHandlers(serviceRegistry, classifier, hub, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	router.POST("/safety/validate", handlers.ValidatePath)

	router.GET("/stream", hub.HandleConnection)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: serviceRegistry,
		hub:      hub,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.logger.Sync()
	return nil
}

func registerProviders(registry *service.Registry, classifier *safety.Classifier, hub *ws.Hub, cfg *config.Config, logger *logging.Logger) {
	providers := []service.Provider{
		safetyProvider.NewProvider(classifier),
		filesystemProvider.NewProvider(filesystemProvider.Config{
			MaxEntries:  cfg.Scan.MaxEntries,
			MimeSamples: cfg.Scan.MimeSamples,
		}),
		systemProvider.NewProvider(),
		notificationsProvider.NewProvider(hub),
		settingsProvider.NewProvider(cfg.SettingsPath()),
	}

	for _, p := range providers {
		def := p.Definition()
		if err := registry.Register(p); err != nil {
			logger.Warn("Failed to register provider",
				zap.String("service", def.ID),
				zap.Error(err))
			continue
		}
		logger.Info("Registered service",
			zap.String("service", def.ID),
			zap.Int("tools", len(def.Tools)))
	}

	stats := registry.Stats()
	logger.Info("Service registry ready",
		zap.Any("total_services", stats["total_services"]),
		zap.Any("total_tools", stats["total_tools"]))
}
