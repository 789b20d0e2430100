package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/craigashields/docs-feedback/config"
	"github.com/craigashields/docs-feedback/internal/handlers"
	"github.com/craigashields/docs-feedback/internal/middleware"
	"github.com/craigashields/docs-feedback/internal/services"
	"github.com/craigashields/docs-feedback/pkg/emailjs"
	"github.com/craigashields/docs-feedback/pkg/httpclient"
	"github.com/craigashields/docs-feedback/pkg/logger"
	"github.com/craigashields/docs-feedback/pkg/metrics"
	"github.com/craigashields/docs-feedback/pkg/profiling"
	"github.com/craigashields/docs-feedback/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerAPIRoutes registers the versioned API routes
func registerAPIRoutes(group *gin.RouterGroup, cfg *config.Config, feedbackHandler *handlers.FeedbackHandler) {
	group.POST("/feedback", middleware.BodySizeLimitMiddleware(cfg.Server.MaxBodyBytes), feedbackHandler.SubmitFeedback)
}

// setupRouter builds the gin engine with global middleware and all routes
func setupRouter(cfg *config.Config, feedbackHandler *handlers.FeedbackHandler, healthHandler *handlers.HealthHandler) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.CustomRecovery(handlers.RecoveryHandler))
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS is only needed when the docs site calls from another origin
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}
	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  allowedOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	// Utility endpoints (not versioned)
	api := router.Group("/api")
	api.GET("/healthcheck", healthHandler.Healthcheck)
	api.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	registerAPIRoutes(v1, cfg, feedbackHandler)

	return router
}

// newFeedbackHandler wires the feedback flow from configuration
func newFeedbackHandler(cfg *config.Config) *handlers.FeedbackHandler {
	httpClient := httpclient.NewStandardClient(cfg.EmailJS.Timeout())
	emailClient := emailjs.NewClient(cfg.EmailJS.URL, httpClient)
	feedbackService := services.NewFeedbackService(cfg.EmailJS, emailClient)
	return handlers.NewFeedbackHandler(feedbackService)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Development: !cfg.IsProduction(),
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting docs feedback API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	tracerShutdown, err := tracing.InitTracer(cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	var shuttingDown atomic.Bool
	healthHandler := handlers.NewHealthHandler(func() bool { return !shuttingDown.Load() })

	gin.SetMode(cfg.Server.GinMode)
	router := setupRouter(cfg, newFeedbackHandler(cfg), healthHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shuttingDown.Store(true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server exited")
}
