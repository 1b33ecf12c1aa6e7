package main

// @title Mailflow API
// @version 1.0
// @description Email scheduling service for workshop administration. Templates, scheduled emails and their audit history.

// @contact.name The Carpentries
// @contact.url https://carpentries.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the worker API token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/carpentries/mailflow/config"
	_ "github.com/carpentries/mailflow/docs" // Swagger docs (generated)
	"github.com/carpentries/mailflow/pkg/api"
	"github.com/carpentries/mailflow/pkg/api/handlers"
	"github.com/carpentries/mailflow/pkg/attachments"
	"github.com/carpentries/mailflow/pkg/cache"
	"github.com/carpentries/mailflow/pkg/database"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/emails/actions"
	"github.com/carpentries/mailflow/pkg/flags"
	"github.com/carpentries/mailflow/pkg/logger"
	"github.com/carpentries/mailflow/pkg/metrics"
	custommiddleware "github.com/carpentries/mailflow/pkg/middleware"
	"github.com/carpentries/mailflow/pkg/templateengine"
	"github.com/carpentries/mailflow/pkg/templates"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLog := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database with SSL configuration
	sslCfg := &database.SSLConfig{
		Mode:         cfg.DBSSLMode,
		CertPath:     cfg.DBSSLCertPath,
		KeyPath:      cfg.DBSSLKeyPath,
		RootCertPath: cfg.DBSSLRootCertPath,
	}
	db, err := database.NewClientWithSSL(cfg.DatabaseURL, sslCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Attachment storage (optional)
	var storage attachments.Storage
	if cfg.AttachmentsBucket != "" {
		s3Storage, err := attachments.NewS3Storage(context.Background(), attachments.Config{
			AWSAccessKeyID:     cfg.AWSAccessKeyID,
			AWSSecretAccessKey: cfg.AWSSecretAccessKey,
			AWSRegion:          cfg.AWSRegion,
		})
		if err != nil {
			log.Fatalf("❌ Failed to initialize S3 storage: %v", err)
		}
		storage = s3Storage
		log.Printf("✅ Attachment storage initialized (bucket: %s)", cfg.AttachmentsBucket)
	} else {
		log.Printf("ℹ️  Attachment storage disabled (no bucket configured)")
	}

	// Core services
	engine := templateengine.NewGoTemplateEngine()
	ctrl := emails.NewController(db.Ent, engine, emails.Options{
		Storage:               storage,
		Bucket:                cfg.AttachmentsBucket,
		Logger:                appLog,
		MaxFailedAttempts:     cfg.MaxFailedAttempts,
		FailedLogWindowFactor: cfg.FailedLogWindowFactor,
		RowLocking:            cfg.DBDriver == "postgres",
	})
	templateService := templates.NewService(db.Ent, engine, appLog)
	featureFlags := flags.New(cfg.EmailModuleEnabled, redisClient, appLog)
	runner := actions.NewRunner(ctrl, featureFlags, prometheusMetrics, appLog)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	// Initialize rate limiter
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))

	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting (default 60 req/min)
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "Mailflow API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(ctx).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Initialize handlers
	templateHandler := handlers.NewTemplateHandler(templateService)
	emailHandler := handlers.NewScheduledEmailHandler(ctrl, prometheusMetrics)
	attachmentHandler := handlers.NewAttachmentHandler(ctrl)
	signalHandler := handlers.NewSignalHandler(runner)

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Email template routes
	templatesGroup := v1.Group("/email-templates")
	{
		templatesGroup.POST("", templateHandler.Create)
		templatesGroup.GET("", templateHandler.List)
		templatesGroup.GET("/:id", templateHandler.Get)
		templatesGroup.PATCH("/:id", templateHandler.Update)
		templatesGroup.DELETE("/:id", templateHandler.Delete)
	}

	// Scheduled email routes (read-only)
	emailsGroup := v1.Group("/scheduled-emails")
	{
		emailsGroup.GET("", emailHandler.List)
		emailsGroup.GET("/due", emailHandler.Due)
		emailsGroup.GET("/duplicates", emailHandler.Duplicates)
		emailsGroup.GET("/:id", emailHandler.Get)
		emailsGroup.GET("/:id/logs", emailHandler.Logs)
		emailsGroup.GET("/:id/attachments", attachmentHandler.List)
	}

	// State transitions and attachments require the worker token. An empty
	// configured token rejects everything, so a misconfigured deployment
	// fails closed rather than exposing the mutating surface.
	workerGroup := v1.Group("/scheduled-emails")
	workerGroup.Use(custommiddleware.RequireToken(cfg.WorkerAPIToken))
	{
		workerGroup.POST("/:id/lock", emailHandler.Lock)
		workerGroup.POST("/:id/succeed", emailHandler.Succeed)
		workerGroup.POST("/:id/fail", emailHandler.Fail)
		workerGroup.POST("/:id/cancel", emailHandler.Cancel)
		workerGroup.POST("/:id/reschedule", emailHandler.Reschedule)
		workerGroup.POST("/:id/attachments", attachmentHandler.Upload)
	}

	attachmentsGroup := v1.Group("/attachments")
	attachmentsGroup.Use(custommiddleware.RequireToken(cfg.WorkerAPIToken))
	{
		attachmentsGroup.POST("/:id/presigned-url", attachmentHandler.Presign)
	}

	// Strategy evaluation. The CRM hits the evaluate endpoint after every
	// mutation that can affect a signal; it schedules, updates or cancels
	// the matching email.
	signalsGroup := v1.Group("/signals")
	signalsGroup.GET("", signalHandler.List)
	signalsGroup.POST("/:signal/evaluate", signalHandler.Evaluate,
		custommiddleware.RequireToken(cfg.WorkerAPIToken))

	// Publish the connection pool size every 30s
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			prometheusMetrics.UpdateDBConnections(float64(db.Stats().OpenConnections))
		}
	}()

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Mailflow API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("📬 Email module enabled: %t (max failed attempts: %d)", cfg.EmailModuleEnabled, cfg.MaxFailedAttempts)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
