package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/carpentries/mailflow/config"
	"github.com/carpentries/mailflow/pkg/database"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/logger"
	"github.com/carpentries/mailflow/pkg/mailer"
	"github.com/carpentries/mailflow/pkg/metrics"
	"github.com/carpentries/mailflow/pkg/templateengine"
	"github.com/carpentries/mailflow/pkg/worker"
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

	// Core services
	engine := templateengine.NewGoTemplateEngine()
	ctrl := emails.NewController(db.Ent, engine, emails.Options{
		Logger:                appLog,
		MaxFailedAttempts:     cfg.MaxFailedAttempts,
		FailedLogWindowFactor: cfg.FailedLogWindowFactor,
		RowLocking:            cfg.DBDriver == "postgres",
	})
	mailService := mailer.NewService(cfg.SendGridAPIKey, appLog)
	prometheusMetrics := metrics.New()

	// Initialize worker
	w := worker.New(ctrl, mailService, worker.Options{
		PollSchedule:    cfg.WorkerPollSchedule,
		SendsPerMinute:  cfg.WorkerSendsPerMinute,
		MaxSendRetries:  cfg.WorkerMaxSendRetries,
		ClaimBatchLimit: cfg.WorkerClaimBatchLimit,
		DefaultFrom:     cfg.EmailFrom,
		Metrics:         prometheusMetrics,
		Logger:          appLog,
	})
	if err := w.Setup(); err != nil {
		log.Fatalf("❌ Failed to setup worker: %v", err)
	}
	w.Start()
	log.Printf("🚀 Mailflow worker started (schedule: %s)", cfg.WorkerPollSchedule)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down worker...")
	w.Stop()
	log.Println("✅ Worker gracefully stopped")
}
