// Package main provides the chatbot server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/carebridge-sg/carebot-go/internal/buildinfo"
	"github.com/carebridge-sg/carebot-go/internal/config"
	"github.com/carebridge-sg/carebot-go/internal/dialog"
	"github.com/carebridge-sg/carebot-go/internal/escalate"
	"github.com/carebridge-sg/carebot-go/internal/httpapi"
	"github.com/carebridge-sg/carebot-go/internal/i18n"
	"github.com/carebridge-sg/carebot-go/internal/kb"
	"github.com/carebridge-sg/carebot-go/internal/logger"
	"github.com/carebridge-sg/carebot-go/internal/metrics"
	"github.com/carebridge-sg/carebot-go/internal/objstore"
	"github.com/carebridge-sg/carebot-go/internal/ratelimit"
	"github.com/carebridge-sg/carebot-go/internal/retrieve"
	"github.com/carebridge-sg/carebot-go/internal/sentry"
	"github.com/carebridge-sg/carebot-go/internal/session"
	"github.com/carebridge-sg/carebot-go/internal/textnorm"
)

// HTTP server timeouts. Turns are CPU bound and bodies are small, so the
// limits are tight.
const (
	httpReadTimeout  = 10 * time.Second
	httpWriteTimeout = 15 * time.Second
	httpIdleTimeout  = 60 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log.WithField("version", buildinfo.Short()).
		WithField("commit", buildinfo.Commit).
		Info("Starting CareBridge chatbot server")

	// Initialize Sentry (no-op when no DSN is configured)
	if err := sentry.Initialize(sentry.Config{
		DSN:              cfg.SentryDSN,
		Environment:      cfg.SentryEnvironment,
		Release:          cfg.SentryRelease,
		SampleRate:       cfg.SentrySampleRate,
		TracesSampleRate: cfg.SentryTracesSampleRate,
	}); err != nil {
		log.WithError(err).Fatal("Failed to initialize Sentry")
	}
	if sentry.IsEnabled() {
		log.WithField("environment", cfg.SentryEnvironment).Info("Sentry error tracking enabled")
	}

	// Load the knowledge base from the configured source
	catalog, err := loadCatalog(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to load knowledge base")
	}
	log.WithField("schemes", len(catalog.Schemes)).
		WithField("entry_points", len(catalog.EntryPoints)).
		Info("Knowledge base loaded")

	// Open the escalation ticket log
	recorder, err := escalate.NewSQLiteRecorder(cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Fatal("Failed to open ticket database")
	}
	defer func() { _ = recorder.Close() }()
	log.WithField("path", recorder.Path()).Info("Ticket database opened")

	// Create Prometheus registry
	registry := prometheus.NewRegistry()

	// Register Go and process collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	// Create metrics
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Create the text normalizer, with the dictionary segmenter when enabled
	var normOpts []textnorm.Option
	if cfg.SegmenterEnabled {
		seg, err := textnorm.NewSegmenter()
		if err != nil {
			log.WithError(err).Warn("Failed to load segmenter dictionary, falling back to per-character segmentation")
		} else {
			normOpts = append(normOpts, textnorm.WithSegmenter(seg))
			log.Info("Dictionary segmenter enabled")
		}
	}
	norm := textnorm.New(normOpts...)

	// Create the dialog engine
	engine := dialog.New(catalog, norm, dialog.Options{
		Retrieval: retrieve.Options{
			Weights: retrieve.Weights{
				Token:       cfg.RetrievalTokenWeight,
				Title:       cfg.RetrievalTitleWeight,
				DomainBoost: cfg.RetrievalDomainBoost,
				ShortBonus:  cfg.RetrievalShortBonus,
			},
			MaxResults:             cfg.RetrievalMaxResults,
			LowConfidenceThreshold: cfg.LowConfidenceThreshold(),
		},
		PageSize:        cfg.PageSize,
		DefaultLanguage: i18n.Normalize(cfg.DefaultLanguage),
		Observer:        m,
	})
	log.WithField("profile", cfg.RetrievalProfile).Info("Dialog engine created")

	// Create the session registry
	sessions := session.NewStore(cfg.SessionTTL)

	// Create the per-session rate limiter
	limiter := ratelimit.NewPerSession(ratelimit.PerSessionConfig{
		Burst:      cfg.RateLimitTokens,
		RefillRate: cfg.RateLimitRefillRate,
	})
	defer limiter.Stop()

	// Create the chat API handler
	apiHandler := httpapi.NewHandler(httpapi.Config{
		Engine:   engine,
		Sessions: sessions,
		Recorder: recorder,
		Limiter:  limiter,
		Metrics:  m,
		Logger:   log,
	})

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(metricsMiddleware(m))
	if sentry.IsEnabled() {
		router.Use(sentryMiddleware())
	}

	// Setup routes
	setupRoutes(router, apiHandler, recorder, sessions, catalog, registry, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}

	// Start the session sweeper
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runSessionSweeper(gCtx, sessions, cfg.SessionSweepInterval, m, log)
	})

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop background goroutines
	cancel()
	if err := g.Wait(); err != nil && err != context.Canceled {
		log.WithError(err).Warn("Background goroutine exited with error")
	}

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Flush pending Sentry events
	sentry.Flush(2 * time.Second)

	// Close the ticket database
	if err := recorder.Close(); err != nil {
		log.WithError(err).Error("Failed to close ticket database")
	}

	log.Info("Server stopped")
}

// loadCatalog resolves the knowledge-base source in priority order: object
// store, local file, embedded seed.
func loadCatalog(ctx context.Context, cfg *config.Config, log *logger.Logger) (*kb.Catalog, error) {
	switch {
	case cfg.ObjStoreEnabled:
		store, err := objstore.New(ctx, objstore.Config{
			Endpoint:    cfg.ObjStoreEndpoint,
			AccessKeyID: cfg.ObjStoreAccessKey,
			SecretKey:   cfg.ObjStoreSecretKey,
			BucketName:  cfg.ObjStoreBucket,
		})
		if err != nil {
			return nil, err
		}
		log.WithField("bucket", cfg.ObjStoreBucket).
			WithField("key", cfg.ObjStoreKBKey).
			Info("Fetching knowledge base from object store")
		data, err := store.Fetch(ctx, cfg.ObjStoreKBKey)
		if err != nil {
			return nil, err
		}
		return kb.Parse(data)

	case cfg.KBPath != "":
		log.WithField("path", cfg.KBPath).Info("Loading knowledge base from file")
		return kb.LoadFile(cfg.KBPath)

	default:
		log.Info("Loading embedded knowledge base")
		return kb.LoadEmbedded()
	}
}
