// Package main provides the GIF bot interaction server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/clipcat/discord-gifbot-go/internal/catalog"
	"github.com/clipcat/discord-gifbot-go/internal/config"
	"github.com/clipcat/discord-gifbot-go/internal/gif"
	"github.com/clipcat/discord-gifbot-go/internal/logger"
	"github.com/clipcat/discord-gifbot-go/internal/metrics"
	"github.com/clipcat/discord-gifbot-go/internal/sentry"
	"github.com/clipcat/discord-gifbot-go/internal/webhook"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)
	log.Info("Starting GIF bot interaction server")

	// Initialize Sentry (no-op without a DSN)
	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     cfg.SentryRelease,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize Sentry, error tracking disabled")
	} else if sentry.IsEnabled() {
		log.Info("Sentry error tracking enabled")
	}

	// Create Prometheus registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Create catalog client
	catalogClient := catalog.NewClient(cfg.CatalogURL, cfg.CatalogTimeout, m)
	log.WithField("url", cfg.CatalogURL).Info("Catalog client created")

	// Create the Discord REST session used for follow-up deliveries.
	// Follow-ups are addressed by app ID and interaction token, so the
	// bot token is optional here.
	sessionToken := cfg.DiscordToken
	if sessionToken != "" {
		sessionToken = "Bot " + sessionToken
	}
	session, err := discordgo.New(sessionToken)
	if err != nil {
		log.WithError(err).Error("Failed to create Discord session")
		os.Exit(1)
	}

	// Create module and webhook handlers
	gifHandler := gif.NewHandler(catalogClient, cfg.MediaBaseURL, log)
	webhookHandler := webhook.NewHandler(webhook.HandlerConfig{
		PublicKeyHex: cfg.DiscordPublicKey,
		Gif:          gifHandler,
		Sender:       session,
		Metrics:      m,
		Logger:       log,
	})
	log.Info("Webhook handler created")

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(sentryMiddleware())

	setupRoutes(router, webhookHandler, catalogClient, registry)

	// Create HTTP server with timeouts sized for interaction handling
	// (see internal/config/timeouts.go)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.WebhookHTTPRead,
		WriteTimeout: config.WebhookHTTPWrite,
		IdleTimeout:  config.WebhookHTTPIdle,
	}

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Drain in-flight follow-up deliveries
	webhookHandler.Stop()

	// Shutdown server gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Flush buffered Sentry events
	if sentry.IsEnabled() {
		_ = sentry.Flush(2 * time.Second)
	}

	log.Info("Server stopped")
}
