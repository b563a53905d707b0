// Package main provides the GIF bot interaction server entry point.
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/clipcat/discord-gifbot-go/internal/catalog"
	"github.com/clipcat/discord-gifbot-go/internal/webhook"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, webhookHandler *webhook.Handler, catalogClient *catalog.Client, registry *prometheus.Registry) {
	// Root endpoint - redirect to the project page
	rootHandler := func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "https://github.com/clipcat/discord-gifbot-go")
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Liveness Probe - only checks that the process is running
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness Probe - checks that the catalog endpoint is reachable.
	// The server is stateless, so the catalog is its only dependency.
	readyHandler := func(c *gin.Context) {
		checkCtx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		catalogAvailable := false
		req, _ := http.NewRequestWithContext(checkCtx, http.MethodHead, catalogClient.URL(), http.NoBody)
		if resp, err := http.DefaultClient.Do(req); err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < 500 {
				catalogAvailable = true
			}
		}

		status := http.StatusOK
		state := "ready"
		if !catalogAvailable {
			status = http.StatusServiceUnavailable
			state = "not ready"
		}
		c.JSON(status, gin.H{
			"status":  state,
			"catalog": catalogAvailable,
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Discord interactions endpoint. POST only; any other method falls
	// through to Gin's 404.
	router.POST("/interactions", webhookHandler.Handle)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
