// Package main provides the chatbot server entry point.
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carebridge-sg/carebot-go/internal/buildinfo"
	"github.com/carebridge-sg/carebot-go/internal/config"
	"github.com/carebridge-sg/carebot-go/internal/escalate"
	"github.com/carebridge-sg/carebot-go/internal/httpapi"
	"github.com/carebridge-sg/carebot-go/internal/kb"
	"github.com/carebridge-sg/carebot-go/internal/session"
)

// setupRoutes configures all HTTP routes
func setupRoutes(
	router *gin.Engine,
	apiHandler *httpapi.Handler,
	recorder *escalate.SQLiteRecorder,
	sessions *session.Store,
	catalog *kb.Catalog,
	registry *prometheus.Registry,
	cfg *config.Config,
) {
	// Root endpoint - redirect to the project repository
	rootHandler := func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "https://github.com/carebridge-sg/carebot-go")
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Health check endpoints
	// Liveness Probe - checks if the application is alive (minimal check)
	// This should NEVER check dependencies - only that the process is running
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness Probe - checks if the application is ready to serve traffic
	readyHandler := func(c *gin.Context) {
		// The ticket database is the only external dependency
		if _, err := recorder.Count(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ready",
			"version":  buildinfo.Short(),
			"database": "connected",
			"knowledge_base": gin.H{
				"schemes":      len(catalog.Schemes),
				"entry_points": len(catalog.EntryPoints),
			},
			"sessions": sessions.Len(),
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Chat API endpoints
	apiHandler.Register(router)

	// Prometheus metrics endpoint, behind Basic Auth when a password is set
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		authorized := router.Group("/", gin.BasicAuth(gin.Accounts{
			cfg.MetricsUsername: cfg.MetricsPassword,
		}))
		authorized.GET("/metrics", metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}
}
