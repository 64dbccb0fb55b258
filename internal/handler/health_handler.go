package handler

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	appName    = "KIIT Connect"
	appVersion = "1.0.0"
)

// Pinger is satisfied by *pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and serves the PWA assets
type HealthHandler struct {
	db        Pinger
	demoMode  bool
	staticDir string
}

// NewHealthHandler creates a new HealthHandler. db may be nil when no store
// is configured.
func NewHealthHandler(db Pinger, demoMode bool, staticDir string) *HealthHandler {
	return &HealthHandler{db: db, demoMode: demoMode, staticDir: staticDir}
}

// Health always answers ok; the database field carries the store state
func (h *HealthHandler) Health(c *gin.Context) {
	database := "disconnected"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err == nil {
			database = "connected"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  database,
		"app":       appName,
		"pwa":       true,
		"version":   appVersion,
		"demo_mode": h.demoMode,
	})
}

func (h *HealthHandler) Manifest(c *gin.Context) {
	c.File(filepath.Join(h.staticDir, "manifest.json"))
}

func (h *HealthHandler) ServiceWorker(c *gin.Context) {
	c.Header("Content-Type", "application/javascript")
	c.File(filepath.Join(h.staticDir, "service-worker.js"))
}

// RegisterHealthRoutes registers the health check under rg and the PWA
// assets at the site root
func (h *HealthHandler) RegisterHealthRoutes(router *gin.Engine, rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	router.GET("/manifest.json", h.Manifest)
	router.GET("/service-worker.js", h.ServiceWorker)
}
