package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// CacheProbe is satisfied by *cache.MenuRedisCache.
type CacheProbe interface {
	Healthy(ctx context.Context) bool
}

type HealthHandler struct {
	db    Pinger
	cache CacheProbe
}

// NewHealthHandler: cache may be nil when redis is not configured.
func NewHealthHandler(db Pinger, cache CacheProbe) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health reports 503 when the database is unreachable. Redis is optional,
// so a failing cache only degrades the response.
// GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{"status": "ok", "database": "up"}

	if err := h.db.PingContext(ctx); err != nil {
		status = http.StatusServiceUnavailable
		body["status"] = "unavailable"
		body["database"] = "down"
	}

	switch {
	case h.cache == nil:
		body["cache"] = "disabled"
	case h.cache.Healthy(ctx):
		body["cache"] = "up"
	default:
		body["cache"] = "down"
		if status == http.StatusOK {
			body["status"] = "degraded"
		}
	}

	c.JSON(status, body)
}
