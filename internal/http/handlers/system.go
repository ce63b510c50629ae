package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "🚗 RoadBuddy API is Live!",
		"version": ServiceVersion,
		"status":  "running",
		"endpoints": gin.H{
			"trips":  "/api/trips",
			"search": "/api/trips/search",
			"health": "/api/health",
		},
	})
}

// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339Nano),
		"service":   ServiceName,
		"version":   ServiceVersion,
	})
}

// GET /api/routes
func (h *Handler) Routes(c *gin.Context) {
	h.routerMu.RLock()
	r := h.router
	h.routerMu.RUnlock()
	if r == nil {
		RespondError(c, http.StatusServiceUnavailable, "router not ready")
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method": rt.Method,
			"path":   rt.Path,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "routes": out, "count": len(out)})
}

// NoRoute answers unknown paths with the standard envelope.
func (h *Handler) NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "route not found",
		"path":    c.Request.URL.Path,
		"method":  c.Request.Method,
	})
}
