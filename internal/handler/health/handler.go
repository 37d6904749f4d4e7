package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

type Handler struct {
	metrics http.Handler
	checks  map[string]Check
	timeout time.Duration
}

// NewHandler serves probes and exposes the metrics in gatherer. Checks run
// on readiness only; with none configured the service is always ready.
func NewHandler(gatherer prometheus.Gatherer, checks map[string]Check) *Handler {
	return &Handler{
		metrics: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		checks:  checks,
		timeout: 2 * time.Second,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	health := r.Group("/health")
	{
		health.GET("/live", h.LivenessCheck)
		health.GET("/ready", h.ReadinessCheck)
		health.GET("/metrics", h.Metrics)
	}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

func (h *Handler) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	components := gin.H{}
	status := http.StatusOK
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			components[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		components[name] = "UP"
	}

	if status != http.StatusOK {
		c.JSON(status, gin.H{"status": "DOWN", "components": components})
		return
	}
	c.JSON(status, gin.H{"status": "UP", "components": components})
}

func (h *Handler) Metrics(c *gin.Context) {
	h.metrics.ServeHTTP(c.Writer, c.Request)
}
