package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/medlink-api/internal/middleware"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
	"github.com/jwalitptl/medlink-api/pkg/logger"
	"github.com/jwalitptl/medlink-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// SearchHandler also serves routes that call the AI gateway. Those are
// mounted behind the rate limiter.
type SearchHandler interface {
	Handler
	RegisterSearchRoutes(*gin.RouterGroup)
}

type Router struct {
	engine   *gin.Engine
	sessions middleware.SessionStarter
	health   Handler
	handlers []Handler
	limiter  *middleware.RateLimiter
}

type RouterConfig struct {
	Mode             string
	RateLimitEnabled bool
	RateLimit        rate.Limit
	RateBurst        int
	CORSConfig       middleware.CORSConfig
	RequestTimeout   time.Duration
}

func NewRouter(
	l *logger.Logger,
	m *metrics.Metrics,
	sessions middleware.SessionStarter,
	health Handler,
	handlers []Handler,
	config RouterConfig,
) *Router {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = middleware.DefaultTimeoutConfig().Duration
	}

	engine := gin.New()

	engine.Use(
		middleware.Recovery(l),
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.ErrorHandler(l),
		middleware.Metrics(m),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.RequestTimeout}),
		middleware.CORS(config.CORSConfig),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.SizeLimit(middleware.DefaultSizeLimitConfig()),
	)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httputil.NewErrorResponse("route not found"))
	})

	r := &Router{
		engine:   engine,
		sessions: sessions,
		health:   health,
		handlers: handlers,
	}
	if config.RateLimitEnabled {
		r.limiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
	}
	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	// Add version header
	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.health.RegisterRoutes(api)

	portal := api.Group("")
	portal.Use(middleware.Session(r.sessions))

	search := portal.Group("")
	if r.limiter != nil {
		search.Use(r.limiter.RateLimit())
	}

	for _, h := range r.handlers {
		h.RegisterRoutes(portal)
		if sh, ok := h.(SearchHandler); ok {
			sh.RegisterSearchRoutes(search)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
