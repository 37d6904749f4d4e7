package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/medlink-api/internal/model"
	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
	"github.com/jwalitptl/medlink-api/pkg/logger"
	"github.com/jwalitptl/medlink-api/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubStarter struct {
	known map[string]bool
	err   error
}

func (s *stubStarter) Ensure(_ context.Context, id string) (*model.Session, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	if s.known[id] {
		return &model.Session{ID: id}, false, nil
	}
	return &model.Session{ID: "fresh"}, true, nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) httputil.Response {
	t.Helper()
	var resp httputil.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRequestIDPropagatesHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		rid, _ := c.Request.Context().Value(logger.RequestIDKey{}).(string)
		c.String(http.StatusOK, rid)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderXRequestID, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(HeaderXRequestID))
	assert.Equal(t, "abc", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderXRequestID))
}

func TestSessionMiddleware(t *testing.T) {
	starter := &stubStarter{known: map[string]bool{"s1": true}}
	r := gin.New()
	r.Use(Session(starter))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, SessionID(c)) })

	t.Run("existing session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderXSessionID, "s1")
		r.ServeHTTP(w, req)
		assert.Equal(t, "s1", w.Body.String())
		assert.Equal(t, "s1", w.Header().Get(HeaderXSessionID))
	})

	t.Run("new session", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "fresh", w.Header().Get(HeaderXSessionID))
	})

	t.Run("store failure", func(t *testing.T) {
		starter.err = errors.New("boom")
		defer func() { starter.err = nil }()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, httputil.StatusError, decode(t, w).Status)
	})
}

func TestErrorHandlerWritesAppError(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logger.NewNop()))
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound("doctor", nil))
	})
	r.GET("/written", func(c *gin.Context) {
		httputil.RespondWithError(c, apperrors.BadRequest("bad", nil))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, httputil.StatusError, decode(t, w).Status)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad", decode(t, w).Message)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()))
	r.GET("/", func(c *gin.Context) { panic("nope") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decode(t, w).Message)
}

func TestRateLimiterIsPerSession(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: rate.Every(time.Hour), Burst: 1})
	r := gin.New()
	r.Use(Session(&stubStarter{known: map[string]bool{"a": true, "b": true}}), rl.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(session string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderXSessionID, session)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusTooManyRequests, do("a"))
	assert.Equal(t, http.StatusOK, do("b"))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS(DefaultCORSConfig()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), HeaderXSessionID)
}

func TestSecurityHeadersNoStore(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders(DefaultSecurityConfig()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestSizeLimitRejectsLargeBody(t *testing.T) {
	cfg := DefaultSizeLimitConfig()
	cfg.MaxBodySize = 4
	r := gin.New()
	r.Use(SizeLimit(cfg))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.ContentLength = 10
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestTimeoutSetsDeadline(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(TimeoutConfig{Duration: time.Second}))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, ok)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "true", w.Body.String())
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	m := metrics.NewNop()
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/doctors/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/doctors/doc1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestTotal.WithLabelValues("GET", "/doctors/:id", "200")))
}
