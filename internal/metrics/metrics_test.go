package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestMiddlewareCountsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Register()

	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/gyms/:slug", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", Handler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("/api/gyms/:slug", "GET", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/gyms/iron", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("/api/gyms/:slug", "GET", "200"))
	assert.Equal(t, before+1, after)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "findmygym_http_requests_total")
}

func TestCacheCounters(t *testing.T) {
	before := testutil.ToFloat64(cacheLookups.WithLabelValues("featured", "hit"))
	CacheHit("featured")
	CacheMiss("featured")
	IncDegraded("deals")
	assert.Equal(t, before+1, testutil.ToFloat64(cacheLookups.WithLabelValues("featured", "hit")))
}
