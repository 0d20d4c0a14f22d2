package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, "2xx", classifyStatus(http.StatusOK))
	assert.Equal(t, "3xx", classifyStatus(http.StatusSeeOther))
	assert.Equal(t, "4xx", classifyStatus(http.StatusNotFound))
	assert.Equal(t, "5xx", classifyStatus(http.StatusInternalServerError))
	assert.Equal(t, "unknown", classifyStatus(0))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/product/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/product/:id", "4xx"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/product/abc", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/product/:id", "4xx"))

	assert.Equal(t, before+1, after)
}
