package monitor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCountsMatchedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())
	router.GET("/users/:id/projects", func(c *gin.Context) { c.Status(http.StatusOK) })
	RegisterMetricsRoute(router)

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/users/:id/projects", "200"))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/7/projects", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/8/projects", nil))
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/users/:id/projects", "200"))
	if after-before != 2 {
		t.Fatalf("expected 2 counted requests, got %v", after-before)
	}

	RecordEvent(EventAllocationConfirmed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`beamtime_http_requests_total{method="GET",route="/users/:id/projects",status="200"}`,
		`beamtime_workflow_events_total{event="allocation_confirmed"}`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}

func TestLogsRouteNeedsToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Setenv("LOGS_TOKEN", "")
	router := gin.New()
	RegisterLogsRoute(router)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected route to be absent, got %d", w.Code)
	}

	t.Setenv("LOGS_TOKEN", "s3cret")
	router = gin.New()
	RegisterLogsRoute(router)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs?token=wrong", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
