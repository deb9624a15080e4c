package monitor

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Workflow event names counted by beamtime_workflow_events_total.
const (
	EventUserCreated          = "user_created"
	EventUserUpdated          = "user_updated"
	EventProjectCreated       = "project_created"
	EventProjectUpdated       = "project_updated"
	EventProjectDeleted       = "project_deleted"
	EventRequestCreated       = "request_created"
	EventRequestStatusChanged = "request_status_changed"
	EventAllocationCreated    = "allocation_created"
	EventApprovalRecorded     = "approval_recorded"
	EventAllocationConfirmed  = "allocation_confirmed"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "beamtime",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "beamtime",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	workflowEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "beamtime",
			Name:      "workflow_events_total",
			Help:      "Committed workflow mutations by event.",
		},
		[]string{"event"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		workflowEvents,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// RecordEvent counts one committed workflow mutation.
func RecordEvent(event string) {
	workflowEvents.WithLabelValues(event).Inc()
}

// Metrics records request counts and latency per matched route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RegisterMetricsRoute exposes the registry on GET /metrics.
func RegisterMetricsRoute(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})))
}
