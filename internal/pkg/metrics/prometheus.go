package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moverhub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "moverhub",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// Mirror sync metrics. The mirror is best effort, so failed syncs surface
	// here rather than in API responses.
	mirrorSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moverhub",
			Subsystem: "mirror",
			Name:      "sync_total",
			Help:      "Total number of mirror sync attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Webhook metrics
	webhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moverhub",
			Subsystem: "billing",
			Name:      "webhook_events_total",
			Help:      "Total number of payment gateway webhook events by type and result",
		},
		[]string{"type", "result"},
	)
)

// RecordMirrorSync records the outcome of a mirror sync attempt
func RecordMirrorSync(outcome string) {
	mirrorSyncTotal.WithLabelValues(outcome).Inc()
}

// RecordWebhookEvent records a processed webhook event
func RecordWebhookEvent(eventType, result string) {
	webhookEventsTotal.WithLabelValues(eventType, result).Inc()
}

// Middleware returns an HTTP middleware that records request metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		// Use the chi route pattern so path cardinality stays bounded
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		status := strconv.Itoa(wrapped.status)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}
