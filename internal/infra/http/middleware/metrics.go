package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of lead submissions by outcome",
		},
		[]string{"status"},
	)

	scoringRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_requests_total",
			Help: "Total number of requests sent to the scoring service",
		},
		[]string{"status"},
	)

	csvExports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "csv_exports_total",
			Help: "Total number of CSV exports downloaded",
		},
	)

	leadAlertsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_alerts_sent_total",
			Help: "Total number of high score lead alert emails sent",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadCapture(status string) {
	leadsCaptured.WithLabelValues(status).Inc()
}

func RecordScoringRequest(status string) {
	scoringRequests.WithLabelValues(status).Inc()
}

func RecordCSVExport() {
	csvExports.Inc()
}

func RecordLeadAlertSent() {
	leadAlertsSent.Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
