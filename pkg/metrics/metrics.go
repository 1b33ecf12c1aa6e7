package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	EmailsScheduled  *prometheus.CounterVec
	EmailsUpdated    *prometheus.CounterVec
	EmailsCancelled  *prometheus.CounterVec
	EmailsSent       prometheus.Counter
	EmailsFailed     prometheus.Counter
	EmailsEscalated  prometheus.Counter
	StrategyRuns     *prometheus.CounterVec
	WorkerBatchSize  prometheus.Histogram
	SendDuration     prometheus.Histogram

	// Database metrics
	DBConnections prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		// Business metrics
		EmailsScheduled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emails_scheduled_total",
				Help: "Total number of emails scheduled",
			},
			[]string{"signal"},
		),
		EmailsUpdated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emails_updated_total",
				Help: "Total number of scheduled emails updated",
			},
			[]string{"signal"},
		),
		EmailsCancelled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emails_cancelled_total",
				Help: "Total number of scheduled emails cancelled",
			},
			[]string{"signal"},
		),
		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Total number of emails delivered",
		}),
		EmailsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "emails_failed_total",
			Help: "Total number of delivery failures",
		}),
		EmailsEscalated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "emails_escalated_total",
			Help: "Total number of emails auto-cancelled after repeated failures",
		}),
		StrategyRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strategy_runs_total",
				Help: "Total number of strategy evaluations",
			},
			[]string{"signal", "decision"},
		),
		WorkerBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_batch_size",
			Help:    "Number of due emails claimed per worker run",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		SendDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "email_send_duration_seconds",
			Help:    "Delivery duration per email in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		// Database metrics
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		}),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/scheduled-emails/:id)

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordScheduled increments the scheduled counter for a signal
func (m *Metrics) RecordScheduled(signal string) {
	m.EmailsScheduled.WithLabelValues(signal).Inc()
}

// RecordUpdated increments the updated counter for a signal
func (m *Metrics) RecordUpdated(signal string) {
	m.EmailsUpdated.WithLabelValues(signal).Inc()
}

// RecordCancelled increments the cancelled counter for a signal
func (m *Metrics) RecordCancelled(signal string) {
	m.EmailsCancelled.WithLabelValues(signal).Inc()
}

// RecordStrategyRun increments the strategy evaluation counter
func (m *Metrics) RecordStrategyRun(signal, decision string) {
	m.StrategyRuns.WithLabelValues(signal, decision).Inc()
}

// RecordSent increments the delivered counter
func (m *Metrics) RecordSent(duration time.Duration) {
	m.EmailsSent.Inc()
	m.SendDuration.Observe(duration.Seconds())
}

// RecordFailed increments the delivery failure counter
func (m *Metrics) RecordFailed() {
	m.EmailsFailed.Inc()
}

// RecordEscalated increments the auto-cancel counter
func (m *Metrics) RecordEscalated() {
	m.EmailsEscalated.Inc()
}

// RecordBatch records the size of one claimed worker batch
func (m *Metrics) RecordBatch(size int) {
	m.WorkerBatchSize.Observe(float64(size))
}

// UpdateDBConnections updates active database connections gauge
func (m *Metrics) UpdateDBConnections(count float64) {
	m.DBConnections.Set(count)
}
