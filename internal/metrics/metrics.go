// Package metrics exposes Prometheus collectors for reflections, remote
// generation calls and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

const namespace = "recoverylock"

// Metrics holds the service collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	reflections  *prometheus.CounterVec
	remoteCalls  *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	inFlight     prometheus.Gauge
}

// New creates the collectors on a fresh registry, including Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// Labels: origin (remote, fallback), reason (empty for remote)
		reflections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reflection",
			Name:      "generated_total",
			Help:      "Reflections returned, by origin and fallback reason",
		}, []string{"origin", "reason"}),

		// Labels: outcome (ok, remote_error, timeout, empty_response)
		remoteCalls: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "Duration of remote text-generation calls in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30},
		}, []string{"outcome"}),

		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),

		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),

		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Requests currently being served",
		}),
	}
}

// RecordReflection counts one returned reflection.
func (m *Metrics) RecordReflection(origin domain.ReflectionOrigin, reason string) {
	m.reflections.WithLabelValues(origin.String(), reason).Inc()
}

// ObserveRemoteCall records the duration of one remote generation attempt.
func (m *Metrics) ObserveRemoteCall(outcome string, d time.Duration) {
	m.remoteCalls.WithLabelValues(outcome).Observe(d.Seconds())
}

// ObserveHTTPRequest records a served request. route should be the matched
// pattern, not the raw path.
func (m *Metrics) ObserveHTTPRequest(route, method string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// RequestStarted increments the in-flight gauge and returns its decrement.
func (m *Metrics) RequestStarted() func() {
	m.inFlight.Inc()
	return m.inFlight.Dec
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
