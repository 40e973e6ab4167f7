// Package metrics exposes Prometheus metrics for the special baggage service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "special_baggage"

// Metrics holds all prometheus metrics
type Metrics struct {
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	RecordsReturned  *prometheus.HistogramVec
	StoreErrors      *prometheus.CounterVec
	RateLimitedTotal prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics creates metrics registered on a fresh registry that also carries
// the Go runtime and process collectors.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewMetricsWithRegistry(namespace, reg)
}

// NewMetricsWithRegistry creates metrics registered on reg.
func NewMetricsWithRegistry(namespace string, reg *prometheus.Registry) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		RecordsReturned: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "loading_records_returned",
			Help:      "Number of loading records returned per lookup",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"endpoint"}),
		StoreErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "The total number of failed store reads",
		}, []string{"operation"}),
		RateLimitedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "The total number of requests rejected by the rate limiter",
		}),
		gatherer: reg,
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveRecords records how many loading records a lookup returned.
func (m *Metrics) ObserveRecords(endpoint string, n int) {
	m.RecordsReturned.WithLabelValues(endpoint).Observe(float64(n))
}

// IncStoreError counts a failed store read.
func (m *Metrics) IncStoreError(operation string) {
	m.StoreErrors.WithLabelValues(operation).Inc()
}

// IncRateLimited counts a request rejected by the rate limiter.
func (m *Metrics) IncRateLimited() {
	m.RateLimitedTotal.Inc()
}

// Handler returns the Prometheus exposition handler for these metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
