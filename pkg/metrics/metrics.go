package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "analytics_dashboard"

// Metrics agrupa os coletores expostos em /metrics
type Metrics struct {
	registry *prometheus.Registry

	UpstreamFetches  *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	HTTPRequests     *prometheus.CounterVec
	SnapshotSyncs    *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		UpstreamFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_fetches_total",
			Help:      "GA4 report requests by category and outcome",
		}, []string{"category", "outcome"}),
		UpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_fetch_duration_seconds",
			Help:      "GA4 report request latency by category",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"category"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code",
		}, []string{"route", "status"}),
		SnapshotSyncs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_syncs_total",
			Help:      "Summary snapshot sync runs by result",
		}, []string{"result"}),
	}
}

// ObserveFetch registra o resultado de uma chamada ao GA4
func (m *Metrics) ObserveFetch(category string, outcome string, duration time.Duration) {
	if m == nil {
		return
	}

	m.UpstreamFetches.WithLabelValues(category, outcome).Inc()
	if duration > 0 {
		m.UpstreamDuration.WithLabelValues(category).Observe(duration.Seconds())
	}
}

func (m *Metrics) ObserveRequest(route string, status string) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, status).Inc()
}

func (m *Metrics) ObserveSnapshotSync(result string) {
	if m == nil {
		return
	}
	m.SnapshotSyncs.WithLabelValues(result).Inc()
}

// Handler expõe o registry no formato do Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
