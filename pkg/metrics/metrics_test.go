package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveFetch(t *testing.T) {
	m := New()

	m.ObserveFetch("summary", "live", 120*time.Millisecond)
	m.ObserveFetch("summary", "live", 80*time.Millisecond)
	m.ObserveFetch("summary", "unconfigured", 0)

	body := scrape(t, m)
	assert.Contains(t, body, `analytics_dashboard_upstream_fetches_total{category="summary",outcome="live"} 2`)
	assert.Contains(t, body, `analytics_dashboard_upstream_fetches_total{category="summary",outcome="unconfigured"} 1`)
	assert.Contains(t, body, `analytics_dashboard_upstream_fetch_duration_seconds_count{category="summary"} 2`)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveFetch("summary", "live", time.Second)
		m.ObserveRequest("/api/summary-metrics", "200")
		m.ObserveSnapshotSync("ok")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveRequest("/api/top-pages", "200")

	assert.Contains(t, scrape(t, m), `analytics_dashboard_http_requests_total{route="/api/top-pages",status="200"} 1`)
}
