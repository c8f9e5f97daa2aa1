package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/analytics-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/analytics-dashboard-api/internal/dashboard"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/dashboardclient"
	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
)

// O servidor de teste expõe a API e a página, como em produção sem DASHBOARD_API_URL
func newDashboardServer(t *testing.T) *httptest.Server {
	t.Helper()

	normalizer := testNormalizer()
	service := reporting.NewService(nil, reporting.DefaultRequestTimeout, nil)

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Reports(service, normalizer)...),
		router.WithRoutes(Dashboard(dashboard.NewReporterAPI(service), normalizer, dashboard.ChartOptions{})...),
	)

	server := httptest.NewServer(rt)
	t.Cleanup(server.Close)
	return server
}

func getPage(t *testing.T, server *httptest.Server, path string, query url.Values) (int, string) {
	t.Helper()

	resp, err := server.Client().Get(server.URL + path + "?" + query.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestDashboardPage(t *testing.T) {
	log.SetupTestLogger()

	server := newDashboardServer(t)

	t.Run("sem credenciais exibe dados de exemplo", func(t *testing.T) {
		status, body := getPage(t, server, "/", nil)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `value="2025-03-01"`)
		assert.Contains(t, body, "Showing sample data")
		assert.Contains(t, body, "<strong>545</strong>")
		assert.Contains(t, body, "<iframe srcdoc=")
		assert.Contains(t, body, "India")
	})

	t.Run("intervalo selecionado", func(t *testing.T) {
		status, body := getPage(t, server, "/dashboard", url.Values{
			"startDate": {"2025-03-05"},
			"endDate":   {"2025-03-06"},
		})

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `value="2025-03-05"`)
		assert.Contains(t, body, `value="2025-03-06"`)
	})

	t.Run("intervalo inválido exibe erro com retry", func(t *testing.T) {
		status, body := getPage(t, server, "/dashboard", url.Values{
			"startDate": {"2025-03-10"},
			"endDate":   {"2025-03-01"},
		})

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "start date cannot be after end date")
		assert.Contains(t, body, "Retry")
		assert.NotContains(t, body, "<iframe")
	})
}

func TestDashboardPage_IgnoresRequestHost(t *testing.T) {
	log.SetupTestLogger()

	var hits atomic.Int32
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"pagePath":"/INTERNAL-SECRET","pageViews":999,"avgTimeOnPage":1}]`))
	}))
	defer internal.Close()

	internalURL, err := url.Parse(internal.URL)
	require.NoError(t, err)

	normalizer := testNormalizer()
	service := reporting.NewService(nil, reporting.DefaultRequestTimeout, nil)
	backend := newDashboardServer(t)

	tests := []struct {
		name string
		api  dashboard.API
	}{
		{
			name: "serviço do próprio processo",
			api:  dashboard.NewReporterAPI(service),
		},
		{
			name: "API remota configurada",
			api:  dashboardclient.New(backend.URL, dashboardclient.DefaultTimeout, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits.Store(0)

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			req.Host = internalURL.Host
			req.Header.Set("X-Forwarded-Proto", "http")
			rec := httptest.NewRecorder()

			DashboardPage(tt.api, normalizer, dashboard.ChartOptions{}).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, int32(0), hits.Load())
			assert.NotContains(t, rec.Body.String(), "INTERNAL-SECRET")
			assert.Contains(t, rec.Body.String(), "<strong>545</strong>")
		})
	}
}
