package dashboardclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
)

func testRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestClient_TrafficSources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathTrafficSources, r.URL.Path)
		assert.Equal(t, "2025-03-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2025-03-10", r.URL.Query().Get("endDate"))

		w.Header().Set(MockDataHeader, "true")
		_, _ = w.Write([]byte(`[{"source":"google","sessions":160}]`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, nil)

	report, err := client.TrafficSources(context.Background(), testRange())

	require.NoError(t, err)
	assert.True(t, report.IsMockData)
	assert.Equal(t, []domain.TrafficSource{{Source: "google", Sessions: 160}}, report.Data)
}

func TestClient_SummaryMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users":10,"newUsers":2,"sessions":12,"pageViews":40,"bounceRate":30.5,"isMockData":false}`))
	}))
	defer server.Close()

	report, err := New(server.URL, time.Second, nil).SummaryMetrics(context.Background(), testRange())

	require.NoError(t, err)
	assert.False(t, report.IsMockData)
	assert.Equal(t, int64(10), report.Data.Users)
	assert.Equal(t, 30.5, report.Data.BounceRate)
}

func TestClient_Errors(t *testing.T) {
	t.Run("status de erro com corpo JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Start date and end date are required"}`))
		}))
		defer server.Close()

		_, err := New(server.URL, time.Second, nil).TopPages(context.Background(), testRange())

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
		assert.Equal(t, "Start date and end date are required", statusErr.Message)
	})

	t.Run("timeout por chamada", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		_, err := New(server.URL, 20*time.Millisecond, nil).DeviceUsage(context.Background(), testRange())

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		_, err := New(server.URL, time.Second, nil).VisitsByCountry(context.Background(), testRange())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})
}

func TestClient_Healthcheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthcheck", r.URL.Path)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	body, err := New(server.URL, time.Second, nil).Healthcheck(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", body)
}
