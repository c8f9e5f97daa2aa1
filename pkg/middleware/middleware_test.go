package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
)

type observation struct {
	route  string
	status string
}

type fakeRecorder struct {
	mu   sync.Mutex
	seen []observation
}

func (f *fakeRecorder) ObserveRequest(route string, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, observation{route, status})
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	recorder := &fakeRecorder{}
	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = log.GetCorrelationID(r.Context())
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(recorder)(next)

	t.Run("reaproveita o ID de correlação recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/top-pages", nil)
		req.Header.Set(CorrelationIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", gotID)
		assert.Equal(t, "abc-123", rec.Header().Get(CorrelationIDHeader))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("gera um ID quando ausente", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.NotEmpty(t, gotID)
		assert.Equal(t, gotID, rec.Header().Get(CorrelationIDHeader))
	})

	require.Len(t, recorder.seen, 2)
	assert.Equal(t, observation{"/api/top-pages", "418"}, recorder.seen[0])
	assert.Equal(t, observation{unmatchedRoute, "404"}, recorder.seen[1])
}

func TestLoggingMiddleware_RejectsUntrustedCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "uuid válido", incoming: "3f2b8c1e-7a4d-4e2b-9c1a-0d5e6f7a8b9c", keep: true},
		{name: "no limite de tamanho", incoming: strings.Repeat("a", log.MaxCorrelationIDLength), keep: true},
		{name: "longo demais", incoming: strings.Repeat("a", log.MaxCorrelationIDLength+1)},
		{name: "quebra de linha", incoming: "abc\nlevel=error msg=forjado"},
		{name: "espaços e aspas", incoming: `abc "x"`},
		{name: "html", incoming: "<script>alert(1)</script>"},
		{name: "unicode", incoming: "abc-ção"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			handler := LoggingMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID = log.GetCorrelationID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
			req.Header.Set(CorrelationIDHeader, tt.incoming)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, gotID, rec.Header().Get(CorrelationIDHeader))
			if tt.keep {
				assert.Equal(t, tt.incoming, gotID)
				return
			}
			assert.NotEqual(t, tt.incoming, gotID)
			_, err := uuid.Parse(gotID)
			assert.NoError(t, err)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestCors(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantOrigin string
		wantStatus int
	}{
		{name: "curinga", allowed: []string{"*"}, method: http.MethodGet, origin: "http://localhost:3000", wantOrigin: "http://localhost:3000", wantStatus: http.StatusOK},
		{name: "origem listada", allowed: []string{"https://dash.example.com"}, method: http.MethodGet, origin: "https://dash.example.com", wantOrigin: "https://dash.example.com", wantStatus: http.StatusOK},
		{name: "origem não listada", allowed: []string{"https://dash.example.com"}, method: http.MethodGet, origin: "https://evil.example.com", wantStatus: http.StatusOK},
		{name: "preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: "http://localhost:3000", wantOrigin: "http://localhost:3000", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/summary-metrics", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed, "X-Mock-Data")(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin != "" {
				assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Mock-Data")
			}
			assert.Empty(t, rec.Header().Get("Content-Type"))
		})
	}
}
