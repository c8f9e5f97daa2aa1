package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "validação", code: ErrMissingRequiredData, wantStatus: http.StatusBadRequest},
		{name: "intervalo", code: ErrInvalidDateRange, wantStatus: http.StatusBadRequest},
		{name: "não encontrado", code: ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "banco", code: ErrDatabaseOperation, wantStatus: http.StatusInternalServerError},
		{name: "desabilitado", code: ErrServiceDisabled, wantStatus: http.StatusServiceUnavailable},
		{name: "código desconhecido", code: "XYZ", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "something failed", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "something failed", body["error"])
			assert.Equal(t, tt.code, body["code"])
			assert.NotContains(t, body, "details")
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Error: "boom", Code: ErrExternalService}, FromError(errors.New("boom"), ErrExternalService))
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)
}
