package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/history/mocks"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
)

func TestListSnapshots(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockLister(ctrl)
	routes := Snapshots(lister)

	t.Run("lista", func(t *testing.T) {
		lister.EXPECT().List(gomock.Any(), "2025-01-01", "2025-01-02").Return([]domain.SummarySnapshot{
			{ID: "abc", PropertyID: "1", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Users: 7},
		}, nil)

		rec := serve(t, routes, http.MethodGet, "/v1/snapshots?startDate=2025-01-01&endDate=2025-01-02")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"abc"`)
		assert.Contains(t, rec.Body.String(), `"users":7`)
	})

	t.Run("erro de validação", func(t *testing.T) {
		lister.EXPECT().List(gomock.Any(), "", "").Return(nil, reporting.ErrMissingQueryParameter)

		rec := serve(t, routes, http.MethodGet, "/v1/snapshots")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Start date and end date are required", decodeBody(t, rec)["error"])
	})

	t.Run("erro do banco", func(t *testing.T) {
		lister.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		rec := serve(t, routes, http.MethodGet, "/v1/snapshots?startDate=2025-01-01&endDate=2025-01-02")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "SRV_002", decodeBody(t, rec)["code"])
	})

	t.Run("sem banco configurado", func(t *testing.T) {
		rec := serve(t, Snapshots(nil), http.MethodGet, "/v1/snapshots?startDate=2025-01-01&endDate=2025-01-02")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
