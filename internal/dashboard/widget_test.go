package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/analytics-dashboard-api/internal/dashboard/mocks"
	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/fixtures"
	"github.com/vfg2006/analytics-dashboard-api/pkg/dashboardclient"
)

func TestLoadSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	ctx := context.Background()
	dr := fixedNormalizer().DefaultRange()

	tests := []struct {
		name       string
		report     domain.Report[domain.SummaryMetrics]
		err        error
		wantStatus Status
		wantMock   bool
		wantUsers  int64
	}{
		{
			name:       "dados ao vivo",
			report:     domain.Report[domain.SummaryMetrics]{Data: domain.SummaryMetrics{Users: 10, Sessions: 12, PageViews: 30}},
			wantStatus: StatusSuccess,
			wantUsers:  10,
		},
		{
			name:       "fallback do servidor marcado no corpo",
			report:     domain.Report[domain.SummaryMetrics]{Data: fixtures.SummaryMetrics()},
			wantStatus: StatusSuccess,
			wantMock:   true,
			wantUsers:  545,
		},
		{
			name:       "erro de transporte usa fixture",
			err:        errors.New("connection refused"),
			wantStatus: StatusSuccess,
			wantMock:   true,
			wantUsers:  545,
		},
		{
			name:       "tudo zero fica vazio",
			report:     domain.Report[domain.SummaryMetrics]{Data: domain.SummaryMetrics{}},
			wantStatus: StatusEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api.EXPECT().SummaryMetrics(gomock.Any(), dr).Return(tt.report, tt.err)

			got := loadSummary(ctx, api, dr)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantMock, got.IsMockData)
			assert.Equal(t, tt.wantMock, got.Data.IsMockData)
			assert.Equal(t, tt.wantUsers, got.Data.Users)
			assert.NoError(t, got.Err)
		})
	}
}

func TestLoadBreakdowns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	ctx := context.Background()
	dr := fixedNormalizer().DefaultRange()

	t.Run("origens agregadas com Others", func(t *testing.T) {
		api.EXPECT().TrafficSources(gomock.Any(), dr).Return(domain.Report[[]domain.TrafficSource]{}, &dashboardclient.StatusError{StatusCode: 500})

		got := loadTrafficSources(ctx, api, dr)

		assert.True(t, got.IsMockData)
		require.Len(t, got.Data, 6)
		assert.Equal(t, "google", got.Data[0].Label)
		assert.Equal(t, domain.OthersLabel, got.Data[5].Label)
		assert.Equal(t, int64(13), got.Data[5].Count)
	})

	t.Run("dispositivos completados com zero", func(t *testing.T) {
		api.EXPECT().DeviceUsage(gomock.Any(), dr).Return(domain.Report[[]domain.DeviceUsage]{
			Data: []domain.DeviceUsage{{Device: "mobile", Users: 3}},
		}, nil)

		got := loadDeviceUsage(ctx, api, dr)

		assert.False(t, got.IsMockData)
		assert.Equal(t, []domain.BreakdownEntry{
			{Label: "mobile", Count: 3, Percentage: 100},
			{Label: "desktop", Count: 0, Percentage: 0},
			{Label: "tablet", Count: 0, Percentage: 0},
		}, got.Data)
	})

	t.Run("lista vazia usa fixture", func(t *testing.T) {
		api.EXPECT().VisitsByCountry(gomock.Any(), dr).Return(domain.Report[[]domain.CountryVisits]{}, nil)

		got := loadVisitsByCountry(ctx, api, dr)

		assert.True(t, got.IsMockData)
		assert.Equal(t, "India", got.Data[0].Label)
		assert.Equal(t, 72.6, got.Data[0].Percentage)
	})

	t.Run("contagens zeradas ficam vazias", func(t *testing.T) {
		api.EXPECT().DeviceUsage(gomock.Any(), dr).Return(domain.Report[[]domain.DeviceUsage]{
			Data: []domain.DeviceUsage{{Device: "desktop", Users: 0}},
		}, nil)

		got := loadDeviceUsage(ctx, api, dr)

		assert.Equal(t, StatusEmpty, got.Status)
		assert.Len(t, got.Data, 3)
	})
}

func TestLoadPageViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockAPI(ctrl)
	dr := fixedNormalizer().DefaultRange()

	api.EXPECT().PageViews(gomock.Any(), dr).Return(domain.Report[domain.PageViewsReport]{}, context.DeadlineExceeded)

	got := loadPageViews(context.Background(), api, dr)

	assert.True(t, got.IsMockData)
	require.Len(t, got.Data, 7)
	assert.Equal(t, domain.PageViewsPoint{Date: "20230101", PageViews: 120, ActiveUsers: 45}, got.Data[0])
}

func TestPadDevices(t *testing.T) {
	got := PadDevices(nil)

	assert.Equal(t, []domain.DeviceUsage{{Device: "desktop"}, {Device: "mobile"}, {Device: "tablet"}}, got)
	assert.Len(t, PadDevices(fixtures.DeviceUsage()), 3)
}

func TestFormatReportDate(t *testing.T) {
	assert.Equal(t, "2023-01-07", FormatReportDate("20230107"))
	assert.Equal(t, "2023-01-07", FormatReportDate("2023-01-07"))
}
