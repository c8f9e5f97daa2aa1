package ga4

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gaclient/mocks"
	gadomain "github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gadomain"
	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/fixtures"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
)

func testRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func row(dimension string, values ...string) gadomain.Row {
	r := gadomain.Row{}
	if dimension != "" {
		r.DimensionValues = []gadomain.Value{{Value: dimension}}
	}
	for _, v := range values {
		r.MetricValues = append(r.MetricValues, gadomain.Value{Value: v})
	}
	return r
}

func headers(names ...string) []gadomain.MetricHeader {
	out := make([]gadomain.MetricHeader, 0, len(names))
	for _, n := range names {
		out = append(out, gadomain.MetricHeader{Name: n})
	}
	return out
}

func TestGA4Integrator_GetSummaryMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(client)

	client.EXPECT().
		RunReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *gadomain.RunReportRequest) (*gadomain.RunReportResponse, error) {
			assert.Equal(t, "2025-03-01", req.DateRanges[0].StartDate)
			assert.Equal(t, "2025-03-10", req.DateRanges[0].EndDate)
			assert.Empty(t, req.Dimensions)
			assert.Len(t, req.Metrics, 5)

			return &gadomain.RunReportResponse{
				MetricHeaders: headers(MetricTotalUsers, MetricNewUsers, MetricSessions, MetricScreenPageViews, MetricBounceRate),
				Rows:          []gadomain.Row{row("", "545", "324", "678", "1245", "0.42817")},
			}, nil
		})

	got, err := integrator.GetSummaryMetrics(context.Background(), testRange())

	require.NoError(t, err)
	assert.Equal(t, &domain.SummaryMetrics{
		Users:      545,
		NewUsers:   324,
		Sessions:   678,
		PageViews:  1245,
		BounceRate: 42.8,
	}, got)
}

func TestGA4Integrator_NoRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(client)

	client.EXPECT().
		RunReport(gomock.Any(), gomock.Any()).
		Return(&gadomain.RunReportResponse{RowCount: 0}, nil)

	got, err := integrator.GetTrafficSources(context.Background(), testRange())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, reporting.ErrNoData)
}

func TestGA4Integrator_ClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(client)
	upstreamErr := errors.New("ga4: status 403")

	client.EXPECT().RunReport(gomock.Any(), gomock.Any()).Return(nil, upstreamErr)
	client.EXPECT().PropertyID().Return("123")

	_, err := integrator.GetDeviceUsage(context.Background(), testRange())

	assert.ErrorIs(t, err, upstreamErr)
}

func TestGA4Integrator_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(client)
	ctx := context.Background()

	t.Run("page views ordenado por data", func(t *testing.T) {
		client.EXPECT().
			RunReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *gadomain.RunReportRequest) (*gadomain.RunReportResponse, error) {
				require.Len(t, req.OrderBys, 1)
				assert.Equal(t, DimensionDate, req.OrderBys[0].Dimension.DimensionName)

				return &gadomain.RunReportResponse{
					MetricHeaders: headers(MetricScreenPageViews, MetricActiveUsers),
					Rows: []gadomain.Row{
						row("20250301", "120", "45"),
						row("20250302", "145", "52"),
					},
				}, nil
			})

		got, err := integrator.GetPageViews(ctx, testRange())

		require.NoError(t, err)
		assert.Equal(t, []domain.PageViewsPoint{
			{Date: "20250301", PageViews: 120, ActiveUsers: 45},
			{Date: "20250302", PageViews: 145, ActiveUsers: 52},
		}, got)
	})

	t.Run("origens limitadas a 10", func(t *testing.T) {
		client.EXPECT().
			RunReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *gadomain.RunReportRequest) (*gadomain.RunReportResponse, error) {
				assert.Equal(t, int64(TopListLimit), req.Limit)
				assert.True(t, req.OrderBys[0].Desc)
				assert.Equal(t, MetricSessions, req.OrderBys[0].Metric.MetricName)

				return &gadomain.RunReportResponse{
					MetricHeaders: headers(MetricSessions),
					Rows:          []gadomain.Row{row("google", "160"), row("(direct)", "98")},
				}, nil
			})

		got, err := integrator.GetTrafficSources(ctx, testRange())

		require.NoError(t, err)
		assert.Equal(t, []domain.TrafficSource{{Source: "google", Sessions: 160}, {Source: "(direct)", Sessions: 98}}, got)
	})

	t.Run("países", func(t *testing.T) {
		client.EXPECT().
			RunReport(gomock.Any(), gomock.Any()).
			Return(&gadomain.RunReportResponse{
				MetricHeaders: headers(MetricTotalUsers, MetricSessions, MetricScreenPageViews),
				Rows:          []gadomain.Row{row("India", "300", "400", "663")},
			}, nil)

		got, err := integrator.GetVisitsByCountry(ctx, testRange())

		require.NoError(t, err)
		assert.Equal(t, []domain.CountryVisits{{Country: "India", Users: 300, Sessions: 400, PageViews: 663}}, got)
	})

	t.Run("top pages com tempo médio", func(t *testing.T) {
		client.EXPECT().
			RunReport(gomock.Any(), gomock.Any()).
			Return(&gadomain.RunReportResponse{
				MetricHeaders: headers(MetricScreenPageViews, MetricUserEngagementDuration),
				Rows: []gadomain.Row{
					row("/", "450", "33975"),
					row("/vazia", "0", "10"),
				},
			}, nil)

		got, err := integrator.GetTopPages(ctx, testRange())

		require.NoError(t, err)
		assert.Equal(t, []domain.TopPage{
			{PagePath: "/", PageViews: 450, AvgTimeOnPage: 75.5},
			{PagePath: "/vazia", PageViews: 0, AvgTimeOnPage: 0},
		}, got)
	})

	t.Run("valor inválido derruba a categoria", func(t *testing.T) {
		client.EXPECT().
			RunReport(gomock.Any(), gomock.Any()).
			Return(&gadomain.RunReportResponse{
				MetricHeaders: headers(MetricTotalUsers),
				Rows:          []gadomain.Row{row("desktop", "abc"), row("mobile", "138")},
			}, nil)

		got, err := integrator.GetDeviceUsage(ctx, testRange())

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidMetricValue)
		assert.Contains(t, err.Error(), `metric totalUsers value "abc"`)
		assert.Nil(t, got)
	})

	t.Run("bounceRate inválido no resumo", func(t *testing.T) {
		client.EXPECT().
			RunReport(gomock.Any(), gomock.Any()).
			Return(&gadomain.RunReportResponse{
				MetricHeaders: headers(MetricTotalUsers, MetricNewUsers, MetricSessions, MetricScreenPageViews, MetricBounceRate),
				Rows:          []gadomain.Row{row("", "545", "320", "800", "1250", "NaN%")},
			}, nil)

		got, err := integrator.GetSummaryMetrics(ctx, testRange())

		assert.ErrorIs(t, err, ErrInvalidMetricValue)
		assert.Nil(t, got)
	})
}

func TestGA4Integrator_InvalidValueFallsBackToFixtures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := reporting.NewService(New(client), time.Second, nil)

	client.EXPECT().
		RunReport(gomock.Any(), gomock.Any()).
		Return(&gadomain.RunReportResponse{
			MetricHeaders: headers(MetricTotalUsers),
			Rows:          []gadomain.Row{row("desktop", "1.2e3x")},
		}, nil)

	report := service.DeviceUsage(context.Background(), testRange())

	assert.True(t, report.IsMockData)
	assert.Equal(t, fixtures.DeviceUsage(), report.Data)
}
