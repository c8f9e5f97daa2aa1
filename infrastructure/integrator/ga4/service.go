package ga4

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gaclient"
	gadomain "github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gadomain"
	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
)

// Nomes de dimensões e métricas da Data API
const (
	DimensionDate           = "date"
	DimensionSessionSource  = "sessionSource"
	DimensionDeviceCategory = "deviceCategory"
	DimensionCountry        = "country"
	DimensionPagePath       = "pagePath"

	MetricTotalUsers             = "totalUsers"
	MetricNewUsers               = "newUsers"
	MetricActiveUsers            = "activeUsers"
	MetricSessions               = "sessions"
	MetricScreenPageViews        = "screenPageViews"
	MetricBounceRate             = "bounceRate"
	MetricUserEngagementDuration = "userEngagementDuration"

	TopListLimit = 10
)

var _ reporting.Upstream = (*GA4Integrator)(nil)

type GA4Integrator struct {
	Client gaclient.Client
}

func New(client gaclient.Client) *GA4Integrator {
	return &GA4Integrator{
		Client: client,
	}
}

func (s *GA4Integrator) GetSummaryMetrics(ctx context.Context, dateRange domain.DateRange) (*domain.SummaryMetrics, error) {
	resp, err := s.runReport(ctx, "summary", &gadomain.RunReportRequest{
		DateRanges: dateRanges(dateRange),
		Metrics: metrics(
			MetricTotalUsers,
			MetricNewUsers,
			MetricSessions,
			MetricScreenPageViews,
			MetricBounceRate,
		),
	})
	if err != nil {
		return nil, err
	}

	return FactorySummaryMetrics(resp)
}

func (s *GA4Integrator) GetPageViews(ctx context.Context, dateRange domain.DateRange) ([]domain.PageViewsPoint, error) {
	resp, err := s.runReport(ctx, "page_views", &gadomain.RunReportRequest{
		DateRanges: dateRanges(dateRange),
		Dimensions: dimensions(DimensionDate),
		Metrics:    metrics(MetricScreenPageViews, MetricActiveUsers),
		OrderBys:   []gadomain.OrderBy{gadomain.OrderByDimension(DimensionDate, false)},
	})
	if err != nil {
		return nil, err
	}

	return FactoryPageViews(resp)
}

func (s *GA4Integrator) GetTrafficSources(ctx context.Context, dateRange domain.DateRange) ([]domain.TrafficSource, error) {
	resp, err := s.runReport(ctx, "traffic_sources", &gadomain.RunReportRequest{
		DateRanges: dateRanges(dateRange),
		Dimensions: dimensions(DimensionSessionSource),
		Metrics:    metrics(MetricSessions),
		OrderBys:   []gadomain.OrderBy{gadomain.OrderByMetric(MetricSessions, true)},
		Limit:      TopListLimit,
	})
	if err != nil {
		return nil, err
	}

	return FactoryTrafficSources(resp)
}

func (s *GA4Integrator) GetDeviceUsage(ctx context.Context, dateRange domain.DateRange) ([]domain.DeviceUsage, error) {
	resp, err := s.runReport(ctx, "device_usage", &gadomain.RunReportRequest{
		DateRanges: dateRanges(dateRange),
		Dimensions: dimensions(DimensionDeviceCategory),
		Metrics:    metrics(MetricTotalUsers),
	})
	if err != nil {
		return nil, err
	}

	return FactoryDeviceUsage(resp)
}

func (s *GA4Integrator) GetVisitsByCountry(ctx context.Context, dateRange domain.DateRange) ([]domain.CountryVisits, error) {
	resp, err := s.runReport(ctx, "visits_by_country", &gadomain.RunReportRequest{
		DateRanges: dateRanges(dateRange),
		Dimensions: dimensions(DimensionCountry),
		Metrics:    metrics(MetricTotalUsers, MetricSessions, MetricScreenPageViews),
		OrderBys:   []gadomain.OrderBy{gadomain.OrderByMetric(MetricTotalUsers, true)},
		Limit:      TopListLimit,
	})
	if err != nil {
		return nil, err
	}

	return FactoryCountryVisits(resp)
}

func (s *GA4Integrator) GetTopPages(ctx context.Context, dateRange domain.DateRange) ([]domain.TopPage, error) {
	resp, err := s.runReport(ctx, "top_pages", &gadomain.RunReportRequest{
		DateRanges: dateRanges(dateRange),
		Dimensions: dimensions(DimensionPagePath),
		Metrics:    metrics(MetricScreenPageViews, MetricUserEngagementDuration),
		OrderBys:   []gadomain.OrderBy{gadomain.OrderByMetric(MetricScreenPageViews, true)},
		Limit:      TopListLimit,
	})
	if err != nil {
		return nil, err
	}

	return FactoryTopPages(resp)
}

// runReport faz a chamada e trata resposta sem linhas como ErrNoData
func (s *GA4Integrator) runReport(ctx context.Context, category string, request *gadomain.RunReportRequest) (*gadomain.RunReportResponse, error) {
	resp, err := s.Client.RunReport(ctx, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"category":    category,
			"property_id": s.Client.PropertyID(),
			"error":       err.Error(),
		}).Error("ga4: failed to run report")
		return nil, err
	}

	if resp == nil || len(resp.Rows) == 0 {
		logrus.WithField("category", category).Debug("ga4: report returned no rows")
		return nil, reporting.ErrNoData
	}

	logrus.WithFields(logrus.Fields{
		"category": category,
		"rows":     len(resp.Rows),
	}).Debug("ga4: report retrieved")

	return resp, nil
}

func dateRanges(dateRange domain.DateRange) []gadomain.DateRange {
	return []gadomain.DateRange{{
		StartDate: dateRange.StartDate(),
		EndDate:   dateRange.EndDate(),
	}}
}

func dimensions(names ...string) []gadomain.Dimension {
	out := make([]gadomain.Dimension, 0, len(names))
	for _, name := range names {
		out = append(out, gadomain.Dimension{Name: name})
	}
	return out
}

func metrics(names ...string) []gadomain.Metric {
	out := make([]gadomain.Metric, 0, len(names))
	for _, name := range names {
		out = append(out, gadomain.Metric{Name: name})
	}
	return out
}
