package dashboard

import (
	"context"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
)

// API é o backend consumido pelos widgets (pkg/dashboardclient em produção)
type API interface {
	SummaryMetrics(ctx context.Context, dateRange domain.DateRange) (domain.Report[domain.SummaryMetrics], error)
	PageViews(ctx context.Context, dateRange domain.DateRange) (domain.Report[domain.PageViewsReport], error)
	TrafficSources(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.TrafficSource], error)
	DeviceUsage(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.DeviceUsage], error)
	VisitsByCountry(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.CountryVisits], error)
	TopPages(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.TopPage], error)
}
