package dashboard

import (
	"context"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
)

// ReporterAPI atende os widgets com o serviço de relatórios do próprio processo.
// É o backend da página quando DASHBOARD_API_URL não está configurada.
type ReporterAPI struct {
	reporter reporting.Reporter
}

var _ API = (*ReporterAPI)(nil)

func NewReporterAPI(reporter reporting.Reporter) *ReporterAPI {
	return &ReporterAPI{reporter: reporter}
}

func (a *ReporterAPI) SummaryMetrics(ctx context.Context, dateRange domain.DateRange) (domain.Report[domain.SummaryMetrics], error) {
	return a.reporter.SummaryMetrics(ctx, dateRange), ctx.Err()
}

func (a *ReporterAPI) PageViews(ctx context.Context, dateRange domain.DateRange) (domain.Report[domain.PageViewsReport], error) {
	return a.reporter.PageViews(ctx, dateRange), ctx.Err()
}

func (a *ReporterAPI) TrafficSources(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.TrafficSource], error) {
	return a.reporter.TrafficSources(ctx, dateRange), ctx.Err()
}

func (a *ReporterAPI) DeviceUsage(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.DeviceUsage], error) {
	return a.reporter.DeviceUsage(ctx, dateRange), ctx.Err()
}

func (a *ReporterAPI) VisitsByCountry(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.CountryVisits], error) {
	return a.reporter.VisitsByCountry(ctx, dateRange), ctx.Err()
}

func (a *ReporterAPI) TopPages(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.TopPage], error) {
	return a.reporter.TopPages(ctx, dateRange), ctx.Err()
}
