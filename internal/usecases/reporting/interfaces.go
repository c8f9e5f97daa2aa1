package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
)

// SummaryFetcher obtém os contadores do resumo direto do GA4
type SummaryFetcher interface {
	GetSummaryMetrics(ctx context.Context, dateRange domain.DateRange) (*domain.SummaryMetrics, error)
}

// Upstream é o serviço de relatórios (GA4). Cada método faz exatamente uma chamada
// e retorna ErrNoData quando o relatório volta sem linhas.
type Upstream interface {
	SummaryFetcher

	GetPageViews(ctx context.Context, dateRange domain.DateRange) ([]domain.PageViewsPoint, error)
	GetTrafficSources(ctx context.Context, dateRange domain.DateRange) ([]domain.TrafficSource, error)
	GetDeviceUsage(ctx context.Context, dateRange domain.DateRange) ([]domain.DeviceUsage, error)
	GetVisitsByCountry(ctx context.Context, dateRange domain.DateRange) ([]domain.CountryVisits, error)
	GetTopPages(ctx context.Context, dateRange domain.DateRange) ([]domain.TopPage, error)
}

// Reporter entrega sempre algum dado exibível: ao vivo ou de exemplo
type Reporter interface {
	SummaryMetrics(ctx context.Context, dateRange domain.DateRange) domain.Report[domain.SummaryMetrics]
	PageViews(ctx context.Context, dateRange domain.DateRange) domain.Report[domain.PageViewsReport]
	TrafficSources(ctx context.Context, dateRange domain.DateRange) domain.Report[[]domain.TrafficSource]
	DeviceUsage(ctx context.Context, dateRange domain.DateRange) domain.Report[[]domain.DeviceUsage]
	VisitsByCountry(ctx context.Context, dateRange domain.DateRange) domain.Report[[]domain.CountryVisits]
	TopPages(ctx context.Context, dateRange domain.DateRange) domain.Report[[]domain.TopPage]

	// IsLive indica se há credenciais do GA4 configuradas
	IsLive() bool
}

// FetchRecorder recebe o resultado de cada chamada ao GA4 (métricas)
type FetchRecorder interface {
	ObserveFetch(category string, outcome string, duration time.Duration)
}
