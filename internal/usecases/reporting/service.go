package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/fixtures"
	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
)

const DefaultRequestTimeout = 5 * time.Second

const (
	CategorySummary         = "summary"
	CategoryPageViews       = "page_views"
	CategoryTrafficSources  = "traffic_sources"
	CategoryDeviceUsage     = "device_usage"
	CategoryVisitsByCountry = "visits_by_country"
	CategoryTopPages        = "top_pages"
)

const (
	OutcomeLive         = "live"
	OutcomeEmpty        = "empty"
	OutcomeTimeout      = "timeout"
	OutcomeError        = "error"
	OutcomeUnconfigured = "unconfigured"
)

type Service struct {
	upstream Upstream
	timeout  time.Duration
	recorder FetchRecorder
}

// NewService cria o serviço de relatórios. Com upstream nil o serviço fica
// permanentemente em modo de dados de exemplo.
func NewService(upstream Upstream, timeout time.Duration, recorder FetchRecorder) *Service {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &Service{
		upstream: upstream,
		timeout:  timeout,
		recorder: recorder,
	}
}

func (s *Service) IsLive() bool {
	return s.upstream != nil
}

func (s *Service) SummaryMetrics(ctx context.Context, dateRange domain.DateRange) domain.Report[domain.SummaryMetrics] {
	return fetchReport(ctx, s, CategorySummary, dateRange,
		func(ctx context.Context) (domain.SummaryMetrics, error) {
			metrics, err := s.upstream.GetSummaryMetrics(ctx, dateRange)
			if err != nil {
				return domain.SummaryMetrics{}, err
			}
			if metrics == nil {
				return domain.SummaryMetrics{}, ErrNoData
			}
			live := *metrics
			live.IsMockData = false
			return live, nil
		},
		func(domain.SummaryMetrics) bool { return false },
		fixtures.SummaryMetrics,
	)
}

func (s *Service) PageViews(ctx context.Context, dateRange domain.DateRange) domain.Report[domain.PageViewsReport] {
	return fetchReport(ctx, s, CategoryPageViews, dateRange,
		func(ctx context.Context) (domain.PageViewsReport, error) {
			points, err := s.upstream.GetPageViews(ctx, dateRange)
			if err != nil {
				return domain.PageViewsReport{}, err
			}
			return fixtures.NewPageViewsReport(points), nil
		},
		func(r domain.PageViewsReport) bool { return len(r.Rows) == 0 },
		fixtures.PageViews,
	)
}

func (s *Service) TrafficSources(ctx context.Context, dateRange domain.DateRange) domain.Report[[]domain.TrafficSource] {
	return fetchReport(ctx, s, CategoryTrafficSources, dateRange,
		func(ctx context.Context) ([]domain.TrafficSource, error) {
			return s.upstream.GetTrafficSources(ctx, dateRange)
		},
		func(v []domain.TrafficSource) bool { return len(v) == 0 },
		fixtures.TrafficSources,
	)
}

func (s *Service) DeviceUsage(ctx context.Context, dateRange domain.DateRange) domain.Report[[]domain.DeviceUsage] {
	return fetchReport(ctx, s, CategoryDeviceUsage, dateRange,
		func(ctx context.Context) ([]domain.DeviceUsage, error) {
			return s.upstream.GetDeviceUsage(ctx, dateRange)
		},
		func(v []domain.DeviceUsage) bool { return len(v) == 0 },
		fixtures.DeviceUsage,
	)
}

func (s *Service) VisitsByCountry(ctx context.Context, dateRange domain.DateRange) domain.Report[[]domain.CountryVisits] {
	return fetchReport(ctx, s, CategoryVisitsByCountry, dateRange,
		func(ctx context.Context) ([]domain.CountryVisits, error) {
			return s.upstream.GetVisitsByCountry(ctx, dateRange)
		},
		func(v []domain.CountryVisits) bool { return len(v) == 0 },
		fixtures.VisitsByCountry,
	)
}

func (s *Service) TopPages(ctx context.Context, dateRange domain.DateRange) domain.Report[[]domain.TopPage] {
	return fetchReport(ctx, s, CategoryTopPages, dateRange,
		func(ctx context.Context) ([]domain.TopPage, error) {
			return s.upstream.GetTopPages(ctx, dateRange)
		},
		func(v []domain.TopPage) bool { return len(v) == 0 },
		fixtures.TopPages,
	)
}

// fetchReport faz uma única tentativa no GA4 e, em qualquer falha ou resultado
// vazio, devolve o fallback da categoria marcado como dado de exemplo
func fetchReport[T any](
	ctx context.Context,
	s *Service,
	category string,
	dateRange domain.DateRange,
	call func(context.Context) (T, error),
	isEmpty func(T) bool,
	fallback func() T,
) domain.Report[T] {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"category":   category,
		"start_date": dateRange.StartDate(),
		"end_date":   dateRange.EndDate(),
	})

	if s.upstream == nil {
		logger.Debug("reports: GA4 not configured, returning sample data")
		s.observe(category, OutcomeUnconfigured, 0)
		return domain.Report[T]{Data: fallback(), IsMockData: true}
	}

	logger.Debug("reports: fetching report from GA4")

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	startTime := time.Now()
	data, err := call(callCtx)
	duration := time.Since(startTime)

	if err == nil && isEmpty(data) {
		err = ErrNoData
	}

	if err != nil {
		outcome := classify(err)
		s.observe(category, outcome, duration)

		logger.WithFields(log.Fields{
			"outcome":     outcome,
			"duration_ms": duration.Milliseconds(),
			"error":       err.Error(),
		}).Warn("reports: GA4 request failed, returning sample data")

		return domain.Report[T]{Data: fallback(), IsMockData: true}
	}

	s.observe(category, OutcomeLive, duration)
	logger.WithField("duration_ms", duration.Milliseconds()).Info("reports: live report retrieved")

	return domain.Report[T]{Data: data}
}

func (s *Service) observe(category, outcome string, duration time.Duration) {
	if s.recorder != nil {
		s.recorder.ObserveFetch(category, outcome, duration)
	}
}

func classify(err error) string {
	switch {
	case errors.Is(err, ErrNoData):
		return OutcomeEmpty
	case errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	default:
		return OutcomeError
	}
}
