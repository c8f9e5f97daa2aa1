package dashboard

import (
	"context"
	"errors"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/fixtures"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
	"github.com/vfg2006/analytics-dashboard-api/pkg/utils"
)

// Status é o estado transitório de um widget dentro de um ciclo de carga
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusEmpty
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusEmpty:
		return "empty"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Widget guarda o resultado de um widget. Err só é preenchido com StatusError.
type Widget[T any] struct {
	Status     Status
	Data       T
	IsMockData bool
	Err        error
}

// Dispositivos sempre exibidos, mesmo sem dados
var expectedDevices = []string{"desktop", "mobile", "tablet"}

// resolve aplica a política de fallback: erro de transporte, status ou payload
// vazio viram o fixture da categoria marcado como dado de exemplo
func resolve[T any](ctx context.Context, widget string, report domain.Report[T], err error, isEmpty func(T) bool, fallback func() T) Widget[T] {
	if err == nil && isEmpty(report.Data) {
		err = reporting.ErrNoData
	}

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.ForContext(ctx).WithFields(log.Fields{
				"category": widget,
				"error":    err.Error(),
			}).Warn("dashboard: widget fetch failed, showing sample data")
		}
		return Widget[T]{Status: StatusSuccess, Data: fallback(), IsMockData: true}
	}

	return Widget[T]{Status: StatusSuccess, Data: report.Data, IsMockData: report.IsMockData}
}

func loadSummary(ctx context.Context, api API, dateRange domain.DateRange) Widget[domain.SummaryMetrics] {
	report, err := api.SummaryMetrics(ctx, dateRange)
	w := resolve(ctx, reporting.CategorySummary, report, err,
		func(domain.SummaryMetrics) bool { return false },
		fixtures.SummaryMetrics,
	)
	w.IsMockData = w.IsMockData || w.Data.IsMockData
	w.Data.IsMockData = w.IsMockData

	if w.Data.Users == 0 && w.Data.Sessions == 0 && w.Data.PageViews == 0 {
		w.Status = StatusEmpty
	}
	return w
}

func loadPageViews(ctx context.Context, api API, dateRange domain.DateRange) Widget[[]domain.PageViewsPoint] {
	report, err := api.PageViews(ctx, dateRange)
	w := resolve(ctx, reporting.CategoryPageViews, report, err,
		func(r domain.PageViewsReport) bool { return len(r.Rows) == 0 },
		fixtures.PageViews,
	)

	return Widget[[]domain.PageViewsPoint]{
		Status:     w.Status,
		Data:       PageViewsPoints(w.Data),
		IsMockData: w.IsMockData,
	}
}

func loadTrafficSources(ctx context.Context, api API, dateRange domain.DateRange) Widget[[]domain.BreakdownEntry] {
	report, err := api.TrafficSources(ctx, dateRange)
	w := resolve(ctx, reporting.CategoryTrafficSources, report, err,
		func(v []domain.TrafficSource) bool { return len(v) == 0 },
		fixtures.TrafficSources,
	)

	return breakdownWidget(w.IsMockData, reporting.Aggregate(reporting.TrafficSourceEntries(w.Data), reporting.PrecisionWhole))
}

func loadDeviceUsage(ctx context.Context, api API, dateRange domain.DateRange) Widget[[]domain.BreakdownEntry] {
	report, err := api.DeviceUsage(ctx, dateRange)
	w := resolve(ctx, reporting.CategoryDeviceUsage, report, err,
		func(v []domain.DeviceUsage) bool { return len(v) == 0 },
		fixtures.DeviceUsage,
	)

	devices := PadDevices(w.Data)
	return breakdownWidget(w.IsMockData, reporting.Aggregate(reporting.DeviceEntries(devices), reporting.PrecisionWhole))
}

func loadVisitsByCountry(ctx context.Context, api API, dateRange domain.DateRange) Widget[[]domain.BreakdownEntry] {
	report, err := api.VisitsByCountry(ctx, dateRange)
	w := resolve(ctx, reporting.CategoryVisitsByCountry, report, err,
		func(v []domain.CountryVisits) bool { return len(v) == 0 },
		fixtures.VisitsByCountry,
	)

	return breakdownWidget(w.IsMockData, reporting.Aggregate(reporting.CountryEntries(w.Data), reporting.PrecisionOneDecimal))
}

func loadTopPages(ctx context.Context, api API, dateRange domain.DateRange) Widget[[]domain.TopPage] {
	report, err := api.TopPages(ctx, dateRange)
	return resolve(ctx, reporting.CategoryTopPages, report, err,
		func(v []domain.TopPage) bool { return len(v) == 0 },
		fixtures.TopPages,
	)
}

func breakdownWidget(mock bool, entries []domain.BreakdownEntry) Widget[[]domain.BreakdownEntry] {
	w := Widget[[]domain.BreakdownEntry]{Status: StatusSuccess, Data: entries, IsMockData: mock}

	var total int64
	for _, e := range entries {
		total += e.Count
	}
	if total == 0 {
		w.Status = StatusEmpty
	}
	return w
}

// PadDevices garante desktop, mobile e tablet na lista, com zero quando ausentes
func PadDevices(devices []domain.DeviceUsage) []domain.DeviceUsage {
	out := make([]domain.DeviceUsage, len(devices))
	copy(out, devices)

	for _, name := range expectedDevices {
		found := false
		for _, d := range out {
			if d.Device == name {
				found = true
				break
			}
		}
		if !found {
			out = append(out, domain.DeviceUsage{Device: name})
		}
	}
	return out
}

// PageViewsPoints converte o relatório tabular em pontos da série temporal
func PageViewsPoints(report domain.PageViewsReport) []domain.PageViewsPoint {
	pageViewsIdx, activeUsersIdx := 0, 1
	for i, h := range report.MetricHeaders {
		switch h.Name {
		case "pageViews", "screenPageViews":
			pageViewsIdx = i
		case "activeUsers":
			activeUsersIdx = i
		}
	}

	metric := func(row domain.ReportRow, i int) int64 {
		if i >= len(row.MetricValues) {
			return 0
		}
		v, err := utils.ParseInt64(row.MetricValues[i].Value)
		if err != nil {
			return 0
		}
		return v
	}

	points := make([]domain.PageViewsPoint, 0, len(report.Rows))
	for _, row := range report.Rows {
		var date string
		if len(row.DimensionValues) > 0 {
			date = row.DimensionValues[0].Value
		}
		points = append(points, domain.PageViewsPoint{
			Date:        date,
			PageViews:   metric(row, pageViewsIdx),
			ActiveUsers: metric(row, activeUsersIdx),
		})
	}
	return points
}
