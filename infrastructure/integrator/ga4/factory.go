package ga4

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	gadomain "github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gadomain"
	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/pkg/utils"
)

// ErrInvalidMetricValue indica um valor de métrica que não é número.
// A categoria inteira falha e o serviço de relatórios cai nas fixtures.
var ErrInvalidMetricValue = errors.New("ga4: invalid metric value")

// metricReader converte os valores de uma resposta e guarda a primeira falha
type metricReader struct {
	err error
}

func (m *metricReader) count(value, metric string) int64 {
	if value == "" || m.err != nil {
		return 0
	}

	count, err := utils.ParseInt64(value)
	if err != nil {
		m.fail(value, metric, err)
		return 0
	}
	return count
}

func (m *metricReader) float(value, metric string) float64 {
	if value == "" || m.err != nil {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		m.fail(value, metric, err)
		return 0
	}
	return f
}

func (m *metricReader) fail(value, metric string, err error) {
	logrus.WithFields(logrus.Fields{
		"metric": metric,
		"value":  value,
		"error":  err.Error(),
	}).Warn("ga4: error converting metric value")
	m.err = fmt.Errorf("%w: metric %s value %q", ErrInvalidMetricValue, metric, value)
}

// FactorySummaryMetrics lê a primeira linha. bounceRate chega como fração (0-1).
func FactorySummaryMetrics(resp *gadomain.RunReportResponse) (*domain.SummaryMetrics, error) {
	if resp == nil || len(resp.Rows) == 0 {
		return nil, nil
	}

	var m metricReader
	index := resp.MetricIndex()
	row := resp.Rows[0]

	summary := &domain.SummaryMetrics{
		Users:     m.count(row.MetricValue(index, MetricTotalUsers), MetricTotalUsers),
		NewUsers:  m.count(row.MetricValue(index, MetricNewUsers), MetricNewUsers),
		Sessions:  m.count(row.MetricValue(index, MetricSessions), MetricSessions),
		PageViews: m.count(row.MetricValue(index, MetricScreenPageViews), MetricScreenPageViews),
	}
	bounceRate := m.float(row.MetricValue(index, MetricBounceRate), MetricBounceRate)
	if m.err != nil {
		return nil, m.err
	}

	summary.BounceRate = utils.RoundWithOneDecimalPlace(bounceRate * 100)
	return summary, nil
}

func FactoryPageViews(resp *gadomain.RunReportResponse) ([]domain.PageViewsPoint, error) {
	var m metricReader
	index := resp.MetricIndex()

	points := make([]domain.PageViewsPoint, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		points = append(points, domain.PageViewsPoint{
			Date:        row.DimensionValue(0),
			PageViews:   m.count(row.MetricValue(index, MetricScreenPageViews), MetricScreenPageViews),
			ActiveUsers: m.count(row.MetricValue(index, MetricActiveUsers), MetricActiveUsers),
		})
	}
	if m.err != nil {
		return nil, m.err
	}
	return points, nil
}

func FactoryTrafficSources(resp *gadomain.RunReportResponse) ([]domain.TrafficSource, error) {
	var m metricReader
	index := resp.MetricIndex()

	sources := make([]domain.TrafficSource, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		sources = append(sources, domain.TrafficSource{
			Source:   row.DimensionValue(0),
			Sessions: m.count(row.MetricValue(index, MetricSessions), MetricSessions),
		})
	}
	if m.err != nil {
		return nil, m.err
	}
	return sources, nil
}

func FactoryDeviceUsage(resp *gadomain.RunReportResponse) ([]domain.DeviceUsage, error) {
	var m metricReader
	index := resp.MetricIndex()

	devices := make([]domain.DeviceUsage, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		devices = append(devices, domain.DeviceUsage{
			Device: row.DimensionValue(0),
			Users:  m.count(row.MetricValue(index, MetricTotalUsers), MetricTotalUsers),
		})
	}
	if m.err != nil {
		return nil, m.err
	}
	return devices, nil
}

func FactoryCountryVisits(resp *gadomain.RunReportResponse) ([]domain.CountryVisits, error) {
	var m metricReader
	index := resp.MetricIndex()

	countries := make([]domain.CountryVisits, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		countries = append(countries, domain.CountryVisits{
			Country:   row.DimensionValue(0),
			Users:     m.count(row.MetricValue(index, MetricTotalUsers), MetricTotalUsers),
			Sessions:  m.count(row.MetricValue(index, MetricSessions), MetricSessions),
			PageViews: m.count(row.MetricValue(index, MetricScreenPageViews), MetricScreenPageViews),
		})
	}
	if m.err != nil {
		return nil, m.err
	}
	return countries, nil
}

// FactoryTopPages calcula o tempo médio por página como engajamento / visualizações
func FactoryTopPages(resp *gadomain.RunReportResponse) ([]domain.TopPage, error) {
	var m metricReader
	index := resp.MetricIndex()

	pages := make([]domain.TopPage, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		views := m.count(row.MetricValue(index, MetricScreenPageViews), MetricScreenPageViews)
		engagement := m.float(row.MetricValue(index, MetricUserEngagementDuration), MetricUserEngagementDuration)

		var avg float64
		if views > 0 {
			avg = utils.RoundWithOneDecimalPlace(engagement / float64(views))
		}

		pages = append(pages, domain.TopPage{
			PagePath:      row.DimensionValue(0),
			PageViews:     views,
			AvgTimeOnPage: avg,
		})
	}
	if m.err != nil {
		return nil, m.err
	}
	return pages, nil
}
