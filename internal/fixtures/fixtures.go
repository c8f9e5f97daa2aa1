// Package fixtures concentra os dados de exemplo exibidos quando o GA4 não está disponível.
// São usados pelo fallback do servidor, pelos widgets do dashboard e pelos testes.
package fixtures

import (
	"strconv"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
)

var summaryMetrics = domain.SummaryMetrics{
	Users:      545,
	NewUsers:   324,
	Sessions:   678,
	PageViews:  1245,
	BounceRate: 42.8,
	IsMockData: true,
}

var trafficSources = []domain.TrafficSource{
	{Source: "google", Sessions: 160},
	{Source: "(direct)", Sessions: 98},
	{Source: "bing", Sessions: 8},
	{Source: "(not set)", Sessions: 5},
	{Source: "in.search.yahoo.com", Sessions: 5},
	{Source: "linkedin.com", Sessions: 4},
	{Source: "payuin.lightningforce.com", Sessions: 3},
	{Source: "i.instagram.com", Sessions: 2},
	{Source: "facebook.com", Sessions: 2},
	{Source: "t.facebook.com", Sessions: 2},
}

var deviceUsage = []domain.DeviceUsage{
	{Device: "desktop", Users: 388},
	{Device: "mobile", Users: 138},
	{Device: "tablet", Users: 0},
}

var visitsByCountry = []domain.CountryVisits{
	{Country: "India", Users: 300, Sessions: 400, PageViews: 663},
	{Country: "United States", Users: 57, Sessions: 68, PageViews: 84},
	{Country: "China", Users: 14, Sessions: 14, PageViews: 7},
	{Country: "Singapore", Users: 13, Sessions: 15, PageViews: 16},
	{Country: "United Kingdom", Users: 9, Sessions: 9, PageViews: 14},
	{Country: "Canada", Users: 5, Sessions: 5, PageViews: 7},
	{Country: "France", Users: 5, Sessions: 7, PageViews: 13},
	{Country: "Australia", Users: 4, Sessions: 4, PageViews: 6},
	{Country: "Malaysia", Users: 4, Sessions: 8, PageViews: 12},
	{Country: "(not set)", Users: 2, Sessions: 2, PageViews: 2},
}

var topPages = []domain.TopPage{
	{PagePath: "/", PageViews: 450, AvgTimeOnPage: 75.5},
	{PagePath: "/about", PageViews: 200, AvgTimeOnPage: 45.2},
	{PagePath: "/contact", PageViews: 150, AvgTimeOnPage: 30.8},
	{PagePath: "/products", PageViews: 120, AvgTimeOnPage: 65.3},
	{PagePath: "/blog", PageViews: 100, AvgTimeOnPage: 120.1},
}

var pageViews = []domain.PageViewsPoint{
	{Date: "20230101", PageViews: 120, ActiveUsers: 45},
	{Date: "20230102", PageViews: 145, ActiveUsers: 52},
	{Date: "20230103", PageViews: 132, ActiveUsers: 48},
	{Date: "20230104", PageViews: 168, ActiveUsers: 61},
	{Date: "20230105", PageViews: 157, ActiveUsers: 57},
	{Date: "20230106", PageViews: 143, ActiveUsers: 52},
	{Date: "20230107", PageViews: 128, ActiveUsers: 46},
}

// As funções abaixo sempre devolvem cópias, quem recebe pode alterar à vontade

func SummaryMetrics() domain.SummaryMetrics {
	return summaryMetrics
}

func TrafficSources() []domain.TrafficSource {
	return append([]domain.TrafficSource(nil), trafficSources...)
}

func DeviceUsage() []domain.DeviceUsage {
	return append([]domain.DeviceUsage(nil), deviceUsage...)
}

func VisitsByCountry() []domain.CountryVisits {
	return append([]domain.CountryVisits(nil), visitsByCountry...)
}

func TopPages() []domain.TopPage {
	return append([]domain.TopPage(nil), topPages...)
}

func PageViews() domain.PageViewsReport {
	return NewPageViewsReport(pageViews)
}

// NewPageViewsReport monta o relatório no formato tabular do GA4
func NewPageViewsReport(points []domain.PageViewsPoint) domain.PageViewsReport {
	rows := make([]domain.ReportRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, domain.ReportRow{
			DimensionValues: []domain.ReportValue{{Value: p.Date}},
			MetricValues: []domain.ReportValue{
				{Value: strconv.FormatInt(p.PageViews, 10)},
				{Value: strconv.FormatInt(p.ActiveUsers, 10)},
			},
		})
	}

	return domain.PageViewsReport{
		DimensionHeaders: []domain.HeaderName{{Name: "date"}},
		MetricHeaders:    []domain.HeaderName{{Name: "pageViews"}, {Name: "activeUsers"}},
		Rows:             rows,
	}
}
