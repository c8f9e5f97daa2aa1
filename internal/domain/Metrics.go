package domain

// SummaryMetrics são os contadores do topo do dashboard
type SummaryMetrics struct {
	Users      int64   `json:"users"`
	NewUsers   int64   `json:"newUsers"`
	Sessions   int64   `json:"sessions"`
	PageViews  int64   `json:"pageViews"`
	BounceRate float64 `json:"bounceRate"`
	IsMockData bool    `json:"isMockData"`
}

type TrafficSource struct {
	Source   string `json:"source"`
	Sessions int64  `json:"sessions"`
}

type DeviceUsage struct {
	Device string `json:"device"`
	Users  int64  `json:"users"`
}

type CountryVisits struct {
	Country   string `json:"country"`
	Users     int64  `json:"users"`
	Sessions  int64  `json:"sessions"`
	PageViews int64  `json:"pageViews"`
}

type TopPage struct {
	PagePath      string  `json:"pagePath"`
	PageViews     int64   `json:"pageViews"`
	AvgTimeOnPage float64 `json:"avgTimeOnPage"`
}

type HeaderName struct {
	Name string `json:"name"`
}

type ReportValue struct {
	Value string `json:"value"`
}

type ReportRow struct {
	DimensionValues []ReportValue `json:"dimensionValues"`
	MetricValues    []ReportValue `json:"metricValues"`
}

// PageViewsReport mantém o formato tabular do GA4 (date -> pageViews, activeUsers)
type PageViewsReport struct {
	DimensionHeaders []HeaderName `json:"dimensionHeaders"`
	MetricHeaders    []HeaderName `json:"metricHeaders"`
	Rows             []ReportRow  `json:"rows"`
}

// PageViewsPoint é uma linha do PageViewsReport já convertida
type PageViewsPoint struct {
	Date        string
	PageViews   int64
	ActiveUsers int64
}

// Report envolve o payload de uma categoria e indica se veio do fallback
type Report[T any] struct {
	Data       T
	IsMockData bool
}
