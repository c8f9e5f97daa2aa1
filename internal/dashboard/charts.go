package dashboard

import (
	"bytes"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
)

const defaultChartHeight = "360px"

// ChartOptions controla a renderização dos gráficos
type ChartOptions struct {
	Theme      string
	AssetsHost string
}

func (o ChartOptions) global(title string) []charts.GlobalOpts {
	theme := o.Theme
	if theme == "" {
		theme = types.ThemeWesteros
	}

	initOpts := opts.Initialization{
		Theme:  theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if o.AssetsHost != "" {
		initOpts.AssetsHost = o.AssetsHost
	}

	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func renderPageViewsChart(points []domain.PageViewsPoint, o ChartOptions) (string, error) {
	xAxis := make([]string, 0, len(points))
	views := make([]opts.LineData, 0, len(points))
	users := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		label := FormatReportDate(p.Date)
		xAxis = append(xAxis, label)
		views = append(views, opts.LineData{Name: label, Value: p.PageViews})
		users = append(users, opts.LineData{Name: label, Value: p.ActiveUsers})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(o.global("Page views")...)
	line.SetXAxis(xAxis).
		AddSeries("Page views", views).
		AddSeries("Active users", users)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return renderChart(line)
}

func renderBreakdownBarChart(title, series string, entries []domain.BreakdownEntry, o ChartOptions) (string, error) {
	xAxis := make([]string, 0, len(entries))
	data := make([]opts.BarData, 0, len(entries))
	for _, e := range entries {
		xAxis = append(xAxis, e.Label)
		data = append(data, opts.BarData{Name: e.Label, Value: e.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(o.global(title)...)
	bar.SetXAxis(xAxis).AddSeries(series, data)

	return renderChart(bar)
}

func renderDevicesChart(entries []domain.BreakdownEntry, o ChartOptions) (string, error) {
	data := make([]opts.PieData, 0, len(entries))
	for _, e := range entries {
		data = append(data, opts.PieData{Name: e.Label, Value: e.Count})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(o.global("Device usage")...)
	pie.AddSeries("Users", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}))

	return renderChart(pie)
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatReportDate converte YYYYMMDD do GA4 em YYYY-MM-DD
func FormatReportDate(date string) string {
	if len(date) != 8 {
		return date
	}
	return date[:4] + "-" + date[4:6] + "-" + date[6:]
}
