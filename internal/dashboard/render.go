package dashboard

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"time"
)

// PageOptions são os dados fixos da página
type PageOptions struct {
	Title  string
	Path   string
	Charts ChartOptions
	Now    time.Time
}

type chartView struct {
	Status     string
	IsMockData bool
	Err        string
	SrcDoc     string
	RetryURL   string
}

type pageView struct {
	Title        string
	StartDate    string
	EndDate      string
	MaxDate      string
	RetryURL     string
	Error        string
	HasMockData  bool
	State        State
	SummaryState string
	PageViews    chartView
	Traffic      chartView
	Devices      chartView
	Countries    chartView
	TopPages     string
}

// Render escreve a página HTML do dashboard para o estado informado
func Render(w io.Writer, state State, page PageOptions) error {
	if page.Title == "" {
		page.Title = "Analytics Dashboard"
	}
	if page.Path == "" {
		page.Path = "/dashboard"
	}
	if page.Now.IsZero() {
		page.Now = time.Now()
	}

	view := pageView{
		Title:        page.Title,
		StartDate:    state.Range.StartDate(),
		EndDate:      state.Range.EndDate(),
		MaxDate:      page.Now.Format(time.DateOnly),
		HasMockData:  state.HasMockData(),
		State:        state,
		SummaryState: state.Summary.Status.String(),
		TopPages:     state.TopPages.Status.String(),
	}

	query := url.Values{}
	query.Set("startDate", view.StartDate)
	query.Set("endDate", view.EndDate)
	query.Set("refresh", fmt.Sprint(state.Token+1))
	view.RetryURL = page.Path + "?" + query.Encode()

	if state.Err != nil {
		view.Error = state.Err.Error()
	}

	var err error
	if view.PageViews, err = chart(state.PageViews, func() (string, error) {
		return renderPageViewsChart(state.PageViews.Data, page.Charts)
	}); err != nil {
		return err
	}
	if view.Traffic, err = chart(state.TrafficSources, func() (string, error) {
		return renderBreakdownBarChart("Traffic sources", "Sessions", state.TrafficSources.Data, page.Charts)
	}); err != nil {
		return err
	}
	if view.Devices, err = chart(state.DeviceUsage, func() (string, error) {
		return renderDevicesChart(state.DeviceUsage.Data, page.Charts)
	}); err != nil {
		return err
	}
	if view.Countries, err = chart(state.VisitsByCountry, func() (string, error) {
		return renderBreakdownBarChart("Visits by country", "Users", state.VisitsByCountry.Data, page.Charts)
	}); err != nil {
		return err
	}

	for _, c := range []*chartView{&view.PageViews, &view.Traffic, &view.Devices, &view.Countries} {
		c.RetryURL = view.RetryURL
	}

	return pageTemplate.Execute(w, view)
}

func chart[T any](w Widget[T], render func() (string, error)) (chartView, error) {
	view := chartView{Status: w.Status.String(), IsMockData: w.IsMockData}
	if w.Err != nil {
		view.Err = w.Err.Error()
	}
	if w.Status != StatusSuccess {
		return view, nil
	}

	html, err := render()
	if err != nil {
		return view, fmt.Errorf("dashboard: render chart: %w", err)
	}
	view.SrcDoc = html
	return view, nil
}

var pageTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"percent": func(v float64) string { return fmt.Sprintf("%g%%", v) },
	"seconds": func(v float64) string { return fmt.Sprintf("%.1fs", v) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <form method="get">
    <label>Start <input type="date" name="startDate" value="{{.StartDate}}" max="{{.MaxDate}}"></label>
    <label>End <input type="date" name="endDate" value="{{.EndDate}}" max="{{.MaxDate}}"></label>
    <button type="submit">Apply</button>
    <a href="{{.RetryURL}}">Refresh</a>
  </form>
  {{if .HasMockData}}<p class="notice">Showing sample data for some widgets.</p>{{end}}
  {{if .Error}}<p class="error">{{.Error}} <a href="{{.RetryURL}}">Retry</a></p>{{end}}
</header>

<section class="summary" data-status="{{.SummaryState}}">
  {{with .State.Summary}}{{if eq .Status.String "success"}}
  <div><span>Users</span><strong>{{.Data.Users}}</strong></div>
  <div><span>New users</span><strong>{{.Data.NewUsers}}</strong></div>
  <div><span>Sessions</span><strong>{{.Data.Sessions}}</strong></div>
  <div><span>Page views</span><strong>{{.Data.PageViews}}</strong></div>
  <div><span>Bounce rate</span><strong>{{percent .Data.BounceRate}}</strong></div>
  {{if .IsMockData}}<small>sample data</small>{{end}}
  {{else if eq .Status.String "empty"}}<p>No data for this period.</p>
  {{else if eq .Status.String "error"}}<p class="widget-error">{{.Err}} <a href="{{$.RetryURL}}">Retry</a></p>{{end}}{{end}}
</section>

{{define "chart"}}
<section class="chart" data-status="{{.Status}}">
  {{if .SrcDoc}}<iframe srcdoc="{{.SrcDoc}}" style="width:100%;height:400px;border:0"></iframe>
  {{if .IsMockData}}<small>sample data</small>{{end}}
  {{else if eq .Status "empty"}}<p>No data for this period.</p>
  {{else if eq .Status "loading"}}<p>Loading…</p>
  {{else if eq .Status "error"}}<p class="widget-error">{{.Err}} <a href="{{.RetryURL}}">Retry</a></p>{{end}}
</section>
{{end}}

{{template "chart" .PageViews}}
{{template "chart" .Traffic}}
{{template "chart" .Devices}}
{{template "chart" .Countries}}

<section class="countries" data-status="{{.Countries.Status}}">
  {{with .State.VisitsByCountry}}{{if eq .Status.String "success"}}
  <table>
    <thead><tr><th>Country</th><th>Users</th><th>Share</th></tr></thead>
    <tbody>{{range .Data}}<tr><td>{{.Label}}</td><td>{{.Count}}</td><td>{{percent .Percentage}}</td></tr>{{end}}</tbody>
  </table>
  {{end}}{{end}}
</section>

<section class="top-pages" data-status="{{.TopPages}}">
  {{with .State.TopPages}}{{if eq .Status.String "success"}}
  <table>
    <thead><tr><th>Page</th><th>Views</th><th>Avg. time on page</th></tr></thead>
    <tbody>{{range .Data}}<tr><td>{{.PagePath}}</td><td>{{.PageViews}}</td><td>{{seconds .AvgTimeOnPage}}</td></tr>{{end}}</tbody>
  </table>
  {{if .IsMockData}}<small>sample data</small>{{end}}
  {{else if eq .Status.String "empty"}}<p>No data for this period.</p>
  {{else if eq .Status.String "error"}}<p class="widget-error">{{.Err}} <a href="{{$.RetryURL}}">Retry</a></p>{{end}}{{end}}
</section>
</body>
</html>
`))
