package handler

import (
	"net/http"

	"github.com/vfg2006/analytics-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/analytics-dashboard-api/internal/dashboard"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/history"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/dashboardclient"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Reports são as rotas consumidas pelos widgets do dashboard
func Reports(service reporting.Reporter, normalizer *reporting.Normalizer) []router.Route {
	return []router.Route{
		{
			Path:    dashboardclient.PathAnalytics,
			Method:  http.MethodGet,
			Handler: GetPageViews(service, normalizer),
		},
		{
			Path:    dashboardclient.PathSummaryMetrics,
			Method:  http.MethodGet,
			Handler: GetSummaryMetrics(service, normalizer),
		},
		{
			Path:    dashboardclient.PathTrafficSources,
			Method:  http.MethodGet,
			Handler: GetTrafficSources(service, normalizer),
		},
		{
			Path:    dashboardclient.PathDeviceUsage,
			Method:  http.MethodGet,
			Handler: GetDeviceUsage(service, normalizer),
		},
		{
			Path:    dashboardclient.PathVisitsByCountry,
			Method:  http.MethodGet,
			Handler: GetVisitsByCountry(service, normalizer),
		},
		{
			Path:    dashboardclient.PathTopPages,
			Method:  http.MethodGet,
			Handler: GetTopPages(service, normalizer),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Dashboard(api dashboard.API, normalizer *reporting.Normalizer, charts dashboard.ChartOptions) []router.Route {
	page := DashboardPage(api, normalizer, charts)

	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: page,
		},
		{
			Path:    "/dashboard",
			Method:  http.MethodGet,
			Handler: page,
		},
	}
}

func Snapshots(service history.Lister) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshots",
			Method:  http.MethodGet,
			Handler: ListSnapshots(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
