package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/vfg2006/analytics-dashboard-api/internal/dashboard"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
)

// DashboardPage renderiza o dashboard no servidor. Cada requisição monta um Shell
// próprio sobre o backend configurado na inicialização.
func DashboardPage(api dashboard.API, normalizer *reporting.Normalizer, charts dashboard.ChartOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		shell := dashboard.NewShell(api, normalizer)

		query := r.URL.Query()
		startDate, endDate := query.Get("startDate"), query.Get("endDate")
		if startDate != "" || endDate != "" {
			if err := shell.SetRange(startDate, endDate); err != nil {
				logger.WithFields(log.Fields{
					"start_date": startDate,
					"end_date":   endDate,
					"error":      err.Error(),
				}).Warn("dashboard: invalid date range selected")
			}
		}

		state, err := shell.Load(r.Context())
		if err != nil && !errors.Is(err, dashboard.ErrSuperseded) {
			logger.WithError(err).Info("dashboard: request cancelled before widgets finished")
			return
		}

		var page bytes.Buffer
		err = dashboard.Render(&page, state, dashboard.PageOptions{
			Path:   r.URL.Path,
			Charts: charts,
			Now:    normalizer.Today(),
		})
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to render page")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if _, err := page.WriteTo(w); err != nil {
			logger.WithError(err).Warn("dashboard: failed to write page")
		}
	})
}
