package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/analytics-dashboard-api/pkg/dashboardclient"
	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dateRangeFromQuery lê e normaliza startDate/endDate. Em caso de erro já escreve a resposta 400.
func dateRangeFromQuery(w http.ResponseWriter, r *http.Request, normalizer *reporting.Normalizer, area string) (domain.DateRange, bool) {
	logger := log.ForContext(r.Context())

	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	if startDate == "" || endDate == "" {
		logger.WithFields(log.Fields{
			"start_date": startDate,
			"end_date":   endDate,
		}).Warn(area + ": missing date parameters")

		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, reporting.ErrMissingQueryParameter.Error(), nil)
		return domain.DateRange{}, false
	}

	dateRange, err := normalizer.Normalize(startDate, endDate)
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": startDate,
			"end_date":   endDate,
			"error":      err.Error(),
		}).Warn(area + ": invalid date range")

		code := apiErrors.ErrInvalidFormat
		if errors.Is(err, reporting.ErrInvalidRange) {
			code = apiErrors.ErrInvalidDateRange
		}
		apiErrors.WriteError(w, code, err.Error(), nil)
		return domain.DateRange{}, false
	}

	return dateRange, true
}

// reportHandler é o fluxo comum das rotas /api: datas, busca (sempre com fallback) e resposta
func reportHandler[T any](
	category string,
	normalizer *reporting.Normalizer,
	fetch func(context.Context, domain.DateRange) domain.Report[T],
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dateRange, ok := dateRangeFromQuery(w, r, normalizer, "reports")
		if !ok {
			return
		}

		report := fetch(r.Context(), dateRange)

		payload, err := json.Marshal(report.Data)
		if err != nil {
			logger.WithFields(log.Fields{
				"category": category,
				"error":    err.Error(),
			}).Error("reports: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"category":   category,
			"start_date": dateRange.StartDate(),
			"end_date":   dateRange.EndDate(),
			"mock":       report.IsMockData,
		}).Debug("reports: responding")

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(dashboardclient.MockDataHeader, strconv.FormatBool(report.IsMockData))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(payload); err != nil {
			logger.WithError(err).Warn("reports: failed to write response")
		}
	})
}

func GetPageViews(service reporting.Reporter, normalizer *reporting.Normalizer) http.Handler {
	return reportHandler(reporting.CategoryPageViews, normalizer, service.PageViews)
}

func GetSummaryMetrics(service reporting.Reporter, normalizer *reporting.Normalizer) http.Handler {
	return reportHandler(reporting.CategorySummary, normalizer, service.SummaryMetrics)
}

func GetTrafficSources(service reporting.Reporter, normalizer *reporting.Normalizer) http.Handler {
	return reportHandler(reporting.CategoryTrafficSources, normalizer, service.TrafficSources)
}

func GetDeviceUsage(service reporting.Reporter, normalizer *reporting.Normalizer) http.Handler {
	return reportHandler(reporting.CategoryDeviceUsage, normalizer, service.DeviceUsage)
}

func GetVisitsByCountry(service reporting.Reporter, normalizer *reporting.Normalizer) http.Handler {
	return reportHandler(reporting.CategoryVisitsByCountry, normalizer, service.VisitsByCountry)
}

func GetTopPages(service reporting.Reporter, normalizer *reporting.Normalizer) http.Handler {
	return reportHandler(reporting.CategoryTopPages, normalizer, service.TopPages)
}
