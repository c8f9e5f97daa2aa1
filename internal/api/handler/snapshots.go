package handler

import (
	"net/http"

	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/history"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
)

// ListSnapshots devolve o histórico diário gravado. Sem banco configurado responde 503.
func ListSnapshots(service history.Lister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Snapshot history is not configured", nil)
			return
		}

		startDate := r.URL.Query().Get("startDate")
		endDate := r.URL.Query().Get("endDate")

		snapshots, err := service.List(r.Context(), startDate, endDate)
		if err != nil {
			switch {
			case reporting.IsValidationError(err):
				logger.WithFields(log.Fields{
					"start_date": startDate,
					"end_date":   endDate,
					"error":      err.Error(),
				}).Warn("snapshots: invalid query")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list snapshots", nil)
			}
			return
		}

		logger.WithField("count", len(snapshots)).Debug("snapshots: listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithError(err).Error("snapshots: failed to encode response")
		}
	})
}
