package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/analytics-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
)

// Tipos de cron job aceitos em /v1/cron/:type
const (
	CronJobTypeSnapshots = "snapshots"
	CronJobTypeAll       = "all"
)

// SyncJob é um agendador que pode ser disparado manualmente
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	SnapshotSync SyncJob
}

func (s CronJobServices) jobs() map[string]SyncJob {
	jobs := map[string]SyncJob{}
	if s.SnapshotSync != nil {
		jobs[CronJobTypeSnapshots] = s.SnapshotSync
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		jobs := services.jobs()

		var selected map[string]SyncJob
		switch cronType {
		case CronJobTypeAll:
			selected = jobs
		default:
			job, ok := jobs[cronType]
			if !ok {
				logger.WithField("job", cronType).Warn("cron: unknown or disabled job type")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: snapshots, all", nil)
				return
			}
			selected = map[string]SyncJob{cronType: job}
		}

		started := map[string]bool{}
		for name, job := range selected {
			started[name] = job.TriggerManualSync()
		}

		logger.WithFields(log.Fields{
			"job":     cronType,
			"started": started,
		}).Info("cron: manual run requested")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job started",
			"type":    cronType,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("cron: failed to encode status")
		}
	})
}
