package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/analytics-dashboard-api/internal/config"
	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/history"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/utils"
)

// Resultados de uma execução, também usados como rótulo das métricas
const (
	SyncResultStored  = "stored"
	SyncResultEmpty   = "empty"
	SyncResultSkipped = "skipped"
	SyncResultError   = "error"
)

var ErrSyncRunning = errors.New("snapshot sync already running")

// SyncRecorder recebe o resultado de cada execução (métricas)
type SyncRecorder interface {
	ObserveSnapshotSync(result string)
}

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule   string
	RetentionDays  int
	PropertyID     string
	RequestTimeout time.Duration
	SyncEnabled    bool
}

// SnapshotSyncService grava diariamente o resumo do dia anterior vindo do GA4.
// Dados de exemplo nunca são gravados.
type SnapshotSyncService struct {
	scheduler *gocron.Scheduler
	config    SnapshotSyncConfig
	store     history.SnapshotRepository
	fetcher   reporting.SummaryFetcher
	recorder  SyncRecorder
	now       func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          string
}

func NewSnapshotSyncService(
	store history.SnapshotRepository,
	fetcher reporting.SummaryFetcher,
	recorder SyncRecorder,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:   appConfig.SnapshotSync.CronSchedule,
		RetentionDays:  appConfig.SnapshotSync.RetentionDays,
		PropertyID:     appConfig.GA4.PropertyID,
		RequestTimeout: appConfig.GA4.RequestTimeout,
		SyncEnabled:    appConfig.SnapshotSync.Enabled,
	}
	if syncConfig.RequestTimeout <= 0 {
		syncConfig.RequestTimeout = reporting.DefaultRequestTimeout
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("snapshots: scheduler configuration loaded")

	return &SnapshotSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		store:     store,
		fetcher:   fetcher,
		recorder:  recorder,
		now:       time.Now,
	}
}

// Start agenda a sincronização. Sem GA4 ou sem banco não há o que gravar.
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("snapshots: sync disabled by configuration")
		return nil
	}

	if s.store == nil || s.fetcher == nil {
		logrus.Warn("snapshots: sync enabled but database or GA4 credentials are missing, not scheduling")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("snapshots: starting scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		_, _ = s.SyncNow(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("snapshots: stopping scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncNow busca o resumo de ontem e grava se for dado ao vivo
func (s *SnapshotSyncService) SyncNow(ctx context.Context) (string, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("snapshots: sync already running, skipping")
		return "", ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	result, err := s.sync(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastResult = result
	s.syncMutex.Unlock()

	if s.recorder != nil {
		s.recorder.ObserveSnapshotSync(result)
	}

	return result, err
}

func (s *SnapshotSyncService) sync(ctx context.Context) (string, error) {
	if s.fetcher == nil || s.store == nil {
		return SyncResultSkipped, nil
	}

	today := utils.StartOfDay(s.now())
	yesterday := today.AddDate(0, 0, -1)
	dateRange := domain.DateRange{Start: yesterday, End: yesterday}

	logger := logrus.WithField("date", dateRange.StartDate())

	fetchCtx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	metrics, err := s.fetcher.GetSummaryMetrics(fetchCtx, dateRange)
	cancel()

	if errors.Is(err, reporting.ErrNoData) || (err == nil && metrics == nil) {
		logger.Info("snapshots: no data for date, nothing stored")
		return SyncResultEmpty, nil
	}
	if err != nil {
		logger.WithError(err).Error("snapshots: failed to fetch summary metrics")
		return SyncResultError, err
	}
	if metrics.IsMockData {
		logger.Warn("snapshots: upstream returned sample data, not storing")
		return SyncResultSkipped, nil
	}

	snapshot := &domain.SummarySnapshot{
		PropertyID: s.config.PropertyID,
		Date:       yesterday,
		Users:      metrics.Users,
		NewUsers:   metrics.NewUsers,
		Sessions:   metrics.Sessions,
		PageViews:  metrics.PageViews,
		BounceRate: metrics.BounceRate,
	}

	if err := s.store.Upsert(ctx, snapshot); err != nil {
		logger.WithError(err).Error("snapshots: failed to store snapshot")
		return SyncResultError, err
	}

	logger.WithFields(logrus.Fields{
		"id":    snapshot.ID,
		"users": snapshot.Users,
	}).Info("snapshots: snapshot stored")

	if s.config.RetentionDays > 0 {
		cutoff := today.AddDate(0, 0, -s.config.RetentionDays)
		deleted, err := s.store.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			// O snapshot já foi gravado, a limpeza roda de novo na próxima execução
			logger.WithError(err).Warn("snapshots: failed to apply retention policy")
		} else if deleted > 0 {
			logger.WithFields(logrus.Fields{
				"deleted": deleted,
				"cutoff":  cutoff.Format(time.DateOnly),
			}).Info("snapshots: old snapshots removed")
		}
	}

	return SyncResultStored, nil
}

// TriggerManualSync inicia uma sincronização em background. Devolve false se já houver uma em andamento.
func (s *SnapshotSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("snapshots: sync already running, ignoring manual request")
		return false
	}

	logrus.Info("snapshots: starting manual sync")
	go func() {
		_, _ = s.SyncNow(context.Background())
	}()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"retention_days":         s.config.RetentionDays,
		"last_result":            s.lastResult,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
