package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/analytics-dashboard-api/internal/api/handler"
	"github.com/vfg2006/analytics-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/analytics-dashboard-api/internal/config"
	"github.com/vfg2006/analytics-dashboard-api/internal/dashboard"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/history"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/analytics-dashboard-api/pkg/dashboardclient"
	"github.com/vfg2006/analytics-dashboard-api/pkg/metrics"
	"github.com/vfg2006/analytics-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Dependencies são os serviços montados em main. History e SnapshotSync
// ficam nil quando não há banco configurado. Sem DashboardAPI a página usa
// o Reporter do próprio processo.
type Dependencies struct {
	Reporter     reporting.Reporter
	Normalizer   *reporting.Normalizer
	DashboardAPI dashboard.API
	Charts       dashboard.ChartOptions
	History      history.Lister
	SnapshotSync handler.SyncJob
	Metrics      *metrics.Metrics
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              config.Server.Address(),
			Handler:           NewHandler(config, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o router com a cadeia de middlewares
func NewHandler(config *config.Config, deps Dependencies) http.Handler {
	cronServices := handler.CronJobServices{
		SnapshotSync: deps.SnapshotSync,
	}

	dashboardAPI := deps.DashboardAPI
	if dashboardAPI == nil {
		dashboardAPI = dashboard.NewReporterAPI(deps.Reporter)
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Reports(deps.Reporter, deps.Normalizer)...),
		router.WithRoutes(handler.Dashboard(dashboardAPI, deps.Normalizer, deps.Charts)...),
		router.WithRoutes(handler.Metrics(deps.Metrics.Handler())...),
		router.WithRoutes(handler.Snapshots(deps.History)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Not found", nil)
		})),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(deps.Metrics),
		middleware.Cors(config.Cors.AllowedOrigins, dashboardclient.MockDataHeader),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server: listen failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("server: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("server: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("server: graceful shutdown started")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: shutdown failed")
		return err
	}

	logrus.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
