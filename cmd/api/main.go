package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/analytics-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4"
	"github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gaclient"
	"github.com/vfg2006/analytics-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/analytics-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/analytics-dashboard-api/internal/api"
	"github.com/vfg2006/analytics-dashboard-api/internal/config"
	"github.com/vfg2006/analytics-dashboard-api/internal/scheduler"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/history"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/dashboardclient"
	"github.com/vfg2006/analytics-dashboard-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appMetrics := metrics.New()

	// Sem credenciais o GA4 não é chamado e todas as rotas respondem com dados de exemplo
	var upstream reporting.Upstream
	gaClient, err := gaclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Warn("ga4: client not configured, serving sample data")
	} else {
		upstream = ga4.New(gaClient)
		logrus.WithField("property_id", gaClient.PropertyID()).Info("ga4: client configured")
	}

	reporter := reporting.NewService(upstream, cfg.GA4.RequestTimeout, appMetrics)
	normalizer := reporting.NewNormalizer(cfg.Dashboard.LookbackDays)

	deps := api.Dependencies{
		Reporter:   reporter,
		Normalizer: normalizer,
		Metrics:    appMetrics,
	}

	// A página só chama um backend remoto quando ele é configurado explicitamente
	if cfg.Dashboard.APIURL != "" {
		deps.DashboardAPI = dashboardclient.New(cfg.Dashboard.APIURL, cfg.Dashboard.WidgetTimeout, nil)
		logrus.WithField("api_url", cfg.Dashboard.APIURL).Info("dashboard: widgets use remote API")
	}

	// Histórico de snapshots só existe com banco configurado
	if cfg.Database.IsConfigured() {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if err := migration.Apply(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("migration: failed to apply schema")
		}

		snapshotRepo := repository.NewSnapshotRepository(pgConn)
		deps.History = history.NewService(snapshotRepo, cfg.GA4.PropertyID, normalizer)

		// Ontem direto do GA4, sem o fallback de dados de exemplo
		var fetcher reporting.SummaryFetcher = upstream
		snapshotSync := scheduler.NewSnapshotSyncService(snapshotRepo, fetcher, appMetrics, cfg)
		if err := snapshotSync.Start(ctx); err != nil {
			logrus.WithError(err).Error("snapshots: failed to start scheduler")
		}
		deps.SnapshotSync = snapshotSync
	} else {
		logrus.Info("database not configured, snapshot history disabled")
	}

	server, err := api.New(cfg, deps)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
