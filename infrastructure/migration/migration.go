package migration

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/analytics-dashboard-api/infrastructure/database/postgres"
)

// Cada passo é idempotente, pode rodar a cada inicialização
var steps = []struct {
	name string
	sql  string
}{
	{
		name: "create summary_snapshots",
		sql: `CREATE TABLE IF NOT EXISTS summary_snapshots (
			id VARCHAR(21) PRIMARY KEY,
			property_id VARCHAR(64) NOT NULL,
			date DATE NOT NULL,
			users BIGINT NOT NULL DEFAULT 0,
			new_users BIGINT NOT NULL DEFAULT 0,
			sessions BIGINT NOT NULL DEFAULT 0,
			page_views BIGINT NOT NULL DEFAULT 0,
			bounce_rate NUMERIC(5, 1) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "unique property_id + date",
		sql:  `CREATE UNIQUE INDEX IF NOT EXISTS summary_snapshots_property_date_idx ON summary_snapshots (property_id, date)`,
	},
	{
		name: "index date",
		sql:  `CREATE INDEX IF NOT EXISTS summary_snapshots_date_idx ON summary_snapshots (date)`,
	},
}

// Apply cria o schema do histórico de snapshots
func Apply(ctx context.Context, conn postgres.Queryer) error {
	for _, step := range steps {
		if _, err := conn.ExecContext(ctx, step.sql); err != nil {
			return fmt.Errorf("migration %q: %w", step.name, err)
		}
		logrus.WithField("step", step.name).Debug("migration: step applied")
	}

	logrus.WithField("steps", len(steps)).Info("migration: schema up to date")
	return nil
}
