package history

import (
	"context"
	"time"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
)

// SnapshotRepository persiste o resumo diário (tabela summary_snapshots)
type SnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *domain.SummarySnapshot) error
	ListByDateRange(ctx context.Context, propertyID string, startDate, endDate time.Time) ([]domain.SummarySnapshot, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Lister expõe o histórico para a API
type Lister interface {
	List(ctx context.Context, startDate, endDate string) ([]domain.SummarySnapshot, error)
}
