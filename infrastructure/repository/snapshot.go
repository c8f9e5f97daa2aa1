package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/vfg2006/analytics-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/history"
)

const (
	snapshotsTable = "summary_snapshots"

	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var snapshotColumns = []string{
	"id", "property_id", "date", "users", "new_users", "sessions",
	"page_views", "bounce_rate", "created_at", "updated_at",
}

type snapshotRepository struct {
	conn postgres.Queryer
}

var _ history.SnapshotRepository = (*snapshotRepository)(nil)

func NewSnapshotRepository(conn postgres.Queryer) history.SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func newSnapshotID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

func upsertSnapshotQuery(snapshot *domain.SummarySnapshot) (string, []any, error) {
	return squirrel.StatementBuilder.
		Insert(snapshotsTable).
		Columns("id", "property_id", "date", "users", "new_users", "sessions", "page_views", "bounce_rate").
		Values(
			snapshot.ID,
			snapshot.PropertyID,
			snapshot.Date.Format(time.DateOnly),
			snapshot.Users,
			snapshot.NewUsers,
			snapshot.Sessions,
			snapshot.PageViews,
			snapshot.BounceRate,
		).
		Suffix(`
			ON CONFLICT (property_id, date) DO UPDATE SET
				users = EXCLUDED.users,
				new_users = EXCLUDED.new_users,
				sessions = EXCLUDED.sessions,
				page_views = EXCLUDED.page_views,
				bounce_rate = EXCLUDED.bounce_rate,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func listSnapshotsQuery(propertyID string, startDate, endDate time.Time) (string, []any, error) {
	return squirrel.
		Select(snapshotColumns...).
		From(snapshotsTable).
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func deleteSnapshotsQuery(cutoff time.Time) (string, []any, error) {
	return squirrel.
		Delete(snapshotsTable).
		Where(squirrel.Lt{"date": cutoff.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// Upsert grava o resumo do dia; se já existir para a propriedade, atualiza os contadores
func (r *snapshotRepository) Upsert(ctx context.Context, snapshot *domain.SummarySnapshot) error {
	if snapshot.ID == "" {
		id, err := newSnapshotID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	query, args, err := upsertSnapshotQuery(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&snapshot.ID, &snapshot.CreatedAt, &snapshot.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *snapshotRepository) ListByDateRange(ctx context.Context, propertyID string, startDate, endDate time.Time) ([]domain.SummarySnapshot, error) {
	query, args, err := listSnapshotsQuery(propertyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.SummarySnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// DeleteOlderThan remove os dias anteriores ao corte (política de retenção)
func (r *snapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := deleteSnapshotsQuery(cutoff)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanSnapshot(rows *sql.Rows) (domain.SummarySnapshot, error) {
	var snapshot domain.SummarySnapshot

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.PropertyID,
		&snapshot.Date,
		&snapshot.Users,
		&snapshot.NewUsers,
		&snapshot.Sessions,
		&snapshot.PageViews,
		&snapshot.BounceRate,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	return snapshot, err
}
