package history

import (
	"context"
	"fmt"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
	"github.com/vfg2006/analytics-dashboard-api/pkg/utils"
)

// Service lê o histórico gravado pelo agendador. O histórico não passa pela
// janela de 60 dias do dashboard, vale o que estiver retido no banco.
type Service struct {
	repo       SnapshotRepository
	propertyID string
	normalizer *reporting.Normalizer
}

func NewService(repo SnapshotRepository, propertyID string, normalizer *reporting.Normalizer) *Service {
	return &Service{
		repo:       repo,
		propertyID: propertyID,
		normalizer: normalizer,
	}
}

func (s *Service) List(ctx context.Context, startDate, endDate string) ([]domain.SummarySnapshot, error) {
	if startDate == "" || endDate == "" {
		return nil, reporting.ErrMissingQueryParameter
	}

	loc := s.normalizer.Today().Location()

	start, err := utils.ParseCalendarDate(startDate, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q", reporting.ErrInvalidDateFormat, startDate)
	}

	end, err := utils.ParseCalendarDate(endDate, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: end date %q", reporting.ErrInvalidDateFormat, endDate)
	}

	if start.After(end) {
		return nil, reporting.ErrInvalidRange
	}

	snapshots, err := s.repo.ListByDateRange(ctx, s.propertyID, start, end)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"start_date": startDate,
			"end_date":   endDate,
			"error":      err.Error(),
		}).Error("history: failed to list snapshots")
		return nil, err
	}

	if snapshots == nil {
		snapshots = []domain.SummarySnapshot{}
	}
	return snapshots, nil
}
