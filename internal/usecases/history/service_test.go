package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/history/mocks"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
)

func newTestService(repo SnapshotRepository) *Service {
	normalizer := reporting.NewNormalizer(reporting.DefaultLookbackDays)
	normalizer.Now = func() time.Time {
		return time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	}
	return NewService(repo, "123456", normalizer)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSnapshotRepository(ctrl)
	service := newTestService(repo)
	ctx := context.Background()

	t.Run("lista fora da janela do dashboard", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		stored := []domain.SummarySnapshot{{ID: "abc", PropertyID: "123456", Date: start, Users: 10}}

		repo.EXPECT().ListByDateRange(ctx, "123456", start, end).Return(stored, nil)

		got, err := service.List(ctx, "2024-06-01", "2024-06-30")

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("resultado vazio nunca é nil", func(t *testing.T) {
		repo.EXPECT().ListByDateRange(ctx, "123456", gomock.Any(), gomock.Any()).Return(nil, nil)

		got, err := service.List(ctx, "2025-03-01", "2025-03-02")

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("erro do banco", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		repo.EXPECT().ListByDateRange(ctx, "123456", gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := service.List(ctx, "2025-03-01", "2025-03-02")

		assert.ErrorIs(t, err, dbErr)
	})

	validation := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   error
	}{
		{name: "sem datas", startDate: "", endDate: "2025-03-02", wantErr: reporting.ErrMissingQueryParameter},
		{name: "formato inválido", startDate: "03/01/2025", endDate: "2025-03-02", wantErr: reporting.ErrInvalidDateFormat},
		{name: "invertido", startDate: "2025-03-05", endDate: "2025-03-02", wantErr: reporting.ErrInvalidRange},
	}

	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.List(ctx, tt.startDate, tt.endDate)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
