package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/pkg/utils"
)

const DefaultLookbackDays = 60

// Normalizer ajusta o intervalo pedido para a política do dashboard:
// nada no futuro, nada invertido e no máximo LookbackDays para trás
type Normalizer struct {
	LookbackDays int
	Now          func() time.Time
}

func NewNormalizer(lookbackDays int) *Normalizer {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	return &Normalizer{
		LookbackDays: lookbackDays,
		Now:          time.Now,
	}
}

func (n *Normalizer) Today() time.Time {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	return utils.StartOfDay(now())
}

func (n *Normalizer) Normalize(startDate, endDate string) (domain.DateRange, error) {
	today := n.Today()
	loc := today.Location()

	start, err := utils.ParseCalendarDate(startDate, loc)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: start date %q", ErrInvalidDateFormat, startDate)
	}

	end, err := utils.ParseCalendarDate(endDate, loc)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: end date %q", ErrInvalidDateFormat, endDate)
	}

	if end.After(today) {
		end = today
	}

	if start.After(end) {
		return domain.DateRange{}, ErrInvalidRange
	}

	oldest := today.AddDate(0, 0, -n.LookbackDays)
	if start.Before(oldest) {
		start = oldest
	}

	// O intervalo inteiro pode estar antes da janela permitida
	if start.After(end) {
		return domain.DateRange{}, ErrInvalidRange
	}

	return domain.DateRange{Start: start, End: end}, nil
}

// DefaultRange é o intervalo inicial do dashboard: primeiro dia do mês até hoje
func (n *Normalizer) DefaultRange() domain.DateRange {
	today := n.Today()
	start := utils.FirstDayOfMonth(today)

	oldest := today.AddDate(0, 0, -n.LookbackDays)
	if start.Before(oldest) {
		start = oldest
	}

	return domain.DateRange{Start: start, End: today}
}
