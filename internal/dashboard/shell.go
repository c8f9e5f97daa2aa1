package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/analytics-dashboard-api/pkg/log"
)

// ErrSuperseded indica que um ciclo mais novo começou antes deste terminar
var ErrSuperseded = errors.New("dashboard: load cycle superseded")

// State é tudo que a página exibe em um ciclo
type State struct {
	Token uint64
	Range domain.DateRange

	// Err é o erro de validação exibido com a opção de tentar novamente
	Err error

	Summary         Widget[domain.SummaryMetrics]
	PageViews       Widget[[]domain.PageViewsPoint]
	TrafficSources  Widget[[]domain.BreakdownEntry]
	DeviceUsage     Widget[[]domain.BreakdownEntry]
	VisitsByCountry Widget[[]domain.BreakdownEntry]
	TopPages        Widget[[]domain.TopPage]
}

// HasMockData indica se algum widget exibe dados de exemplo
func (s State) HasMockData() bool {
	return s.Summary.IsMockData || s.PageViews.IsMockData || s.TrafficSources.IsMockData ||
		s.DeviceUsage.IsMockData || s.VisitsByCountry.IsMockData || s.TopPages.IsMockData
}

func loadingState(token uint64, dateRange domain.DateRange) State {
	return State{
		Token:           token,
		Range:           dateRange,
		Summary:         Widget[domain.SummaryMetrics]{Status: StatusLoading},
		PageViews:       Widget[[]domain.PageViewsPoint]{Status: StatusLoading},
		TrafficSources:  Widget[[]domain.BreakdownEntry]{Status: StatusLoading},
		DeviceUsage:     Widget[[]domain.BreakdownEntry]{Status: StatusLoading},
		VisitsByCountry: Widget[[]domain.BreakdownEntry]{Status: StatusLoading},
		TopPages:        Widget[[]domain.TopPage]{Status: StatusLoading},
	}
}

func errorState(token uint64, dateRange domain.DateRange, err error) State {
	return State{
		Token:           token,
		Range:           dateRange,
		Err:             err,
		Summary:         Widget[domain.SummaryMetrics]{Status: StatusError, Err: err},
		PageViews:       Widget[[]domain.PageViewsPoint]{Status: StatusError, Err: err},
		TrafficSources:  Widget[[]domain.BreakdownEntry]{Status: StatusError, Err: err},
		DeviceUsage:     Widget[[]domain.BreakdownEntry]{Status: StatusError, Err: err},
		VisitsByCountry: Widget[[]domain.BreakdownEntry]{Status: StatusError, Err: err},
		TopPages:        Widget[[]domain.TopPage]{Status: StatusError, Err: err},
	}
}

// Shell é dono do intervalo selecionado e do token de atualização.
// Cada ciclo de Load é identificado pelo token; começar um ciclo novo cancela
// o anterior e resultados de tokens antigos são descartados.
type Shell struct {
	api        API
	normalizer *reporting.Normalizer

	mu        sync.Mutex
	dateRange domain.DateRange
	token     uint64
	rangeErr  error
	cancel    context.CancelFunc
	state     State
}

func NewShell(api API, normalizer *reporting.Normalizer) *Shell {
	dateRange := normalizer.DefaultRange()

	return &Shell{
		api:        api,
		normalizer: normalizer,
		dateRange:  dateRange,
		token:      1,
		state:      loadingState(1, dateRange),
	}
}

// SetRange normaliza e aplica o intervalo. Um intervalo inválido mantém o
// anterior e deixa o dashboard em estado de erro até a próxima tentativa.
func (s *Shell) SetRange(startDate, endDate string) error {
	dateRange, err := s.normalizer.Normalize(startDate, endDate)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token++
	if err != nil {
		s.rangeErr = err
		return err
	}

	s.rangeErr = nil
	s.dateRange = dateRange
	return nil
}

// Refresh força um novo ciclo com o intervalo atual, limpando erros de validação
func (s *Shell) Refresh() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token++
	s.rangeErr = nil
	return s.token
}

func (s *Shell) Range() domain.DateRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dateRange
}

func (s *Shell) Token() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// State devolve uma cópia do estado atual
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load executa todos os widgets em paralelo para o token atual. Cada widget
// falha de forma independente. Devolve ErrSuperseded quando outro ciclo
// começou antes do fim deste.
func (s *Shell) Load(ctx context.Context) (State, error) {
	s.mu.Lock()
	token := s.token
	dateRange := s.dateRange

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if s.rangeErr != nil {
		s.state = errorState(token, dateRange, s.rangeErr)
		state := s.state
		s.mu.Unlock()
		return state, nil
	}

	cycleCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = loadingState(token, dateRange)
	s.mu.Unlock()

	defer cancel()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"start_date": dateRange.StartDate(),
		"end_date":   dateRange.EndDate(),
	})
	logger.Debug("dashboard: loading widgets")

	var wg sync.WaitGroup
	run := func(load func(context.Context, *State)) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var partial State
			load(cycleCtx, &partial)

			s.apply(cycleCtx, token, func(state *State) {
				mergeWidget(state, &partial)
			})
		}()
	}

	run(func(ctx context.Context, st *State) { st.Summary = loadSummary(ctx, s.api, dateRange) })
	run(func(ctx context.Context, st *State) { st.PageViews = loadPageViews(ctx, s.api, dateRange) })
	run(func(ctx context.Context, st *State) { st.TrafficSources = loadTrafficSources(ctx, s.api, dateRange) })
	run(func(ctx context.Context, st *State) { st.DeviceUsage = loadDeviceUsage(ctx, s.api, dateRange) })
	run(func(ctx context.Context, st *State) { st.VisitsByCountry = loadVisitsByCountry(ctx, s.api, dateRange) })
	run(func(ctx context.Context, st *State) { st.TopPages = loadTopPages(ctx, s.api, dateRange) })

	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return s.state, err
	}

	if s.isStale(cycleCtx, token) {
		logger.Debug("dashboard: load cycle superseded, results dropped")
		return s.state, ErrSuperseded
	}

	return s.state, nil
}

func (s *Shell) isStale(cycleCtx context.Context, token uint64) bool {
	return s.token != token || s.state.Token != token || cycleCtx.Err() != nil
}

// apply só grava resultados do ciclo corrente
func (s *Shell) apply(cycleCtx context.Context, token uint64, update func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStale(cycleCtx, token) {
		return
	}
	update(&s.state)
}

// mergeWidget copia para state apenas os widgets que saíram de Loading em partial
func mergeWidget(state *State, partial *State) {
	if partial.Summary.Status != StatusLoading {
		state.Summary = partial.Summary
	}
	if partial.PageViews.Status != StatusLoading {
		state.PageViews = partial.PageViews
	}
	if partial.TrafficSources.Status != StatusLoading {
		state.TrafficSources = partial.TrafficSources
	}
	if partial.DeviceUsage.Status != StatusLoading {
		state.DeviceUsage = partial.DeviceUsage
	}
	if partial.VisitsByCountry.Status != StatusLoading {
		state.VisitsByCountry = partial.VisitsByCountry
	}
	if partial.TopPages.Status != StatusLoading {
		state.TopPages = partial.TopPages
	}
}
