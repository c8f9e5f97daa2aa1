package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
	"github.com/vfg2006/analytics-dashboard-api/internal/fixtures"
)

func entries(pairs ...any) []domain.BreakdownEntry {
	out := make([]domain.BreakdownEntry, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.BreakdownEntry{
			Label: pairs[i].(string),
			Count: int64(pairs[i+1].(int)),
		})
	}
	return out
}

func sumPercentages(list []domain.BreakdownEntry) float64 {
	var sum float64
	for _, e := range list {
		sum += e.Percentage
	}
	return sum
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name      string
		input     []domain.BreakdownEntry
		precision Precision
		want      []domain.BreakdownEntry
	}{
		{
			name: "agrupa o excedente em Others",
			input: entries(
				"google", 160, "(direct)", 98, "bing", 8,
				"(not set)", 5, "yahoo", 5, "linkedin", 4,
			),
			precision: PrecisionWhole,
			want: []domain.BreakdownEntry{
				{Label: "google", Count: 160, Percentage: 57},
				{Label: "(direct)", Count: 98, Percentage: 35},
				{Label: "bing", Count: 8, Percentage: 3},
				{Label: "(not set)", Count: 5, Percentage: 2},
				{Label: "yahoo", Count: 5, Percentage: 2},
				{Label: domain.OthersLabel, Count: 4, Percentage: 1},
			},
		},
		{
			name:      "ordena de forma estável sem agrupar",
			input:     entries("tablet", 0, "mobile", 138, "desktop", 388),
			precision: PrecisionWhole,
			want: []domain.BreakdownEntry{
				{Label: "desktop", Count: 388, Percentage: 74},
				{Label: "mobile", Count: 138, Percentage: 26},
				{Label: "tablet", Count: 0, Percentage: 0},
			},
		},
		{
			name:      "uma casa decimal",
			input:     entries("India", 2, "Brazil", 1),
			precision: PrecisionOneDecimal,
			want: []domain.BreakdownEntry{
				{Label: "India", Count: 2, Percentage: 66.7},
				{Label: "Brazil", Count: 1, Percentage: 33.3},
			},
		},
		{
			name:      "total zero mantém a ordem",
			input:     entries("b", 0, "a", 0),
			precision: PrecisionWhole,
			want: []domain.BreakdownEntry{
				{Label: "b", Count: 0, Percentage: 0},
				{Label: "a", Count: 0, Percentage: 0},
			},
		},
		{
			name:      "lista vazia",
			input:     nil,
			precision: PrecisionWhole,
			want:      []domain.BreakdownEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.input, tt.precision)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate_Invariants(t *testing.T) {
	t.Run("fixture de países", func(t *testing.T) {
		got := Aggregate(CountryEntries(fixtures.VisitsByCountry()), PrecisionOneDecimal)

		require.Len(t, got, TopEntries+1)
		assert.Equal(t, "India", got[0].Label)
		assert.True(t, got[TopEntries].IsOthers())
		assert.InDelta(t, 100, sumPercentages(got), 0.5)
	})

	t.Run("fixture de origens", func(t *testing.T) {
		got := Aggregate(TrafficSourceEntries(fixtures.TrafficSources()), PrecisionWhole)

		require.Len(t, got, TopEntries+1)
		assert.InDelta(t, 100, sumPercentages(got), float64(len(got))*0.5)

		var total int64
		for _, e := range got {
			total += e.Count
		}
		assert.Equal(t, int64(289), total)
	})

	t.Run("idempotente", func(t *testing.T) {
		first := Aggregate(TrafficSourceEntries(fixtures.TrafficSources()), PrecisionWhole)
		second := Aggregate(first, PrecisionWhole)

		assert.Equal(t, first, second)
	})

	t.Run("não altera a entrada", func(t *testing.T) {
		input := entries("a", 1, "b", 2)
		Aggregate(input, PrecisionWhole)

		assert.Equal(t, "a", input[0].Label)
		assert.Zero(t, input[0].Percentage)
	})
}

func TestDeviceEntries(t *testing.T) {
	got := DeviceEntries(fixtures.DeviceUsage())

	require.Len(t, got, 3)
	assert.Equal(t, domain.BreakdownEntry{Label: "desktop", Count: 388}, got[0])
}
