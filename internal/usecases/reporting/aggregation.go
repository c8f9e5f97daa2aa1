package reporting

import (
	"math"
	"sort"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
)

const TopEntries = 5

// Precision define o arredondamento das porcentagens de uma categoria
type Precision int

const (
	PrecisionWhole Precision = iota
	PrecisionOneDecimal
)

func (p Precision) percentage(count, total int64) float64 {
	if total <= 0 {
		return 0
	}

	ratio := float64(count) / float64(total)
	if p == PrecisionOneDecimal {
		return math.Round(ratio*1000) / 10
	}
	return math.Round(ratio * 100)
}

// Aggregate calcula as porcentagens, ordena por contagem e agrupa tudo depois
// do top 5 em uma linha "Others". Aplicar de novo sobre o resultado não muda nada.
func Aggregate(entries []domain.BreakdownEntry, precision Precision) []domain.BreakdownEntry {
	out := make([]domain.BreakdownEntry, len(entries))
	copy(out, entries)

	var total int64
	for _, e := range out {
		total += e.Count
	}

	if total == 0 {
		for i := range out {
			out[i].Percentage = 0
		}
		return out
	}

	// Uma linha "Others" já existente (saída de uma agregação anterior) volta para o balde
	ranked := make([]domain.BreakdownEntry, 0, len(out))
	var othersCount int64
	hasOthers := false
	for _, e := range out {
		if e.IsOthers() {
			othersCount += e.Count
			hasOthers = true
			continue
		}
		e.Percentage = precision.percentage(e.Count, total)
		ranked = append(ranked, e)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > TopEntries {
		for _, e := range ranked[TopEntries:] {
			othersCount += e.Count
		}
		ranked = ranked[:TopEntries:TopEntries]
		hasOthers = true
	}

	if !hasOthers {
		return ranked
	}

	return append(ranked, domain.BreakdownEntry{
		Label:      domain.OthersLabel,
		Count:      othersCount,
		Percentage: precision.percentage(othersCount, total),
	})
}

func TrafficSourceEntries(sources []domain.TrafficSource) []domain.BreakdownEntry {
	entries := make([]domain.BreakdownEntry, 0, len(sources))
	for _, s := range sources {
		entries = append(entries, domain.BreakdownEntry{Label: s.Source, Count: s.Sessions})
	}
	return entries
}

func DeviceEntries(devices []domain.DeviceUsage) []domain.BreakdownEntry {
	entries := make([]domain.BreakdownEntry, 0, len(devices))
	for _, d := range devices {
		entries = append(entries, domain.BreakdownEntry{Label: d.Device, Count: d.Users})
	}
	return entries
}

func CountryEntries(countries []domain.CountryVisits) []domain.BreakdownEntry {
	entries := make([]domain.BreakdownEntry, 0, len(countries))
	for _, c := range countries {
		entries = append(entries, domain.BreakdownEntry{Label: c.Country, Count: c.Users})
	}
	return entries
}
