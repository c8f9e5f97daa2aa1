package domain

const OthersLabel = "Others"

// BreakdownEntry é uma linha de uma distribuição percentual (fontes, países, dispositivos)
type BreakdownEntry struct {
	Label      string  `json:"label"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

func (b BreakdownEntry) IsOthers() bool {
	return b.Label == OthersLabel
}
