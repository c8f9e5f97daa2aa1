package gadomain

// RunReportRequest é o corpo de properties/{id}:runReport na Data API v1beta
type RunReportRequest struct {
	DateRanges []DateRange `json:"dateRanges"`
	Dimensions []Dimension `json:"dimensions,omitempty"`
	Metrics    []Metric    `json:"metrics"`
	OrderBys   []OrderBy   `json:"orderBys,omitempty"`
	Limit      int64       `json:"limit,omitempty"`
}

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Dimension struct {
	Name string `json:"name"`
}

type Metric struct {
	Name string `json:"name"`
}

type OrderBy struct {
	Desc      bool              `json:"desc,omitempty"`
	Metric    *MetricOrderBy    `json:"metric,omitempty"`
	Dimension *DimensionOrderBy `json:"dimension,omitempty"`
}

type MetricOrderBy struct {
	MetricName string `json:"metricName"`
}

type DimensionOrderBy struct {
	DimensionName string `json:"dimensionName"`
}

type RunReportResponse struct {
	DimensionHeaders []DimensionHeader `json:"dimensionHeaders"`
	MetricHeaders    []MetricHeader    `json:"metricHeaders"`
	Rows             []Row             `json:"rows"`
	RowCount         int64             `json:"rowCount"`
	Kind             string            `json:"kind"`
}

type DimensionHeader struct {
	Name string `json:"name"`
}

type MetricHeader struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Row struct {
	DimensionValues []Value `json:"dimensionValues"`
	MetricValues    []Value `json:"metricValues"`
}

type Value struct {
	Value string `json:"value"`
}

// OrderByMetric ordena pelo valor de uma métrica
func OrderByMetric(name string, desc bool) OrderBy {
	return OrderBy{Desc: desc, Metric: &MetricOrderBy{MetricName: name}}
}

// OrderByDimension ordena pelo valor de uma dimensão
func OrderByDimension(name string, desc bool) OrderBy {
	return OrderBy{Desc: desc, Dimension: &DimensionOrderBy{DimensionName: name}}
}

// MetricIndex devolve a posição de cada métrica nas linhas da resposta
func (r *RunReportResponse) MetricIndex() map[string]int {
	index := make(map[string]int, len(r.MetricHeaders))
	for i, h := range r.MetricHeaders {
		index[h.Name] = i
	}
	return index
}

// MetricValue busca o valor de uma métrica pelo nome, "" quando ausente
func (row Row) MetricValue(index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row.MetricValues) {
		return ""
	}
	return row.MetricValues[i].Value
}

// DimensionValue devolve a dimensão na posição i, "" quando ausente
func (row Row) DimensionValue(i int) string {
	if i >= len(row.DimensionValues) {
		return ""
	}
	return row.DimensionValues[i].Value
}
