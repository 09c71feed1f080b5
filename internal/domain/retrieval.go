package domain

// QueryFilters holds the structured hints extracted from a free-text
// query. Each scalar filter is present only if detected; Metrics lists
// the dataset fields the query asked about, in detection order.
type QueryFilters struct {
	IslandCode *int
	Year       *int
	Month      *int
	Metrics    []string
}

// Empty reports whether no scalar filter was detected. Metric mentions
// do not count: they shape the summary, not the record selection.
func (f QueryFilters) Empty() bool {
	return f.IslandCode == nil && f.Year == nil && f.Month == nil
}

// AppliedFilters echoes the scalar filters back in the retrieval result,
// with the island rendered as its canonical name.
type AppliedFilters struct {
	Island *string `json:"island"`
	Year   *int    `json:"year"`
	Month  *int    `json:"month"`
}

// MetricSummary holds aggregate statistics for one metric over the
// retrieved records. Total is null for rates, where summing is not
// meaningful.
type MetricSummary struct {
	Average float64  `json:"average"`
	Max     float64  `json:"max"`
	Min     float64  `json:"min"`
	Total   *float64 `json:"total"`
}

// RetrievalResult is the structured answer context handed to the
// generation step: the selected records plus optional per-metric
// aggregates.
type RetrievalResult struct {
	Records            []TourismRecord          `json:"records"`
	TotalRecords       int                      `json:"total_records"`
	AppliedFilters     AppliedFilters           `json:"applied_filters"`
	StatisticalSummary map[string]MetricSummary `json:"statistical_summary"`
}
