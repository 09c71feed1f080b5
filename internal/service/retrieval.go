package service

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/canarias-tourism/backend/internal/domain"
	"github.com/canarias-tourism/backend/pkg/utils"
)

// DefaultMaxResults caps how many records are handed to the generation
// step for a single question.
const DefaultMaxResults = 50

// Retriever selects and summarizes the dataset records relevant to a
// free-text query. The dataset is shared and read-only, so a single
// Retriever is safe for concurrent use.
type Retriever struct {
	records     []domain.TourismRecord
	interpreter *QueryInterpreter
	logger      zerolog.Logger
}

// NewRetriever creates a retriever over an already loaded dataset.
func NewRetriever(records []domain.TourismRecord, interpreter *QueryInterpreter, logger zerolog.Logger) *Retriever {
	return &Retriever{
		records:     records,
		interpreter: interpreter,
		logger:      logger,
	}
}

// RecordCount returns the size of the loaded dataset.
func (r *Retriever) RecordCount() int {
	return len(r.records)
}

// Retrieve applies the filters extracted from the query to the dataset
// and computes aggregates for any metrics the query named. When the
// query carries no island, year or month signal, it falls back to the
// maxResults most recent records by week start date. The dataset is
// never mutated; the same query over the same dataset always yields the
// same result.
func (r *Retriever) Retrieve(query string, maxResults int) domain.RetrievalResult {
	filters := r.interpreter.ExtractFilters(query)

	var working []domain.TourismRecord
	if filters.Empty() {
		working = r.mostRecent(maxResults)
	} else {
		working = r.records
		if filters.IslandCode != nil {
			working = filterRecords(working, func(rec domain.TourismRecord) bool {
				return rec.IslandCode == *filters.IslandCode
			})
		}
		if filters.Year != nil {
			working = filterRecords(working, func(rec domain.TourismRecord) bool {
				return rec.Year == *filters.Year
			})
		}
		if filters.Month != nil {
			working = filterRecords(working, func(rec domain.TourismRecord) bool {
				return rec.Month == *filters.Month
			})
		}
		if maxResults < 0 {
			maxResults = 0
		}
		if len(working) > maxResults {
			working = working[:maxResults]
		}
	}

	result := domain.RetrievalResult{
		Records:            working,
		TotalRecords:       len(working),
		AppliedFilters:     appliedFilters(filters),
		StatisticalSummary: summarizeMetrics(working, filters.Metrics),
	}
	if result.Records == nil {
		result.Records = []domain.TourismRecord{}
	}

	r.logger.Debug().
		Int("total_records", result.TotalRecords).
		Int("metrics", len(filters.Metrics)).
		Bool("filtered", !filters.Empty()).
		Msg("Retrieved records for query")

	return result
}

// mostRecent returns the n most recent records by week start date,
// sorting a copy so the shared dataset keeps its original order.
func (r *Retriever) mostRecent(n int) []domain.TourismRecord {
	sorted := make([]domain.TourismRecord, len(r.records))
	copy(sorted, r.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WeekStartDate > sorted[j].WeekStartDate
	})

	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func filterRecords(records []domain.TourismRecord, keep func(domain.TourismRecord) bool) []domain.TourismRecord {
	var out []domain.TourismRecord
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func appliedFilters(filters domain.QueryFilters) domain.AppliedFilters {
	applied := domain.AppliedFilters{
		Year:  filters.Year,
		Month: filters.Month,
	}
	if filters.IslandCode != nil {
		if name, ok := domain.IslandName(*filters.IslandCode); ok {
			applied.Island = &name
		}
	}
	return applied
}

// summarizeMetrics computes average, max, min and total for each
// requested metric over the records that define it. Records missing a
// field are excluded from that field's aggregates; a metric nobody
// defines produces no entry. The total of occupancy_rate is null,
// summing a rate is not meaningful. Returns nil when nothing was
// requested or nothing had data.
func summarizeMetrics(records []domain.TourismRecord, metrics []string) map[string]domain.MetricSummary {
	var summary map[string]domain.MetricSummary

	for _, field := range metrics {
		var values []float64
		for _, rec := range records {
			if v, ok := rec.Metric(field); ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}

		entry := domain.MetricSummary{
			Average: utils.Mean(values),
			Max:     maxOf(values),
			Min:     minOf(values),
		}
		if field != domain.MetricOccupancyRate {
			total := utils.Sum(values)
			entry.Total = &total
		}

		if summary == nil {
			summary = make(map[string]domain.MetricSummary)
		}
		summary[field] = entry
	}

	return summary
}

func maxOf(values []float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func minOf(values []float64) float64 {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
