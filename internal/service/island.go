package service

import (
	"sort"

	"github.com/canarias-tourism/backend/internal/domain"
	"github.com/canarias-tourism/backend/pkg/utils"
)

// latestRecordCount is how many recent records an island summary carries.
const latestRecordCount = 5

// SummarizeIsland aggregates every record of one island: total tourists,
// mean occupancy as a percentage, total revenue and the most recent
// records by week start date. Records missing a metric are excluded from
// that metric's sum and average, same policy as the per-query summaries.
// Returns domain.ErrNoIslandData when the island has no records.
func (r *Retriever) SummarizeIsland(code int) (domain.IslandSummary, error) {
	matches := filterRecords(r.records, func(rec domain.TourismRecord) bool {
		return rec.IslandCode == code
	})
	if len(matches) == 0 {
		return domain.IslandSummary{}, domain.ErrNoIslandData
	}

	var tourists, occupancies, revenues []float64
	for _, rec := range matches {
		if v, ok := rec.Metric(domain.MetricTotalTourists); ok {
			tourists = append(tourists, v)
		}
		if v, ok := rec.Metric(domain.MetricOccupancyRate); ok {
			occupancies = append(occupancies, v)
		}
		if v, ok := rec.Metric(domain.MetricRevenue); ok {
			revenues = append(revenues, v)
		}
	}

	name, _ := domain.IslandName(code)
	return domain.IslandSummary{
		Island: name,
		Code:   code,
		GeneralStatistics: domain.IslandStatistics{
			TotalTourists:    utils.Sum(tourists),
			AverageOccupancy: utils.RoundTo(utils.Mean(occupancies)*100, 2),
			TotalRevenue:     utils.RoundTo(utils.Sum(revenues), 2),
			AvailableRecords: len(matches),
		},
		LatestData: latestRecords(matches, latestRecordCount),
	}, nil
}

// latestRecords returns the n most recent records in chronological
// order. Sorting by week start date here makes "latest" explicit instead
// of trusting the dataset to arrive pre-sorted.
func latestRecords(records []domain.TourismRecord, n int) []domain.TourismRecord {
	sorted := make([]domain.TourismRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WeekStartDate < sorted[j].WeekStartDate
	})

	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}
