package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/canarias-tourism/backend/internal/domain"
)

// firstDataYear is the earliest year present in the dataset; year
// detection scans from here up to the current calendar year.
const firstDataYear = 2024

// months maps Spanish month names to their numbers. Ordered slice, not a
// map: detection must be deterministic, first entry found in the query wins.
var months = []struct {
	Name   string
	Number int
}{
	{"enero", 1}, {"febrero", 2}, {"marzo", 3}, {"abril", 4},
	{"mayo", 5}, {"junio", 6}, {"julio", 7}, {"agosto", 8},
	{"septiembre", 9}, {"octubre", 10}, {"noviembre", 11}, {"diciembre", 12},
}

// metricKeywords maps Spanish query keywords to dataset metric fields.
// All matches are collected, not just the first.
var metricKeywords = []struct {
	Keyword string
	Field   string
}{
	{"ocupación", domain.MetricOccupancyRate},
	{"turistas", domain.MetricTotalTourists},
	{"ingresos", domain.MetricRevenue},
	{"gastos", domain.MetricTotalExpenditure},
	{"tarifa", domain.MetricAvgDailyRateEUR},
	{"noches", domain.MetricNights},
	{"estancia", domain.MetricStayLength},
	{"internacional", domain.MetricIntlPassengers},
	{"doméstico", domain.MetricDomPassengers},
	{"eventos", domain.MetricEventsCount},
}

// QueryInterpreter extracts structured filter hints from free text.
type QueryInterpreter struct {
	now func() time.Time
}

// NewQueryInterpreter creates a new query interpreter
func NewQueryInterpreter() *QueryInterpreter {
	return &QueryInterpreter{now: time.Now}
}

// ExtractFilters scans the query for an island name, a year, a Spanish
// month name and any metric keywords. Island and month detection follow
// the enumeration order of their tables, not the position in the text;
// year detection picks the earliest year in the scanned range whose
// digits appear anywhere in the query. Absence of every signal is a
// valid, common result.
func (qi *QueryInterpreter) ExtractFilters(query string) domain.QueryFilters {
	lower := strings.ToLower(query)

	var filters domain.QueryFilters

	for _, isl := range domain.Islands {
		if strings.Contains(lower, strings.ToLower(isl.Name)) {
			code := isl.Code
			filters.IslandCode = &code
			break
		}
	}

	currentYear := qi.now().Year()
	for year := firstDataYear; year <= currentYear; year++ {
		if strings.Contains(lower, strconv.Itoa(year)) {
			y := year
			filters.Year = &y
			break
		}
	}

	for _, m := range months {
		if strings.Contains(lower, m.Name) {
			num := m.Number
			filters.Month = &num
			break
		}
	}

	for _, mk := range metricKeywords {
		if strings.Contains(lower, mk.Keyword) {
			filters.Metrics = append(filters.Metrics, mk.Field)
		}
	}

	return filters
}
