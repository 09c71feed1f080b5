package domain

// Canonical metric field names as they appear in the dataset.
const (
	MetricTotalTourists    = "total_tourists"
	MetricOccupancyRate    = "occupancy_rate"
	MetricRevenue          = "revenue"
	MetricTotalExpenditure = "total_expenditure"
	MetricAvgDailyRateEUR  = "avg_daily_rate_eur"
	MetricNights           = "nights"
	MetricStayLength       = "stay_length"
	MetricIntlPassengers   = "intl_passengers"
	MetricDomPassengers    = "dom_passengers"
	MetricEventsCount      = "events_count"
)

// TourismRecord is one statistical observation for one island over one
// time bucket (typically a week). Metric fields are optional in the
// source data, hence pointers.
type TourismRecord struct {
	IslandCode    int    `json:"island_code"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	WeekStartDate string `json:"week_start_date"`

	TotalTourists    *float64 `json:"total_tourists,omitempty"`
	OccupancyRate    *float64 `json:"occupancy_rate,omitempty"`
	Revenue          *float64 `json:"revenue,omitempty"`
	TotalExpenditure *float64 `json:"total_expenditure,omitempty"`
	AvgDailyRateEUR  *float64 `json:"avg_daily_rate_eur,omitempty"`
	Nights           *float64 `json:"nights,omitempty"`
	StayLength       *float64 `json:"stay_length,omitempty"`
	IntlPassengers   *float64 `json:"intl_passengers,omitempty"`
	DomPassengers    *float64 `json:"dom_passengers,omitempty"`
	EventsCount      *float64 `json:"events_count,omitempty"`
}

// Metric returns the value of the named metric field and whether the
// record defines it.
func (r TourismRecord) Metric(field string) (float64, bool) {
	var v *float64
	switch field {
	case MetricTotalTourists:
		v = r.TotalTourists
	case MetricOccupancyRate:
		v = r.OccupancyRate
	case MetricRevenue:
		v = r.Revenue
	case MetricTotalExpenditure:
		v = r.TotalExpenditure
	case MetricAvgDailyRateEUR:
		v = r.AvgDailyRateEUR
	case MetricNights:
		v = r.Nights
	case MetricStayLength:
		v = r.StayLength
	case MetricIntlPassengers:
		v = r.IntlPassengers
	case MetricDomPassengers:
		v = r.DomPassengers
	case MetricEventsCount:
		v = r.EventsCount
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}
