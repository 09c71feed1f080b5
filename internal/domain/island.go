package domain

import "errors"

// ErrNoIslandData signals that an island has no records in the dataset.
// Callers decide how to surface it; it is not a failure of the system.
var ErrNoIslandData = errors.New("no data available for this island")

// Island pairs a dataset code with its canonical name.
type Island struct {
	Code int
	Name string
}

// Islands is the fixed enumeration of the seven Canary Islands. Detection
// iterates this slice in order, so the order is part of the contract:
// the first name found in a query wins.
var Islands = []Island{
	{1, "Tenerife"},
	{2, "Gran Canaria"},
	{3, "Lanzarote"},
	{4, "Fuerteventura"},
	{5, "La Palma"},
	{6, "La Gomera"},
	{7, "El Hierro"},
}

// IslandName resolves an island code to its canonical name.
func IslandName(code int) (string, bool) {
	for _, isl := range Islands {
		if isl.Code == code {
			return isl.Name, true
		}
	}
	return "", false
}

// IslandSummary aggregates one island's records across the whole dataset.
type IslandSummary struct {
	Island            string           `json:"island"`
	Code              int              `json:"code"`
	GeneralStatistics IslandStatistics `json:"general_statistics"`
	LatestData        []TourismRecord  `json:"latest_data"`
}

// IslandStatistics holds the aggregate figures of an island summary.
// AverageOccupancy is a percentage rounded to two decimal places.
type IslandStatistics struct {
	TotalTourists    float64 `json:"total_tourists"`
	AverageOccupancy float64 `json:"average_occupancy"`
	TotalRevenue     float64 `json:"total_revenue"`
	AvailableRecords int     `json:"available_records"`
}
