package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canarias-tourism/backend/internal/domain"
)

// Source implements domain.RecordSource over a PostgreSQL table.
type Source struct {
	pool *pgxpool.Pool
}

// New creates a new PostgreSQL record source
func New(pool *pgxpool.Pool) *Source {
	return &Source{pool: pool}
}

// LoadRecords reads the full tourism_records table in chronological
// order. NULL metric columns scan into nil pointers, matching the
// optional fields of the JSON dataset.
func (s *Source) LoadRecords(ctx context.Context) ([]domain.TourismRecord, error) {
	query := `
		SELECT island_code, year, month, week_start_date,
			   total_tourists, occupancy_rate, revenue, total_expenditure,
			   avg_daily_rate_eur, nights, stay_length,
			   intl_passengers, dom_passengers, events_count
		FROM tourism_records
		ORDER BY week_start_date
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query tourism records: %w", err)
	}
	defer rows.Close()

	var records []domain.TourismRecord
	for rows.Next() {
		var r domain.TourismRecord
		err := rows.Scan(
			&r.IslandCode, &r.Year, &r.Month, &r.WeekStartDate,
			&r.TotalTourists, &r.OccupancyRate, &r.Revenue, &r.TotalExpenditure,
			&r.AvgDailyRateEUR, &r.Nights, &r.StayLength,
			&r.IntlPassengers, &r.DomPassengers, &r.EventsCount,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan tourism record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read tourism records: %w", err)
	}

	return records, nil
}

// Health checks database connectivity
func (s *Source) Health(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
