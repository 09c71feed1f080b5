package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/canarias-tourism/backend/internal/domain"
)

// Source implements domain.RecordSource over a JSON file holding an
// array of tourism records.
type Source struct {
	path   string
	logger zerolog.Logger
}

// New creates a JSON file record source
func New(path string, logger zerolog.Logger) *Source {
	return &Source{path: path, logger: logger}
}

// LoadRecords reads and decodes the dataset file. Malformed entries are
// skipped and reported, not fatal: the caller gets every record that
// parsed. A missing or unreadable file is an error; the caller decides
// whether to run with an empty dataset.
func (s *Source) LoadRecords(ctx context.Context) ([]domain.TourismRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: failed to read dataset %s: %w", s.path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("jsonfile: dataset %s is not a JSON array: %w", s.path, err)
	}

	records := make([]domain.TourismRecord, 0, len(raw))
	skipped := 0
	for i, entry := range raw {
		var rec domain.TourismRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			skipped++
			s.logger.Warn().
				Int("index", i).
				Err(err).
				Msg("Skipping malformed dataset entry")
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		s.logger.Warn().
			Int("skipped", skipped).
			Int("loaded", len(records)).
			Msg("Dataset loaded with malformed entries")
	}

	return records, nil
}
