package domain

import "context"

// RecordSource loads the tourism dataset. It is called once at startup;
// the loaded slice is treated as immutable for the life of the process.
// This follows the Dependency Inversion Principle - domain defines the interface
type RecordSource interface {
	// LoadRecords returns every record the source holds, in the
	// source's chronological order where it has one.
	LoadRecords(ctx context.Context) ([]TourismRecord, error)
}
