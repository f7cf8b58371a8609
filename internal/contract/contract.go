// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/courtside/courtside/schema"
)

// RecordSource supplies the raw league records consumed by the aggregation engine.
// This allows the core logic to be tested without files or a database.
type RecordSource interface {
	// LoadGames returns every game record in source order.
	LoadGames(ctx context.Context) ([]schema.GameRecord, error)

	// LoadTeams returns every team record in source order.
	LoadTeams(ctx context.Context) ([]schema.TeamRecord, error)

	// Describe returns a short human-readable name for the source.
	Describe() string
}

// RecordStore is a league database that can also be written to and inspected.
// It stores input records only; derived performances are never persisted.
type RecordStore interface {
	RecordSource

	// ImportRecords replaces the stored games and teams in a single transaction.
	ImportRecords(ctx context.Context, source string, games []schema.GameRecord, teams []schema.TeamRecord) (schema.ImportSummary, error)

	// GetStatus returns status information about the store.
	GetStatus(ctx context.Context) (schema.DataStatus, error)

	// Clear removes all stored records and import history.
	Clear(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error
}
