package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrTeamNotFound  = errors.New("team not found")
)

// RecordKind names the record type that failed validation.
type RecordKind string

// Record kinds reported by InvalidRecordError.
const (
	GameKind RecordKind = "game"
	TeamKind RecordKind = "team"
)

// InvalidRecordError reports a game or team record that violates its type contract.
type InvalidRecordError struct {
	Kind   RecordKind
	ID     int
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid %s record %d: %s", e.Kind, e.ID, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidRecord).
func (e *InvalidRecordError) Unwrap() error {
	return ErrInvalidRecord
}

// TeamNotFoundError reports a lookup that matched no team.
type TeamNotFoundError struct {
	Query string
}

func (e *TeamNotFoundError) Error() string {
	return fmt.Sprintf("team not found: %s", e.Query)
}

// Unwrap allows errors.Is(err, ErrTeamNotFound).
func (e *TeamNotFoundError) Unwrap() error {
	return ErrTeamNotFound
}
