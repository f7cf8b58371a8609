package leaguestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/courtside/courtside/schema"
)

// GetStatus reports record counts, the latest import and the game date span.
func (s *RecordStore) GetStatus(ctx context.Context) (schema.DataStatus, error) {
	status := schema.DataStatus{
		Backend:    string(s.backend),
		Connected:  s.ping(ctx),
		TableSizes: make(map[string]int64),
	}
	if !status.Connected {
		return status, nil
	}

	for _, table := range []string{importsTable, gamesTable, teamsTable} {
		var n int64
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.table(table))
		if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
			return status, fmt.Errorf("failed to count %s: %w", table, err)
		}
		status.TableSizes[table] = n
	}
	status.TotalImports = int(status.TableSizes[importsTable])
	status.TotalGames = int(status.TableSizes[gamesTable])
	status.TotalTeams = int(status.TableSizes[teamsTable])

	if status.TotalImports > 0 {
		var importedAt string
		query := fmt.Sprintf("SELECT import_id, imported_at FROM %s ORDER BY imported_at DESC LIMIT 1", s.table(importsTable))
		err := s.db.QueryRowContext(ctx, query).Scan(&status.LastImportID, &importedAt)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return status, fmt.Errorf("failed to get last import: %w", err)
		}
		if importedAt != "" {
			t, err := time.Parse(importTimeFormat, importedAt)
			if err != nil {
				return status, fmt.Errorf("failed to parse import time %q: %w", importedAt, err)
			}
			status.LastImportTime = t
		}
	}

	if status.TotalGames > 0 {
		query := fmt.Sprintf("SELECT MIN(game_date), MAX(game_date) FROM %s", s.table(gamesTable))
		if err := s.db.QueryRowContext(ctx, query).Scan(&status.FirstGameDate, &status.LastGameDate); err != nil {
			return status, fmt.Errorf("failed to get game date span: %w", err)
		}
	}

	return status, nil
}
