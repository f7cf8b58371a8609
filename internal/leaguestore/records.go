package leaguestore

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside/courtside/schema"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LoadGames returns the stored games in their original source order.
func (s *RecordStore) LoadGames(ctx context.Context) ([]schema.GameRecord, error) {
	query := fmt.Sprintf(`SELECT game_id, game_date, team1_id, location1, score1, team2_id, location2, score2
		FROM %s ORDER BY import_id, seq`, s.table(gamesTable))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var games []schema.GameRecord
	for rows.Next() {
		var g schema.GameRecord
		if err := rows.Scan(&g.GameID, &g.Date, &g.Team1ID, &g.Location1, &g.Score1, &g.Team2ID, &g.Location2, &g.Score2); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read games: %w", err)
	}
	return games, nil
}

// LoadTeams returns the stored teams in their original source order.
func (s *RecordStore) LoadTeams(ctx context.Context) ([]schema.TeamRecord, error) {
	query := fmt.Sprintf(`SELECT team_id, team_name FROM %s ORDER BY import_id, seq`, s.table(teamsTable))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var teams []schema.TeamRecord
	for rows.Next() {
		var t schema.TeamRecord
		if err := rows.Scan(&t.TeamID, &t.TeamName); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read teams: %w", err)
	}
	return teams, nil
}

// ImportRecords replaces every stored game and team with the given records in one transaction
// and records the batch under a new import ID.
func (s *RecordStore) ImportRecords(ctx context.Context, source string, games []schema.GameRecord, teams []schema.TeamRecord) (schema.ImportSummary, error) {
	summary := schema.ImportSummary{
		ImportID:   uuid.NewString(),
		ImportedAt: time.Now().UTC(),
		Source:     source,
		Games:      len(games),
		Teams:      len(teams),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return schema.ImportSummary{}, fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{gamesTable, teamsTable} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", s.table(table))); err != nil {
			return schema.ImportSummary{}, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	gameStmt, err := tx.PrepareContext(ctx, s.bind(fmt.Sprintf(`INSERT INTO %s
		(import_id, seq, game_id, game_date, team1_id, location1, score1, team2_id, location2, score2)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, s.table(gamesTable))))
	if err != nil {
		return schema.ImportSummary{}, fmt.Errorf("failed to prepare game insert: %w", err)
	}
	defer func() { _ = gameStmt.Close() }()

	for i, g := range games {
		if _, err := gameStmt.ExecContext(ctx, summary.ImportID, i, g.GameID, g.Date,
			g.Team1ID, int(g.Location1), g.Score1, g.Team2ID, int(g.Location2), g.Score2); err != nil {
			return schema.ImportSummary{}, fmt.Errorf("failed to insert game %d: %w", g.GameID, err)
		}
	}

	teamStmt, err := tx.PrepareContext(ctx, s.bind(fmt.Sprintf(`INSERT INTO %s (import_id, seq, team_id, team_name)
		VALUES (?, ?, ?, ?)`, s.table(teamsTable))))
	if err != nil {
		return schema.ImportSummary{}, fmt.Errorf("failed to prepare team insert: %w", err)
	}
	defer func() { _ = teamStmt.Close() }()

	for i, t := range teams {
		if _, err := teamStmt.ExecContext(ctx, summary.ImportID, i, t.TeamID, t.TeamName); err != nil {
			return schema.ImportSummary{}, fmt.Errorf("failed to insert team %d: %w", t.TeamID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, s.bind(fmt.Sprintf(`INSERT INTO %s (import_id, imported_at, source, game_count, team_count)
		VALUES (?, ?, ?, ?, ?)`, s.table(importsTable))),
		summary.ImportID, summary.ImportedAt.Format(importTimeFormat), source, len(games), len(teams)); err != nil {
		return schema.ImportSummary{}, fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return schema.ImportSummary{}, fmt.Errorf("failed to commit import: %w", err)
	}

	log.Debug().Str("import_id", summary.ImportID).Int("games", len(games)).Int("teams", len(teams)).Msg("records imported")
	return summary, nil
}

// Clear removes all stored records and import history.
func (s *RecordStore) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin clear: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{gamesTable, teamsTable, importsTable} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", s.table(table))); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}
