package leaguestore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/courtside/courtside/internal/parquet"
)

// Export file names written by ExportParquet.
const (
	GamesExportFile = "games.parquet"
	TeamsExportFile = "teams.parquet"
)

// ExportParquet writes the stored games and teams to dir as Parquet files, tagged with the latest import ID.
func (s *RecordStore) ExportParquet(ctx context.Context, dir string) error {
	if dir == "" {
		return errors.New("an export directory is required")
	}

	status, err := s.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get league status: %w", err)
	}
	if status.TotalGames == 0 && status.TotalTeams == 0 {
		return errors.New("no league records found to export")
	}

	games, err := s.LoadGames(ctx)
	if err != nil {
		return err
	}
	teams, err := s.LoadTeams(ctx)
	if err != nil {
		return err
	}

	var importID *string
	if status.LastImportID != "" {
		importID = &status.LastImportID
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)

	gamesFile := filepath.Join(dir, GamesExportFile)
	if err := parquet.WriteGamesParquet(parquet.ConvertGameRecords(games, importID), gamesFile); err != nil {
		return fmt.Errorf("failed to write games: %w", err)
	}
	fmt.Printf("Exported %d games to: %s\n", len(games), gamesFile)

	teamsFile := filepath.Join(dir, TeamsExportFile)
	if err := parquet.WriteTeamsParquet(parquet.ConvertTeamRecords(teams, importID), teamsFile); err != nil {
		return fmt.Errorf("failed to write teams: %w", err)
	}
	fmt.Printf("Exported %d teams to: %s\n", len(teams), teamsFile)

	return nil
}
