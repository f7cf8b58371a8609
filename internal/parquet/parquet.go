// Package parquet provides data structures and functions for exporting league
// records and team performances to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"

	"github.com/courtside/courtside/schema"
	"github.com/parquet-go/parquet-go"
)

// Game is one raw game record.
// This struct maps to the league_games database table.
type Game struct {
	GameID    int64 `parquet:"game_id,snappy"`
	Date      int32 `parquet:"date,snappy"`
	Team1ID   int64 `parquet:"team1_id,snappy"`
	Location1 int32 `parquet:"location1,snappy"`
	Score1    int32 `parquet:"score1,snappy"`
	Team2ID   int64 `parquet:"team2_id,snappy"`
	Location2 int32 `parquet:"location2,snappy"`
	Score2    int32 `parquet:"score2,snappy"`

	// ImportID is the batch that stored the record (nullable for CSV-sourced rows)
	ImportID *string `parquet:"import_id,optional,snappy"`
}

// Team is one roster entry.
// This struct maps to the league_teams database table.
type Team struct {
	TeamID   int64   `parquet:"team_id,snappy"`
	TeamName string  `parquet:"team_name,snappy"`
	ImportID *string `parquet:"import_id,optional,snappy"`
}

// TeamStanding is one ranked row of a team list.
type TeamStanding struct {
	Rank          int32   `parquet:"rank,snappy"`
	TeamID        int64   `parquet:"team_id,snappy"`
	TeamName      string  `parquet:"team_name,snappy"`
	Label         string  `parquet:"label,snappy"`
	TotalWins     int32   `parquet:"total_wins,snappy"`
	TotalLosses   int32   `parquet:"total_losses,snappy"`
	HomeWins      int32   `parquet:"home_wins,snappy"`
	HomeLosses    int32   `parquet:"home_losses,snappy"`
	AwayWins      int32   `parquet:"away_wins,snappy"`
	AwayLosses    int32   `parquet:"away_losses,snappy"`
	NeutralWins   int32   `parquet:"neutral_wins,snappy"`
	NeutralLosses int32   `parquet:"neutral_losses,snappy"`
	TotalWinPct   float64 `parquet:"total_win_pct,snappy"`
	HomeWinPct    float64 `parquet:"home_win_pct,snappy"`
	AwayWinPct    float64 `parquet:"away_win_pct,snappy"`
	NeutralWinPct float64 `parquet:"neutral_win_pct,snappy"`
}

// Appearance is one game of a team's history joined with the running record after it.
type Appearance struct {
	TeamID           int64   `parquet:"team_id,snappy"`
	TeamName         string  `parquet:"team_name,snappy"`
	GameID           int64   `parquet:"game_id,snappy"`
	Date             int32   `parquet:"date,snappy"`
	OpponentID       int64   `parquet:"opponent_id,snappy"`
	OpponentName     string  `parquet:"opponent_name,snappy"`
	Location         string  `parquet:"location,snappy"`
	OwnScore         int32   `parquet:"own_score,snappy"`
	OpponentScore    int32   `parquet:"opponent_score,snappy"`
	Win              bool    `parquet:"win,snappy"`
	CumulativeWins   int32   `parquet:"cumulative_wins,snappy"`
	CumulativeLosses int32   `parquet:"cumulative_losses,snappy"`
	WinPercentage    float64 `parquet:"win_percentage,snappy"`
}

// writeRows writes data to outputPath with a schema inferred from T's struct tags.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// readRows reads every row of a Parquet file into T.
func readRows[T any](inputPath string) ([]T, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[T](file)
	defer func() { _ = reader.Close() }()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}
	return rows[:n], nil
}

// WriteGamesParquet writes raw game rows to a Parquet file.
func WriteGamesParquet(data []Game, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteTeamsParquet writes roster rows to a Parquet file.
func WriteTeamsParquet(data []Team, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteStandingsParquet writes ranked team rows to a Parquet file.
func WriteStandingsParquet(data []TeamStanding, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteAppearancesParquet writes game history rows to a Parquet file.
func WriteAppearancesParquet(data []Appearance, outputPath string) error {
	return writeRows(data, outputPath)
}

// ReadGamesParquet reads a file written by WriteGamesParquet.
func ReadGamesParquet(inputPath string) ([]Game, error) {
	return readRows[Game](inputPath)
}

// ReadTeamsParquet reads a file written by WriteTeamsParquet.
func ReadTeamsParquet(inputPath string) ([]Team, error) {
	return readRows[Team](inputPath)
}

// ConvertGameRecords converts schema.GameRecord to Game for Parquet export.
func ConvertGameRecords(records []schema.GameRecord, importID *string) []Game {
	result := make([]Game, len(records))
	for i, g := range records {
		result[i] = Game{
			GameID:    int64(g.GameID),
			Date:      int32(g.Date),
			Team1ID:   int64(g.Team1ID),
			Location1: int32(g.Location1),
			Score1:    int32(g.Score1),
			Team2ID:   int64(g.Team2ID),
			Location2: int32(g.Location2),
			Score2:    int32(g.Score2),
			ImportID:  importID,
		}
	}
	return result
}

// ConvertTeamRecords converts schema.TeamRecord to Team for Parquet export.
func ConvertTeamRecords(records []schema.TeamRecord, importID *string) []Team {
	result := make([]Team, len(records))
	for i, t := range records {
		result[i] = Team{TeamID: int64(t.TeamID), TeamName: t.TeamName, ImportID: importID}
	}
	return result
}

// ToGameRecords converts Parquet rows back to schema.GameRecord.
func ToGameRecords(rows []Game) []schema.GameRecord {
	result := make([]schema.GameRecord, len(rows))
	for i, g := range rows {
		result[i] = schema.GameRecord{
			GameID:    int(g.GameID),
			Date:      int(g.Date),
			Team1ID:   int(g.Team1ID),
			Location1: schema.Location(g.Location1),
			Score1:    int(g.Score1),
			Team2ID:   int(g.Team2ID),
			Location2: schema.Location(g.Location2),
			Score2:    int(g.Score2),
		}
	}
	return result
}

// ToTeamRecords converts Parquet rows back to schema.TeamRecord.
func ToTeamRecords(rows []Team) []schema.TeamRecord {
	result := make([]schema.TeamRecord, len(rows))
	for i, t := range rows {
		result[i] = schema.TeamRecord{TeamID: int(t.TeamID), TeamName: t.TeamName}
	}
	return result
}

// ConvertRankedTeams converts ranked teams to TeamStanding rows.
func ConvertRankedTeams(teams []schema.RankedTeam) []TeamStanding {
	result := make([]TeamStanding, len(teams))
	for i, t := range teams {
		result[i] = TeamStanding{
			Rank:          int32(t.Rank),
			TeamID:        int64(t.TeamID),
			TeamName:      t.TeamName,
			Label:         t.Label,
			TotalWins:     int32(t.TotalWins),
			TotalLosses:   int32(t.TotalLosses),
			HomeWins:      int32(t.HomeWins),
			HomeLosses:    int32(t.HomeLosses),
			AwayWins:      int32(t.AwayWins),
			AwayLosses:    int32(t.AwayLosses),
			NeutralWins:   int32(t.NeutralWins),
			NeutralLosses: int32(t.NeutralLosses),
			TotalWinPct:   t.TotalWinPct,
			HomeWinPct:    t.HomeWinPct,
			AwayWinPct:    t.AwayWinPct,
			NeutralWinPct: t.NeutralWinPct,
		}
	}
	return result
}

// ConvertTeamHistory joins a team's game history with its cumulative series.
// Both slices are in the same date order, one entry per game.
func ConvertTeamHistory(tp *schema.TeamPerformance) []Appearance {
	result := make([]Appearance, len(tp.GameHistory))
	for i, g := range tp.GameHistory {
		row := Appearance{
			TeamID:        int64(tp.TeamID),
			TeamName:      tp.TeamName,
			GameID:        int64(g.GameID),
			Date:          int32(g.Date),
			OpponentID:    int64(g.OpponentID),
			OpponentName:  g.OpponentName,
			Location:      g.Location.String(),
			OwnScore:      int32(g.OwnScore),
			OpponentScore: int32(g.OpponentScore),
			Win:           g.Win,
		}
		if i < len(tp.PerformanceOverTime) {
			snap := tp.PerformanceOverTime[i]
			row.CumulativeWins = int32(snap.CumulativeWins)
			row.CumulativeLosses = int32(snap.CumulativeLosses)
			row.WinPercentage = snap.WinPercentage
		}
		result[i] = row
	}
	return result
}
