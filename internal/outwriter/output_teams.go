package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/courtside/courtside/internal/contract"
	"github.com/courtside/courtside/internal/parquet"
	"github.com/courtside/courtside/schema"
)

// standingsView selects the footer printed under a standings table.
type standingsView int

const (
	teamListView standingsView = iota
	topTeamsView
)

// WriteTeamList outputs every ranked team, dispatching based on the output format configured.
func WriteTeamList(teams []schema.RankedTeam, cfg *contract.Config, duration time.Duration) error {
	return writeStandings(teams, cfg, duration, teamListView)
}

// WriteTopTeams outputs the top-N teams, dispatching based on the output format configured.
func WriteTopTeams(teams []schema.RankedTeam, cfg *contract.Config, duration time.Duration) error {
	return writeStandings(teams, cfg, duration, topTeamsView)
}

func writeStandings(teams []schema.RankedTeam, cfg *contract.Config, duration time.Duration, view standingsView) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, teams)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStandingsCSV(w, teams, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquetFile(cfg.OutputFile, func(path string) error {
			return parquet.WriteStandingsParquet(parquet.ConvertRankedTeams(teams), path)
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStandingsTable(w, teams, cfg, fmtFloat, duration, view)
		}, "Wrote table")
	}
	return nil
}

// writeStandingsTable generates and writes the human-readable table.
func writeStandingsTable(w io.Writer, teams []schema.RankedTeam, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, view standingsView) error {
	headers := []string{"Rank", "Team", "W-L", "Win %", "Label"}
	if cfg.Detail {
		headers = append(headers, "Home", "Away", "Neutral")
	}

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, t := range teams {
		row := []string{
			strconv.Itoa(t.Rank),
			contract.TruncateName(t.TeamName, nameWidth),
			schema.WinLoss(t.TotalWins, t.TotalLosses),
			fmtFloat(t.TotalWinPct),
			contract.GetLabel(t.TotalWinPct, cfg.UseColors),
		}
		if cfg.Detail {
			row = append(
				row,
				schema.WinLoss(t.HomeWins, t.HomeLosses),       // Home
				schema.WinLoss(t.AwayWins, t.AwayLosses),       // Away
				schema.WinLoss(t.NeutralWins, t.NeutralLosses), // Neutral
			)
		}
		data = append(data, row)
	}

	if err := renderTable(w, headers, data); err != nil {
		return err
	}

	switch view {
	case topTeamsView:
		if _, err := fmt.Fprintf(w, "Showing top %d teams\n", len(teams)); err != nil {
			return err
		}
	default:
		if _, err := fmt.Fprintf(w, "Showing %d teams sorted by win %%\n", len(teams)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Completed in %v. Data backend: %s\n", duration, cfg.DataBackend); err != nil {
		return err
	}
	if view == teamListView && cfg.OutputFile == "" {
		if _, err := fmt.Fprintln(w, "\nUse 'courtside team [team name]' to view details for a specific team"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "Use 'courtside top --chart' to see a chart of the top 10 teams"); err != nil {
			return err
		}
	}
	return nil
}

// writeStandingsCSV writes ranked teams in CSV format.
func writeStandingsCSV(w io.Writer, teams []schema.RankedTeam, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"team_id",
		"team_name",
		"total_wins",
		"total_losses",
		"total_win_pct",
		"home_wins",
		"home_losses",
		"home_win_pct",
		"away_wins",
		"away_losses",
		"away_win_pct",
		"neutral_wins",
		"neutral_losses",
		"neutral_win_pct",
		"label",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, t := range teams {
			rec := []string{
				strconv.Itoa(t.Rank),
				strconv.Itoa(t.TeamID),
				t.TeamName,
				fmt.Sprintf(intFmt, t.TotalWins),
				fmt.Sprintf(intFmt, t.TotalLosses),
				fmtFloat(t.TotalWinPct),
				fmt.Sprintf(intFmt, t.HomeWins),
				fmt.Sprintf(intFmt, t.HomeLosses),
				fmtFloat(t.HomeWinPct),
				fmt.Sprintf(intFmt, t.AwayWins),
				fmt.Sprintf(intFmt, t.AwayLosses),
				fmtFloat(t.AwayWinPct),
				fmt.Sprintf(intFmt, t.NeutralWins),
				fmt.Sprintf(intFmt, t.NeutralLosses),
				fmtFloat(t.NeutralWinPct),
				t.Label,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
