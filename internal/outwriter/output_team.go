package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/courtside/courtside/internal/contract"
	"github.com/courtside/courtside/internal/parquet"
	"github.com/courtside/courtside/schema"
)

// WriteTeamDetail outputs one team's splits and game history, dispatching based on the output format configured.
func WriteTeamDetail(detail schema.TeamDetail, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, detail)
		}, "Wrote JSON team detail"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryCSV(w, detail.TeamPerformance, fmtFloat, intFmt)
		}, "Wrote CSV team history"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquetFile(cfg.OutputFile, func(path string) error {
			return parquet.WriteAppearancesParquet(parquet.ConvertTeamHistory(detail.TeamPerformance), path)
		}, "Wrote Parquet team history"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTeamDetailText(w, detail, cfg, fmtFloat, duration)
		}, "Wrote team detail")
	}
	return nil
}

// writeTeamDetailText prints the split summary followed by the game history table.
func writeTeamDetailText(w io.Writer, detail schema.TeamDetail, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	tp := detail.TeamPerformance
	title := fmt.Sprintf("%s Performance Details (%s)", tp.TeamName, contract.GetLabel(tp.TotalWinPct, cfg.UseColors))
	lines := []string{
		"",
		title,
		strings.Repeat("=", 50),
		"Overall:  " + pctRecord(fmtFloat, tp.TotalWinPct, tp.TotalWins, tp.TotalLosses),
		"Home:     " + pctRecord(fmtFloat, tp.HomeWinPct, tp.HomeWins, tp.HomeLosses),
		"Away:     " + pctRecord(fmtFloat, tp.AwayWinPct, tp.AwayWins, tp.AwayLosses),
		"Neutral:  " + pctRecord(fmtFloat, tp.NeutralWinPct, tp.NeutralWins, tp.NeutralLosses),
		"",
		"Game History:",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, g := range tp.GameHistory {
		data = append(data, []string{
			schema.FormatDate(g.Date),
			contract.TruncateName(g.OpponentName, nameWidth),
			g.Location.String(),
			g.ResultLetter(),
			g.ScoreLine(),
		})
	}
	if err := renderTable(w, []string{"Date", "Opponent", "Location", "Result", "Score"}, data); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%d games played. Completed in %v\n", tp.GamesPlayed(), duration); err != nil {
		return err
	}
	return nil
}

// writeHistoryCSV writes a team's game history with the running record after each game.
func writeHistoryCSV(w io.Writer, tp *schema.TeamPerformance, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"team_id",
		"team_name",
		"game_id",
		"date",
		"opponent_id",
		"opponent_name",
		"location",
		"result",
		"own_score",
		"opponent_score",
		"cumulative_wins",
		"cumulative_losses",
		"win_percentage",
	}
	rows := parquet.ConvertTeamHistory(tp)
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, r := range rows {
			rec := []string{
				strconv.Itoa(tp.TeamID),
				tp.TeamName,
				strconv.FormatInt(r.GameID, 10),
				schema.FormatDate(int(r.Date)),
				strconv.FormatInt(r.OpponentID, 10),
				r.OpponentName,
				r.Location,
				tp.GameHistory[i].ResultLetter(),
				fmt.Sprintf(intFmt, r.OwnScore),
				fmt.Sprintf(intFmt, r.OpponentScore),
				fmt.Sprintf(intFmt, r.CumulativeWins),
				fmt.Sprintf(intFmt, r.CumulativeLosses),
				fmtFloat(r.WinPercentage),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
