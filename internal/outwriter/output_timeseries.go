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

// WriteTimeseries outputs the cumulative win-percentage series, dispatching based on the output format configured.
func WriteTimeseries(result schema.TimeseriesResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON timeseries results"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimeseriesCSV(w, result, fmtFloat, intFmt)
		}, "Wrote CSV timeseries results"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquetFile(cfg.OutputFile, func(path string) error {
			return parquet.WriteAppearancesParquet(timeseriesRows(result), path)
		}, "Wrote Parquet timeseries results"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimeseriesTable(w, result, fmtFloat, duration)
		}, "Wrote timeseries table"); err != nil {
			return fmt.Errorf("error writing timeseries table output: %w", err)
		}
	}
	return nil
}

// writeTimeseriesTable prints one row per game with the running record.
func writeTimeseriesTable(w io.Writer, result schema.TimeseriesResult, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "%s win %% over time\n", result.TeamName); err != nil {
		return err
	}

	var data [][]string
	for i, p := range result.Points {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			schema.FormatDate(p.Date),
			p.OpponentName,
			schema.WinLoss(p.CumulativeWins, p.CumulativeLosses),
			fmtFloat(p.WinPercentage),
		})
	}
	if err := renderTable(w, []string{"Game", "Date", "Opponent", "Record", "Win %"}, data); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Timeseries completed in %v\n", duration)
	return err
}

// writeTimeseriesCSV writes the series in CSV format.
func writeTimeseriesCSV(w io.Writer, result schema.TimeseriesResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"team_id", "team_name", "game", "date", "opponent_name", "cumulative_wins", "cumulative_losses", "win_percentage"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, p := range result.Points {
			rec := []string{
				strconv.Itoa(result.TeamID),
				result.TeamName,
				strconv.Itoa(i + 1),
				schema.FormatDate(p.Date),
				p.OpponentName,
				fmt.Sprintf(intFmt, p.CumulativeWins),
				fmt.Sprintf(intFmt, p.CumulativeLosses),
				fmtFloat(p.WinPercentage),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// timeseriesRows maps the series onto appearance rows without per-game scores.
func timeseriesRows(result schema.TimeseriesResult) []parquet.Appearance {
	rows := make([]parquet.Appearance, len(result.Points))
	prevWins := 0
	for i, p := range result.Points {
		rows[i] = parquet.Appearance{
			TeamID:           int64(result.TeamID),
			TeamName:         result.TeamName,
			Date:             int32(p.Date),
			OpponentName:     p.OpponentName,
			Win:              p.CumulativeWins > prevWins,
			CumulativeWins:   int32(p.CumulativeWins),
			CumulativeLosses: int32(p.CumulativeLosses),
			WinPercentage:    p.WinPercentage,
		}
		prevWins = p.CumulativeWins
	}
	return rows
}
