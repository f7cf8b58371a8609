package outwriter

import (
	"fmt"
	"io"
	"sort"

	"github.com/courtside/courtside/internal/contract"
	"github.com/courtside/courtside/schema"
)

// Timestamp layout of the status output.
const statusTimeFormat = "2006-01-02 15:04:05"

// WriteDataStatus prints league database status as text or JSON.
func WriteDataStatus(status schema.DataStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON status")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeDataStatusText(w, status)
	}, "Wrote status")
}

func writeDataStatusText(w io.Writer, status schema.DataStatus) error {
	p := func(format string, args ...any) {
		_, _ = fmt.Fprintf(w, format, args...)
	}
	p("Data Backend: %s\n", status.Backend)
	p("Connected: %t\n", status.Connected)
	if !status.Connected {
		return nil
	}
	p("Total Games: %d\n", status.TotalGames)
	p("Total Teams: %d\n", status.TotalTeams)
	p("Total Imports: %d\n", status.TotalImports)
	if status.TotalImports > 0 {
		p("Last Import ID: %s\n", status.LastImportID)
		p("Last Import: %s\n", status.LastImportTime.Format(statusTimeFormat))
	}
	if status.TotalGames > 0 {
		p("Game Dates: %s → %s\n", schema.FormatDate(status.FirstGameDate), schema.FormatDate(status.LastGameDate))
	}
	p("Table Sizes:\n")
	tables := make([]string, 0, len(status.TableSizes))
	for table := range status.TableSizes {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		p("  %s: %d rows\n", table, status.TableSizes[table])
	}
	return nil
}

// WriteImportSummary prints the result of a database import.
func WriteImportSummary(w io.Writer, summary schema.ImportSummary) error {
	_, err := fmt.Fprintf(w, "✅ Imported %d games and %d teams from %s (import %s at %s)\n",
		summary.Games, summary.Teams, summary.Source, summary.ImportID, summary.ImportedAt.Format(statusTimeFormat))
	return err
}
