package outwriter

import (
	"fmt"
	"os"

	"github.com/courtside/courtside/schema"
)

// LogLoadHeader prints the load summary to stderr so stdout stays machine-readable.
func LogLoadHeader(source string, games, teams int) {
	_, _ = fmt.Fprintf(os.Stderr, "🏀 Loaded %d games and %d teams (%s)\n", games, teams, source)
}

// LogRangeHeader prints the active date window to stderr.
func LogRangeHeader(r schema.DateRange, activeGames int) {
	_, _ = fmt.Fprintf(os.Stderr, "📅 Range: %s → %s (%d games)\n", formatBound(r.Start, schema.MinDate), formatBound(r.End, schema.MaxDate), activeGames)
}

// LogChartSaved reports a written chart file.
func LogChartSaved(path string) {
	_, _ = fmt.Fprintf(os.Stderr, "📈 Plot saved as %s\n", path)
}

// formatBound renders a window bound, or "any" when it is the open default.
func formatBound(date, open int) string {
	if date == open {
		return "any"
	}
	return schema.FormatDate(date)
}
