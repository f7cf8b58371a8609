// Package chart renders league performance plots as PNG files.
package chart

import (
	"errors"
	"fmt"

	"github.com/courtside/courtside/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// maxDateTicks caps the number of labelled dates on the x axis.
const maxDateTicks = 10

// Chart dimensions.
var (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// WriteWinPctChart plots a team's cumulative win percentage game by game.
func WriteWinPctChart(tp *schema.TeamPerformance, path string) error {
	if tp == nil || len(tp.PerformanceOverTime) == 0 {
		return errors.New("no games to chart")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Win Percentage Over Time", tp.TeamName)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Win Percentage (%)"
	p.Y.Min = 0
	p.Y.Max = 100
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(tp.PerformanceOverTime))
	for i, snap := range tp.PerformanceOverTime {
		pts[i].X = float64(i)
		pts[i].Y = snap.WinPercentage
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("failed to build series: %w", err)
	}
	p.Add(line, points)
	p.X.Tick.Marker = plot.ConstantTicks(dateTicks(tp.PerformanceOverTime))

	return p.Save(chartWidth, chartHeight, path)
}

// dateTicks labels at most maxDateTicks evenly spaced games with their dates.
func dateTicks(series []schema.PerformanceSnapshot) []plot.Tick {
	step := (len(series) + maxDateTicks - 1) / maxDateTicks
	if step < 1 {
		step = 1
	}
	var ticks []plot.Tick
	for i := 0; i < len(series); i += step {
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: schema.FormatDate(series[i].Date)})
	}
	return ticks
}

// WriteTopTeamsChart draws a horizontal bar per team, best ranked at the top.
func WriteTopTeamsChart(teams []schema.RankedTeam, path string) error {
	if len(teams) == 0 {
		return errors.New("no teams to chart")
	}

	// Nominal axes grow upward, so the list is reversed
	values := make(plotter.Values, len(teams))
	names := make([]string, len(teams))
	for i, t := range teams {
		j := len(teams) - 1 - i
		values[j] = t.TotalWinPct
		names[j] = t.TeamName
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Teams by Win Percentage", len(teams))
	p.X.Label.Text = "Win Percentage (%)"
	p.X.Min = 0
	p.X.Max = 100

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("failed to build bars: %w", err)
	}
	bars.Horizontal = true
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalY(names...)

	return p.Save(chartWidth, chartHeight, path)
}
