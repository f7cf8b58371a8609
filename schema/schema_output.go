package schema

// Performance labels by total win percentage.
const (
	EliteLabel   = "Elite"
	StrongLabel  = "Strong"
	AverageLabel = "Average"
	WeakLabel    = "Weak"
)

// TeamSummary is a TeamPerformance without its per-game history.
type TeamSummary struct {
	TeamID        int     `json:"team_id"`
	TeamName      string  `json:"team_name"`
	TotalWins     int     `json:"total_wins"`
	TotalLosses   int     `json:"total_losses"`
	HomeWins      int     `json:"home_wins"`
	HomeLosses    int     `json:"home_losses"`
	AwayWins      int     `json:"away_wins"`
	AwayLosses    int     `json:"away_losses"`
	NeutralWins   int     `json:"neutral_wins"`
	NeutralLosses int     `json:"neutral_losses"`
	TotalWinPct   float64 `json:"total_win_pct"`
	HomeWinPct    float64 `json:"home_win_pct"`
	AwayWinPct    float64 `json:"away_win_pct"`
	NeutralWinPct float64 `json:"neutral_win_pct"`
}

// RankedTeam adds presentation data to a TeamSummary.
type RankedTeam struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	TeamSummary
}

// TeamDetail is the full single-team view.
type TeamDetail struct {
	Label string    `json:"label"`
	Range DateRange `json:"date_range"`
	*TeamPerformance
}

// TimeseriesResult is the cumulative win-percentage series of one team.
type TimeseriesResult struct {
	TeamID   int                   `json:"team_id"`
	TeamName string                `json:"team_name"`
	Range    DateRange             `json:"date_range"`
	Points   []PerformanceSnapshot `json:"points"`
}

// GetPlainLabel returns a plain text label for a total win percentage.
func GetPlainLabel(winPct float64) string {
	switch {
	case winPct >= 75:
		return EliteLabel
	case winPct >= 60:
		return StrongLabel
	case winPct >= 40:
		return AverageLabel
	default:
		return WeakLabel
	}
}

// Summarize drops the per-game history from a performance.
func Summarize(tp *TeamPerformance) TeamSummary {
	return TeamSummary{
		TeamID:        tp.TeamID,
		TeamName:      tp.TeamName,
		TotalWins:     tp.TotalWins,
		TotalLosses:   tp.TotalLosses,
		HomeWins:      tp.HomeWins,
		HomeLosses:    tp.HomeLosses,
		AwayWins:      tp.AwayWins,
		AwayLosses:    tp.AwayLosses,
		NeutralWins:   tp.NeutralWins,
		NeutralLosses: tp.NeutralLosses,
		TotalWinPct:   tp.TotalWinPct,
		HomeWinPct:    tp.HomeWinPct,
		AwayWinPct:    tp.AwayWinPct,
		NeutralWinPct: tp.NeutralWinPct,
	}
}

// EnrichTeams adds rank and label to an already ordered list of performances.
func EnrichTeams(teams []*TeamPerformance) []RankedTeam {
	output := make([]RankedTeam, len(teams))
	for i, t := range teams {
		output[i] = RankedTeam{
			Rank:        i + 1,
			Label:       GetPlainLabel(t.TotalWinPct),
			TeamSummary: Summarize(t),
		}
	}
	return output
}

// NewTeamDetail wraps a performance with its label and the active window.
func NewTeamDetail(tp *TeamPerformance, r DateRange) TeamDetail {
	return TeamDetail{
		Label:           GetPlainLabel(tp.TotalWinPct),
		Range:           r,
		TeamPerformance: tp,
	}
}

// NewTimeseriesResult extracts the cumulative series of a performance.
func NewTimeseriesResult(tp *TeamPerformance, r DateRange) TimeseriesResult {
	return TimeseriesResult{
		TeamID:   tp.TeamID,
		TeamName: tp.TeamName,
		Range:    r,
		Points:   tp.PerformanceOverTime,
	}
}
