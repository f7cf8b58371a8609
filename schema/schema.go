// Package schema has the league records, derived performance models and shared constants.
package schema

// GameRecord is one played game between two teams, as loaded from the source data.
// Location1 and Location2 are independent; nothing assumes they form a Home/Away pair.
type GameRecord struct {
	GameID    int      `json:"game_id"`
	Date      int      `json:"date"` // YYYYMMDD
	Team1ID   int      `json:"team1_id"`
	Location1 Location `json:"location1"`
	Score1    int      `json:"score1"`
	Team2ID   int      `json:"team2_id"`
	Location2 Location `json:"location2"`
	Score2    int      `json:"score2"`
}

// TeamRecord maps a team identifier to its display name.
type TeamRecord struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
}

// GameAppearance is one game seen from a single team's perspective.
type GameAppearance struct {
	GameID        int      `json:"game_id"`
	Date          int      `json:"date"`
	OpponentID    int      `json:"opponent_id"`
	OpponentName  string   `json:"opponent_name"`
	Location      Location `json:"location"`
	OwnScore      int      `json:"own_score"`
	OpponentScore int      `json:"opponent_score"`
	Win           bool     `json:"win"`
}

// PerformanceSnapshot is the running record of a team after one game, in date order.
type PerformanceSnapshot struct {
	Date             int     `json:"date"`
	CumulativeWins   int     `json:"cumulative_wins"`
	CumulativeLosses int     `json:"cumulative_losses"`
	WinPercentage    float64 `json:"win_percentage"`
	OpponentName     string  `json:"opponent_name"`
}

// TeamPerformance is the aggregated record of one team over the active game set.
type TeamPerformance struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`

	TotalWins     int `json:"total_wins"`
	TotalLosses   int `json:"total_losses"`
	HomeWins      int `json:"home_wins"`
	HomeLosses    int `json:"home_losses"`
	AwayWins      int `json:"away_wins"`
	AwayLosses    int `json:"away_losses"`
	NeutralWins   int `json:"neutral_wins"`
	NeutralLosses int `json:"neutral_losses"`

	TotalWinPct   float64 `json:"total_win_pct"`
	HomeWinPct    float64 `json:"home_win_pct"`
	AwayWinPct    float64 `json:"away_win_pct"`
	NeutralWinPct float64 `json:"neutral_win_pct"`

	GameHistory         []GameAppearance      `json:"game_history"`
	PerformanceOverTime []PerformanceSnapshot `json:"performance_over_time"`
}

// GamesPlayed returns the number of games in the team's history.
func (tp *TeamPerformance) GamesPlayed() int {
	return tp.TotalWins + tp.TotalLosses
}

// DateRange is an inclusive YYYYMMDD window.
type DateRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// OpenDateRange returns the window that admits every game.
func OpenDateRange() DateRange {
	return DateRange{Start: MinDate, End: MaxDate}
}

// NewDateRange builds a window where a nil bound falls back to MinDate or MaxDate.
func NewDateRange(start, end *int) DateRange {
	r := OpenDateRange()
	if start != nil {
		r.Start = *start
	}
	if end != nil {
		r.End = *end
	}
	return r
}

// IsOpen reports whether the window admits every representable date.
func (r DateRange) IsOpen() bool {
	return r.Start <= MinDate && r.End >= MaxDate
}

// Contains reports whether date falls within the window.
func (r DateRange) Contains(date int) bool {
	return date >= r.Start && date <= r.End
}
