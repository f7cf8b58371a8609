// Package agg has aggregation logic for league game results.
package agg

import (
	"sort"
	"strconv"
	"strings"

	"github.com/courtside/courtside/schema"
	"github.com/shopspring/decimal"
)

// side is one participant's view of a game record.
type side struct {
	teamID        int
	location      schema.Location
	ownScore      int
	opponentID    int
	opponentScore int
}

// sides splits a game into the two participant views, team 1 first.
func sides(g schema.GameRecord) [2]side {
	return [2]side{
		{teamID: g.Team1ID, location: g.Location1, ownScore: g.Score1, opponentID: g.Team2ID, opponentScore: g.Score2},
		{teamID: g.Team2ID, location: g.Location2, ownScore: g.Score2, opponentID: g.Team1ID, opponentScore: g.Score1},
	}
}

// performanceTable holds one performance per team ID seen in the game set.
// Entries are only created through getOrInsert.
type performanceTable struct {
	byID  map[int]*schema.TeamPerformance
	names map[int]string
}

// newPerformanceTable builds the name lookup. The first record for a team ID wins.
func newPerformanceTable(teams []schema.TeamRecord) *performanceTable {
	names := make(map[int]string, len(teams))
	for _, t := range teams {
		if _, seen := names[t.TeamID]; !seen {
			names[t.TeamID] = t.TeamName
		}
	}
	return &performanceTable{
		byID:  make(map[int]*schema.TeamPerformance),
		names: names,
	}
}

// nameOf returns the roster name of a team, or its placeholder.
func (pt *performanceTable) nameOf(teamID int) string {
	if name, ok := pt.names[teamID]; ok {
		return name
	}
	return schema.PlaceholderTeamName(teamID)
}

// getOrInsert returns the performance for teamID, creating an empty one on first sight.
func (pt *performanceTable) getOrInsert(teamID int) *schema.TeamPerformance {
	tp, ok := pt.byID[teamID]
	if !ok {
		tp = &schema.TeamPerformance{
			TeamID:   teamID,
			TeamName: pt.nameOf(teamID),
		}
		pt.byID[teamID] = tp
	}
	return tp
}

// record applies one side of a game to its team.
// A side wins only when it outscores the opponent, so a tie is a loss for both teams.
func (pt *performanceTable) record(g schema.GameRecord, s side) {
	tp := pt.getOrInsert(s.teamID)
	win := s.ownScore > s.opponentScore

	if win {
		tp.TotalWins++
	} else {
		tp.TotalLosses++
	}

	switch s.location {
	case schema.Home:
		if win {
			tp.HomeWins++
		} else {
			tp.HomeLosses++
		}
	case schema.Away:
		if win {
			tp.AwayWins++
		} else {
			tp.AwayLosses++
		}
	default:
		if win {
			tp.NeutralWins++
		} else {
			tp.NeutralLosses++
		}
	}

	tp.GameHistory = append(tp.GameHistory, schema.GameAppearance{
		GameID:        g.GameID,
		Date:          g.Date,
		OpponentID:    s.opponentID,
		OpponentName:  pt.nameOf(s.opponentID),
		Location:      s.location,
		OwnScore:      s.ownScore,
		OpponentScore: s.opponentScore,
		Win:           win,
	})
}

// Aggregate builds one TeamPerformance per team ID appearing in games.
// It is a pure function: the inputs are not modified and a fresh map is returned on every call.
func Aggregate(games []schema.GameRecord, teams []schema.TeamRecord) (map[int]*schema.TeamPerformance, error) {
	if err := Validate(games, teams); err != nil {
		return nil, err
	}

	pt := newPerformanceTable(teams)
	for _, g := range games {
		for _, s := range sides(g) {
			pt.record(g, s)
		}
	}

	for _, tp := range pt.byID {
		finalize(tp)
	}
	return pt.byID, nil
}

// finalize orders the history, derives the cumulative series and computes the bucket percentages.
func finalize(tp *schema.TeamPerformance) {
	// Same-date games keep their input order.
	sort.SliceStable(tp.GameHistory, func(i, j int) bool {
		return tp.GameHistory[i].Date < tp.GameHistory[j].Date
	})

	tp.PerformanceOverTime = make([]schema.PerformanceSnapshot, 0, len(tp.GameHistory))
	cumWins, cumLosses := 0, 0
	for _, g := range tp.GameHistory {
		if g.Win {
			cumWins++
		} else {
			cumLosses++
		}
		tp.PerformanceOverTime = append(tp.PerformanceOverTime, schema.PerformanceSnapshot{
			Date:             g.Date,
			CumulativeWins:   cumWins,
			CumulativeLosses: cumLosses,
			WinPercentage:    WinPct(cumWins, cumWins+cumLosses),
			OpponentName:     g.OpponentName,
		})
	}

	tp.TotalWinPct = WinPct(tp.TotalWins, tp.TotalWins+tp.TotalLosses)
	tp.HomeWinPct = WinPct(tp.HomeWins, tp.HomeWins+tp.HomeLosses)
	tp.AwayWinPct = WinPct(tp.AwayWins, tp.AwayWins+tp.AwayLosses)
	tp.NeutralWinPct = WinPct(tp.NeutralWins, tp.NeutralWins+tp.NeutralLosses)
}

// WinPct returns wins/games*100 rounded half-to-even to 2 decimals, or 0 when games is 0.
// The quotient is computed in decimal so the rounding sees the exact value.
func WinPct(wins, games int) float64 {
	if games <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(wins)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(games)))
	return pct.RoundBank(2).InexactFloat64()
}

// Validate returns the first record that violates its type contract, teams first.
func Validate(games []schema.GameRecord, teams []schema.TeamRecord) error {
	for _, t := range teams {
		if err := validateTeam(t); err != nil {
			return err
		}
	}
	for _, g := range games {
		if err := validateGame(g); err != nil {
			return err
		}
	}
	return nil
}

// validateGame checks the type contract of a game record.
func validateGame(g schema.GameRecord) error {
	invalid := func(reason string) error {
		return &schema.InvalidRecordError{Kind: schema.GameKind, ID: g.GameID, Reason: reason}
	}
	switch {
	case g.GameID < 0:
		return invalid("negative game id")
	case g.Team1ID <= 0 || g.Team2ID <= 0:
		return invalid("non-positive team id")
	case g.Score1 < 0 || g.Score2 < 0:
		return invalid("negative score")
	case g.Date <= schema.MinDate || g.Date > schema.MaxDate:
		return invalid("missing or out of range date " + strconv.Itoa(g.Date))
	}
	return nil
}

// validateTeam checks the type contract of a team record.
func validateTeam(t schema.TeamRecord) error {
	switch {
	case t.TeamID <= 0:
		return &schema.InvalidRecordError{Kind: schema.TeamKind, ID: t.TeamID, Reason: "non-positive team id"}
	case strings.TrimSpace(t.TeamName) == "":
		return &schema.InvalidRecordError{Kind: schema.TeamKind, ID: t.TeamID, Reason: "missing team name"}
	}
	return nil
}
