package core

import (
	"github.com/courtside/courtside/core/agg"
	"github.com/courtside/courtside/schema"
)

// Session is an immutable view of the league over one date window.
// The raw records are shared between sessions; the performances belong to this one.
type Session struct {
	games     []schema.GameRecord
	teams     []schema.TeamRecord
	dateRange schema.DateRange
	active    int
	perfs     map[int]*schema.TeamPerformance
}

// NewSession validates the raw records, filters them to r and aggregates the result.
func NewSession(games []schema.GameRecord, teams []schema.TeamRecord, r schema.DateRange) (*Session, error) {
	if err := agg.Validate(games, teams); err != nil {
		return nil, err
	}
	active := FilterByDate(games, r)
	perfs, err := agg.Aggregate(active, teams)
	if err != nil {
		return nil, err
	}
	return &Session{
		games:     games,
		teams:     teams,
		dateRange: r,
		active:    len(active),
		perfs:     perfs,
	}, nil
}

// WithRange derives a new session over the same raw records. The receiver is unchanged.
func (s *Session) WithRange(r schema.DateRange) (*Session, error) {
	return NewSession(s.games, s.teams, r)
}

// Range returns the active date window.
func (s *Session) Range() schema.DateRange { return s.dateRange }

// TotalGames returns the number of raw game records.
func (s *Session) TotalGames() int { return len(s.games) }

// TotalTeams returns the number of raw team records.
func (s *Session) TotalTeams() int { return len(s.teams) }

// ActiveGames returns the number of games inside the window.
func (s *Session) ActiveGames() int { return s.active }

// Performances returns the performance map. Callers must not modify it.
func (s *Session) Performances() map[int]*schema.TeamPerformance { return s.perfs }

// Team selects a team by case-insensitive name.
func (s *Session) Team(name string) (*schema.TeamPerformance, bool) {
	return SelectByName(s.perfs, name)
}

// TeamByID selects a team by identifier.
func (s *Session) TeamByID(teamID int) (*schema.TeamPerformance, bool) {
	return SelectByID(s.perfs, teamID)
}

// Top returns the n best teams.
func (s *Session) Top(n int) []*schema.TeamPerformance {
	return TopN(s.perfs, n)
}

// Ranked returns every team with at least one game in the window, best first.
func (s *Session) Ranked() []*schema.TeamPerformance {
	return RankAll(s.perfs)
}

// Lookup resolves a team by ID when teamID > 0, otherwise by name, as a *schema.TeamNotFoundError on a miss.
func (s *Session) Lookup(name string, teamID int) (*schema.TeamPerformance, error) {
	return lookupTeam(s.perfs, name, teamID)
}
