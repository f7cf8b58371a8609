package core

import (
	"strconv"
	"strings"

	"github.com/courtside/courtside/core/algo"
	"github.com/courtside/courtside/schema"
)

// SelectByID returns the performance for teamID.
func SelectByID(perfs map[int]*schema.TeamPerformance, teamID int) (*schema.TeamPerformance, bool) {
	tp, ok := perfs[teamID]
	return tp, ok
}

// SelectByName returns the performance whose name equals name, ignoring case.
// When several teams share a name, the lowest team ID wins.
func SelectByName(perfs map[int]*schema.TeamPerformance, name string) (*schema.TeamPerformance, bool) {
	var match *schema.TeamPerformance
	for _, tp := range perfs {
		if !strings.EqualFold(tp.TeamName, name) {
			continue
		}
		if match == nil || tp.TeamID < match.TeamID {
			match = tp
		}
	}
	return match, match != nil
}

// TopN returns the n best teams by total win percentage, ties broken by ascending team ID.
func TopN(perfs map[int]*schema.TeamPerformance, n int) []*schema.TeamPerformance {
	return algo.TopN(perfs, n)
}

// RankAll returns every team in TopN order.
func RankAll(perfs map[int]*schema.TeamPerformance) []*schema.TeamPerformance {
	return algo.RankTeams(perfs)
}

// lookupTeam resolves a team by ID when teamID > 0, otherwise by name.
func lookupTeam(perfs map[int]*schema.TeamPerformance, name string, teamID int) (*schema.TeamPerformance, error) {
	if teamID > 0 {
		if tp, ok := SelectByID(perfs, teamID); ok {
			return tp, nil
		}
		return nil, &schema.TeamNotFoundError{Query: "id " + strconv.Itoa(teamID)}
	}
	if tp, ok := SelectByName(perfs, name); ok {
		return tp, nil
	}
	return nil, &schema.TeamNotFoundError{Query: strconv.Quote(name)}
}
