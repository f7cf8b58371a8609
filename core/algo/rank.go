// Package algo has ordering logic for team performances.
package algo

import (
	"sort"

	"github.com/courtside/courtside/schema"
)

// RankTeams orders performances by total win percentage, highest first.
// Equal percentages are ordered by ascending team ID so the result does not
// depend on map iteration order. The input map is not modified.
func RankTeams(perfs map[int]*schema.TeamPerformance) []*schema.TeamPerformance {
	ranked := make([]*schema.TeamPerformance, 0, len(perfs))
	for _, tp := range perfs {
		ranked = append(ranked, tp)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalWinPct != ranked[j].TotalWinPct {
			return ranked[i].TotalWinPct > ranked[j].TotalWinPct
		}
		return ranked[i].TeamID < ranked[j].TeamID
	})
	return ranked
}

// TopN returns the first n teams in RankTeams order. If n is greater than the
// number of teams, all teams are returned. A non-positive n yields no teams.
func TopN(perfs map[int]*schema.TeamPerformance, n int) []*schema.TeamPerformance {
	if n <= 0 {
		return []*schema.TeamPerformance{}
	}
	ranked := RankTeams(perfs)
	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}
