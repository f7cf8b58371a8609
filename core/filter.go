package core

import "github.com/courtside/courtside/schema"

// FilterByDate returns the games whose date lies in r, both ends inclusive.
// The input is never modified and the result is always a new slice, even for an open range.
func FilterByDate(games []schema.GameRecord, r schema.DateRange) []schema.GameRecord {
	filtered := make([]schema.GameRecord, 0, len(games))
	for _, g := range games {
		if r.Contains(g.Date) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
