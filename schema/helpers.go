package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDate renders a YYYYMMDD integer as "MM/DD/YYYY".
// Zero yields an empty string; values that are not eight digits long are returned as plain digits.
func FormatDate(date int) string {
	if date == 0 {
		return ""
	}
	s := strconv.Itoa(date)
	if len(s) != 8 {
		return s
	}
	return s[4:6] + "/" + s[6:8] + "/" + s[0:4]
}

// PlaceholderTeamName is the display name for a team ID with no roster entry.
func PlaceholderTeamName(teamID int) string {
	return fmt.Sprintf("Team %d", teamID)
}

// String returns the display name of the location.
func (l Location) String() string {
	switch l {
	case Home:
		return "Home"
	case Away:
		return "Away"
	default:
		return "Neutral"
	}
}

// ResultLetter returns "W" or "L" for a game appearance.
func (g GameAppearance) ResultLetter() string {
	if g.Win {
		return "W"
	}
	return "L"
}

// ScoreLine returns the "own-opponent" score text.
func (g GameAppearance) ScoreLine() string {
	return fmt.Sprintf("%d-%d", g.OwnScore, g.OpponentScore)
}

// WinLoss formats a win/loss pair as "W-L".
func WinLoss(wins, losses int) string {
	return fmt.Sprintf("%d-%d", wins, losses)
}

// ChartFileSlug turns a team name into the lower-case, underscore-separated stem used for chart files.
func ChartFileSlug(teamName string) string {
	return strings.ToLower(strings.ReplaceAll(teamName, " ", "_"))
}
