package outwriter

import (
	"github.com/courtside/courtside/internal/contract"
	"github.com/courtside/courtside/schema"
)

func testConfig(output schema.OutputMode) *contract.Config {
	return &contract.Config{
		Output:      output,
		Precision:   2,
		Width:       120,
		DataBackend: schema.NoneBackend,
		DateRange:   schema.OpenDateRange(),
	}
}

func testRanked() []schema.RankedTeam {
	return []schema.RankedTeam{
		{Rank: 1, Label: schema.EliteLabel, TeamSummary: schema.TeamSummary{
			TeamID: 101, TeamName: "Duke", TotalWins: 3, TotalLosses: 1, TotalWinPct: 75,
			HomeWins: 2, AwayWins: 1, NeutralLosses: 1, HomeWinPct: 100, AwayWinPct: 100,
		}},
		{Rank: 2, Label: schema.WeakLabel, TeamSummary: schema.TeamSummary{
			TeamID: 202, TeamName: "North Carolina", TotalWins: 1, TotalLosses: 2, TotalWinPct: 33.33,
			HomeWins: 1, HomeLosses: 1, AwayLosses: 1, HomeWinPct: 50,
		}},
	}
}

func testPerformance() *schema.TeamPerformance {
	return &schema.TeamPerformance{
		TeamID: 101, TeamName: "Duke",
		TotalWins: 1, TotalLosses: 1, TotalWinPct: 50,
		HomeWins: 1, HomeWinPct: 100,
		NeutralLosses: 1,
		GameHistory: []schema.GameAppearance{
			{GameID: 1, Date: 20230105, OpponentID: 202, OpponentName: "North Carolina", Location: schema.Home, OwnScore: 78, OpponentScore: 70, Win: true},
			{GameID: 3, Date: 20230110, OpponentID: 303, OpponentName: "Virginia", Location: schema.Neutral, OwnScore: 72, OpponentScore: 80},
		},
		PerformanceOverTime: []schema.PerformanceSnapshot{
			{Date: 20230105, CumulativeWins: 1, WinPercentage: 100, OpponentName: "North Carolina"},
			{Date: 20230110, CumulativeWins: 1, CumulativeLosses: 1, WinPercentage: 50, OpponentName: "Virginia"},
		},
	}
}
