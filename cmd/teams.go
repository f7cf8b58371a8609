package cmd

import (
	"github.com/courtside/courtside/core"
	"github.com/courtside/courtside/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// teamsCmd lists every team sorted by win percentage.
var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List all teams sorted by win percentage.",
	Long: `Aggregate every game in the date window and list all teams by overall win percentage.

Ties are a loss for both sides. Teams with equal win percentage are ordered by team ID.
Teams that appear in games but not in the teams file are shown as "Team <id>".

Examples:
  # Full league standings
  courtside teams --games games.csv --teams teams.csv

  # Home, away and neutral splits for the second half of the season
  courtside teams --games games.csv --teams teams.csv --start-date 2024-01-15 --detail

  # Read records from the league database
  courtside teams --data-backend sqlite

  # Export standings to CSV
  courtside teams --games games.csv --teams teams.csv --output csv --output-file standings.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeams(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list teams", err)
		}
	},
}

// topCmd shows the best teams by win percentage.
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the top teams by win percentage.",
	Long: `Rank teams by overall win percentage and show the first N (10 by default).

Examples:
  # Top 10 teams
  courtside top --games games.csv --teams teams.csv

  # Top 5 in February with a bar chart saved as top_teams.png
  courtside top --games games.csv --teams teams.csv --limit 5 --start-date 20240201 --end-date 20240229 --chart`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Config files and env vars still override this
		viper.SetDefault("limit", contract.DefaultTopLimit)
		return sharedSetup(rootCtx, cmd, args)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTop(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot rank teams", err)
		}
	},
}
