package cmd

import (
	"errors"

	"github.com/courtside/courtside/core"
	"github.com/courtside/courtside/internal/contract"
	"github.com/spf13/cobra"
)

var errNoTeamSelected = errors.New("a team name argument or --id is required")

// requireTeam checks that a team was selected by name or ID.
func requireTeam(cmd *cobra.Command, args []string) error {
	if err := sharedSetup(rootCtx, cmd, args); err != nil {
		return err
	}
	if cfg.TeamName == "" && cfg.TeamID == 0 {
		return errNoTeamSelected
	}
	return nil
}

// teamCmd shows the detail view of one team.
var teamCmd = &cobra.Command{
	Use:   "team [name]",
	Short: "Show the record and game history of one team.",
	Long: `Show the overall, home, away and neutral record of one team plus its game history.

Names are matched case-insensitively. Use --id to select by team ID instead.

Examples:
  # Detail view by name
  courtside team "north carolina" --games games.csv --teams teams.csv

  # Detail view by ID, with a win percentage chart saved as <team>_win_pct.png
  courtside team --id 1181 --games games.csv --teams teams.csv --chart --chart-dir charts

  # Game history as JSON
  courtside team Duke --games games.csv --teams teams.csv --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: requireTeam,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeam(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show team", err)
		}
	},
}

// timeseriesCmd shows the cumulative win percentage of one team after each game.
var timeseriesCmd = &cobra.Command{
	Use:   "timeseries [name]",
	Short: "Track how a team's win percentage changes game by game.",
	Long: `Walk a team's games in date order and show the running record and win percentage after each one.

Games on the same date keep their order from the games file.

Examples:
  # Whole season
  courtside timeseries Duke --games games.csv --teams teams.csv

  # Conference play only, exported for plotting elsewhere
  courtside timeseries --id 1181 --games games.csv --teams teams.csv --start-date 2024-01-01 --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: requireTeam,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTimeseries(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run timeseries", err)
		}
	},
}
