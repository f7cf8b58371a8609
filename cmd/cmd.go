// Package cmd defines the command-line interface for courtside.
package cmd

import (
	"github.com/courtside/courtside/internal/contract"
	"github.com/courtside/courtside/internal/logger"
	"github.com/courtside/courtside/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(timeseriesCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the db subcommands to the parent db command
	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbImportCmd)
	dbCmd.AddCommand(dbExportCmd)
	dbCmd.AddCommand(dbClearCmd)
	dbCmd.AddCommand(dbMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("games", "", "Path to the games CSV file (no header row)")
	rootCmd.PersistentFlags().String("teams", "", "Path to the teams CSV file (with header row)")
	rootCmd.PersistentFlags().String("start-date", "", "Inclusive start date (YYYY-MM-DD or YYYYMMDD)")
	rootCmd.PersistentFlags().String("end-date", "", "Inclusive end date (YYYY-MM-DD or YYYYMMDD)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of teams to display (0 = all teams; top defaults to 10)")
	rootCmd.PersistentFlags().Bool("detail", false, "Print home, away and neutral splits")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for percentages (1 or 2)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("data-backend", string(schema.NoneBackend), "League database: sqlite or mysql or postgresql or none (read CSV files)")
	rootCmd.PersistentFlags().String("data-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("log-level", logger.DefaultLevel, "Log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Command flags share keys (id, chart, chart-dir), so they are bound in sharedSetup
	// for the command that actually runs.
	teamCmd.Flags().Int("id", 0, "Select the team by ID instead of name")
	timeseriesCmd.Flags().Int("id", 0, "Select the team by ID instead of name")
	for _, c := range []*cobra.Command{teamCmd, topCmd} {
		c.Flags().Bool("chart", false, "Write a PNG chart")
		c.Flags().String("chart-dir", ".", "Directory for PNG charts")
	}

	// Bind all flags of dbMigrateCmd to Viper
	dbMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(dbMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding db migrate flags", err)
	}
}
