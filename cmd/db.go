package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/courtside/courtside/core/agg"
	"github.com/courtside/courtside/internal/contract"
	"github.com/courtside/courtside/internal/leaguestore"
	"github.com/courtside/courtside/internal/loader"
	"github.com/courtside/courtside/internal/outwriter"
	"github.com/courtside/courtside/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// dbSetup loads minimal configuration needed for league database operations.
// No backend means the default SQLite file, so db commands always have a target.
func dbSetup(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind %s flags: %w", cmd.Name(), err)
	}
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, err := contract.ParseBackend(viper.GetString("data-backend"))
	if err != nil {
		return err
	}
	if backend == schema.NoneBackend {
		backend = schema.SQLiteBackend
	}
	connStr := viper.GetString("data-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetDataDBFilePath()
	}

	cfg.DataBackend = backend
	cfg.DataDBConnect = connStr
	cfg.Output = schema.OutputMode(strings.ToLower(viper.GetString("output")))
	cfg.OutputFile = viper.GetString("output-file")
	cfg.GamesPath = viper.GetString("games")
	cfg.TeamsPath = viper.GetString("teams")
	return nil
}

// withStore opens the configured league database for the duration of fn.
func withStore(fn func(store *leaguestore.RecordStore) error) error {
	store, err := leaguestore.NewRecordStore(cfg.DataBackend, cfg.DataDBConnect)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return fn(store)
}

// dbCmd focused on league database management.
//
// Note: db subcommands use minimal initialization (dbSetup) instead of
// the full sharedSetup, since most of them never read CSV files.
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the league database of game and team records",
	Long: `Manage the optional league database that stores raw game and team records.

Only input records are stored. Standings and win percentages are always computed on the fly.
Once records are imported, analysis commands can read them with --data-backend.

Supported backends: SQLite (default), MySQL, PostgreSQL

Subcommands:
  status  - Show record counts and the last import
  import  - Replace stored records with the contents of CSV files
  export  - Write stored records to Parquet files
  clear   - Remove all stored records
  migrate - Run database schema migrations

Examples:
  # Import a season into the default SQLite database
  courtside db import --games games.csv --teams teams.csv

  # Check what is stored in PostgreSQL (set connection string via env variable)
  COURTSIDE_DATA_BACKEND=postgresql COURTSIDE_DATA_DB_CONNECT="..." courtside db status`,
}

// dbStatusCmd shows league database status.
var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display record counts and connection details",
	Long: `Show the backend, connection state, record counts, last import and the span of game dates.

Examples:
  courtside db status
  courtside db status --output json`,
	PreRunE: dbSetup,
	Run: func(_ *cobra.Command, _ []string) {
		err := withStore(func(store *leaguestore.RecordStore) error {
			status, err := store.GetStatus(rootCtx)
			if err != nil {
				return err
			}
			return outwriter.WriteDataStatus(status, cfg)
		})
		if err != nil {
			contract.LogFatal("Failed to get league database status", err)
		}
	},
}

// dbImportCmd replaces stored records with the given CSV files.
var dbImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import games and teams from CSV files",
	Long: `Validate the games and teams CSV files and store them, replacing any previous import.

Invalid records abort the import before anything is written.

Examples:
  courtside db import --games games.csv --teams teams.csv
  courtside db import --games games.csv --teams teams.csv --data-backend mysql`,
	PreRunE: dbSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.GamesPath == "" || cfg.TeamsPath == "" {
			contract.LogFatal("Failed to import records", errors.New("--games and --teams are required"))
		}
		src := loader.NewCSVSource(cfg.GamesPath, cfg.TeamsPath)
		games, teams, err := loader.Load(rootCtx, src)
		if err != nil {
			contract.LogFatal("Failed to read records", err)
		}
		if err := agg.Validate(games, teams); err != nil {
			contract.LogFatal("Refusing to import invalid records", err)
		}
		err = withStore(func(store *leaguestore.RecordStore) error {
			summary, err := store.ImportRecords(rootCtx, src.Describe(), games, teams)
			if err != nil {
				return err
			}
			return outwriter.WriteImportSummary(os.Stdout, summary)
		})
		if err != nil {
			contract.LogFatal("Failed to import records", err)
		}
	},
}

// dbExportCmd writes stored records to Parquet.
var dbExportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export stored records to Parquet files",
	Long: `Write the stored games and teams to games.parquet and teams.parquet in the given directory
(the current directory by default). Each row carries the ID of the import it came from.

Examples:
  courtside db export
  courtside db export ./warehouse`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: dbSetup,
	Run: func(_ *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		err := withStore(func(store *leaguestore.RecordStore) error {
			return store.ExportParquet(rootCtx, dir)
		})
		if err != nil {
			contract.LogFatal("Failed to export records", err)
		}
	},
}

// dbClearCmd removes all stored records.
var dbClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored records and import history",
	Long: `Delete every stored game, team and import record from the configured backend.
The tables themselves are kept.

Examples:
  courtside db clear`,
	PreRunE: dbSetup,
	Run: func(_ *cobra.Command, _ []string) {
		err := withStore(func(store *leaguestore.RecordStore) error {
			return store.Clear(rootCtx)
		})
		if err != nil {
			contract.LogFatal("Failed to clear league database", err)
		}
		fmt.Println("League database cleared successfully.")
	},
}

// dbMigrateCmd runs database migrations for the league database.
var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the league database.

By default, migrates to the latest version. Use --target-version for specific versions.
Migrations run against the raw connection, so they also work on a fresh database.

Examples:
  # Migrate to latest version (default)
  courtside db migrate

  # Rollback to initial state
  courtside db migrate --target-version 0`,
	PreRunE: dbSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := leaguestore.Migrate(cfg.DataBackend, cfg.DataDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
