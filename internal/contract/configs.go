package contract

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/courtside/courtside/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 0 // no cap: the team list shows every team
	DefaultTopLimit    = 10
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
)

// DateInputFormat is the user-facing date layout for --start-date and --end-date.
const DateInputFormat = "2006-01-02"

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a league analysis.
// This struct remains the "final, validated" config.
type Config struct {
	GamesPath string
	TeamsPath string

	DateRange   schema.DateRange
	ResultLimit int
	Detail      bool
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	TeamName string // Selected team for the detail and timeseries views
	TeamID   int    // Selected team ID, takes precedence over TeamName when > 0
	Chart    bool   // Write PNG charts next to the text output
	ChartDir string

	DataBackend   schema.DatabaseBackend
	DataDBConnect string // Please use env var as this is plaintext

	LogLevel string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	TeamArg string

	// --- Fields from rootCmd.PersistentFlags() ---
	Games         string `mapstructure:"games"`
	Teams         string `mapstructure:"teams"`
	StartDate     string `mapstructure:"start-date"`
	EndDate       string `mapstructure:"end-date"`
	Limit         int    `mapstructure:"limit"`
	Detail        bool   `mapstructure:"detail"`
	Precision     int    `mapstructure:"precision"`
	Output        string `mapstructure:"output"`
	OutputFile    string `mapstructure:"output-file"`
	Width         int    `mapstructure:"width"`
	Color         string `mapstructure:"color"`
	DataBackend   string `mapstructure:"data-backend"`
	DataDBConnect string `mapstructure:"data-db-connect"`
	LogLevel      string `mapstructure:"log-level"`

	// --- Fields from teamCmd / topCmd / timeseriesCmd flags ---
	TeamID   int    `mapstructure:"id"`
	Chart    bool   `mapstructure:"chart"`
	ChartDir string `mapstructure:"chart-dir"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// CloneWithRange creates a copy of the Config with a different date window.
func (c *Config) CloneWithRange(r schema.DateRange) *Config {
	clone := c.Clone()
	clone.DateRange = r
	return clone
}

// UsesDatabase reports whether records come from the league database instead of CSV files.
func (c *Config) UsesDatabase() bool {
	return c.DataBackend != "" && c.DataBackend != schema.NoneBackend
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDateRange(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := validateSourcePaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("data-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("data-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseBackend lowers and validates a backend name. Empty means NoneBackend.
func ParseBackend(s string) (schema.DatabaseBackend, error) {
	if strings.TrimSpace(s) == "" {
		return schema.NoneBackend, nil
	}
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid data backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// ParseDateFlag converts "YYYY-MM-DD" or "YYYYMMDD" into a YYYYMMDD integer.
// An empty string returns nil, meaning the bound is absent.
func ParseDateFlag(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	compact := strings.ReplaceAll(s, "-", "")
	if len(compact) != 8 {
		return nil, fmt.Errorf("invalid date '%s'. Expected YYYY-MM-DD or YYYYMMDD", s)
	}
	if _, err := time.Parse(DateInputFormat, compact[0:4]+"-"+compact[4:6]+"-"+compact[6:8]); err != nil {
		return nil, fmt.Errorf("invalid date '%s': %w", s, err)
	}
	n, err := strconv.Atoi(compact)
	if err != nil {
		return nil, fmt.Errorf("invalid date '%s': %w", s, err)
	}
	return &n, nil
}

// ParseDateRange parses optional start and end flags into a validated window.
func ParseDateRange(start, end string) (schema.DateRange, error) {
	startDate, err := ParseDateFlag(start)
	if err != nil {
		return schema.DateRange{}, fmt.Errorf("start date: %w", err)
	}
	endDate, err := ParseDateFlag(end)
	if err != nil {
		return schema.DateRange{}, fmt.Errorf("end date: %w", err)
	}
	r := schema.NewDateRange(startDate, endDate)
	if r.Start > r.End {
		return schema.DateRange{}, fmt.Errorf("start date (%s) cannot be after end date (%s)", schema.FormatDate(r.Start), schema.FormatDate(r.End))
	}
	return r, nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width
	cfg.Chart = input.Chart
	cfg.ChartDir = input.ChartDir
	cfg.TeamName = strings.TrimSpace(input.TeamArg)
	cfg.TeamID = input.TeamID
	cfg.LogLevel = input.LogLevel

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d, where 0 means no limit (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Team selection ---
	if cfg.TeamID < 0 {
		return fmt.Errorf("team id must be positive (received %d)", cfg.TeamID)
	}

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	return nil
}

// processDateRange handles the optional start and end date filters.
func processDateRange(cfg *Config, input *ConfigRawInput) error {
	r, err := ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return err
	}
	cfg.DateRange = r
	return nil
}

// validateBackendConfig validates the league database configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseBackend(input.DataBackend)
	if err != nil {
		return err
	}
	cfg.DataBackend = backend
	cfg.DataDBConnect = input.DataDBConnect
	return ValidateDatabaseConnectionString(cfg.DataBackend, cfg.DataDBConnect)
}

// validateSourcePaths checks that CSV inputs exist when no database backend is used.
func validateSourcePaths(cfg *Config, input *ConfigRawInput) error {
	cfg.GamesPath = strings.TrimSpace(input.Games)
	cfg.TeamsPath = strings.TrimSpace(input.Teams)

	if cfg.UsesDatabase() {
		return nil
	}
	if cfg.GamesPath == "" || cfg.TeamsPath == "" {
		return fmt.Errorf("--games and --teams are required unless --data-backend is set")
	}
	for _, p := range []string{cfg.GamesPath, cfg.TeamsPath} {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", p, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory, expected a CSV file", p)
		}
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
