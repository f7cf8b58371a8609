package schema

import "time"

// DataStatus represents the status of the league database.
type DataStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	TotalGames     int              `json:"total_games"`
	TotalTeams     int              `json:"total_teams"`
	TotalImports   int              `json:"total_imports"`
	LastImportID   string           `json:"last_import_id"`
	LastImportTime time.Time        `json:"last_import_time"`
	FirstGameDate  int              `json:"first_game_date"`
	LastGameDate   int              `json:"last_game_date"`
	TableSizes     map[string]int64 `json:"table_sizes"`
}

// ImportSummary describes one completed import into the league database.
type ImportSummary struct {
	ImportID   string    `json:"import_id"`
	ImportedAt time.Time `json:"imported_at"`
	Source     string    `json:"source"`
	Games      int       `json:"games"`
	Teams      int       `json:"teams"`
}
