// Package leaguestore keeps raw league records in a SQL database.
// Only input records live here; performances are always derived in memory.
package leaguestore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/courtside/courtside/internal/contract"
	"github.com/courtside/courtside/schema"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // SQLite driver
)

// Table names for league records.
const (
	importsTable = "league_imports"
	gamesTable   = "league_games"
	teamsTable   = "league_teams"
)

// importTimeFormat keeps timestamps fixed-width so they sort as text on every backend.
const importTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// RecordStore implements contract.RecordStore on top of database/sql.
type RecordStore struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	target  string
}

var _ contract.RecordStore = &RecordStore{} // Compile-time check

// NewRecordStore opens the league database for the given backend and makes sure its tables exist.
func NewRecordStore(backend schema.DatabaseBackend, connStr string) (*RecordStore, error) {
	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create league tables: %w", err)
	}

	target := string(backend)
	if backend == schema.SQLiteBackend {
		target = fmt.Sprintf("%s (%s)", backend, connStr)
	}
	log.Debug().Str("backend", string(backend)).Msg("league database ready")
	return &RecordStore{db: db, backend: backend, target: target}, nil
}

// openDB opens a connection pool for the backend without touching the network.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		if connStr == "" {
			connStr = contract.GetDataDBFilePath()
		}
		db, err := sql.Open("sqlite", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", connStr, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, nil

	case schema.MySQLBackend:
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}
		return db, nil

	case schema.PostgreSQLBackend:
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=... user=...", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

// createTables runs the table DDL one statement at a time.
func createTables(db *sql.DB) error {
	for _, stmt := range splitStatements(createTablesSQL) {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// splitStatements splits a SQL script on semicolons, dropping empty statements.
func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// quoteTableName quotes a table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}

// table returns the quoted name of a league table.
func (s *RecordStore) table(name string) string {
	return quoteTableName(name, s.backend)
}

// bind rewrites ? placeholders to $n for PostgreSQL.
func (s *RecordStore) bind(query string) string {
	if s.backend != schema.PostgreSQLBackend {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Describe names the backend. Connection strings are omitted except for SQLite paths.
func (s *RecordStore) Describe() string {
	return s.target
}

// Close closes the underlying connection.
func (s *RecordStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ping reports whether the database still answers.
func (s *RecordStore) ping(ctx context.Context) bool {
	return s.db != nil && s.db.PingContext(ctx) == nil
}
