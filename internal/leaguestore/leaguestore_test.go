package leaguestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/courtside/courtside/internal/parquet"
	"github.com/courtside/courtside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testGames = []schema.GameRecord{
		{GameID: 2, Date: 20240105, Team1ID: 1, Location1: schema.Home, Score1: 70, Team2ID: 2, Location2: schema.Away, Score2: 60},
		{GameID: 1, Date: 20240101, Team1ID: 2, Location1: schema.Neutral, Score1: 55, Team2ID: 1, Location2: schema.Neutral, Score2: 55},
		{GameID: 3, Date: 20240110, Team1ID: 1, Location1: schema.Away, Score1: 50, Team2ID: 3, Location2: schema.Home, Score2: 80},
	}
	testTeams = []schema.TeamRecord{
		{TeamID: 3, TeamName: "Gamma"},
		{TeamID: 1, TeamName: "Alpha"},
		{TeamID: 1, TeamName: "Alpha Duplicate"},
		{TeamID: 2, TeamName: "Beta"},
	}
)

func newTestStore(t *testing.T) *RecordStore {
	t.Helper()
	store, err := NewRecordStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewRecordStore_UnsupportedBackend(t *testing.T) {
	_, err := NewRecordStore(schema.NoneBackend, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestRecordStore_ImportAndLoadPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	summary, err := store.ImportRecords(ctx, "games.csv + teams.csv", testGames, testTeams)
	require.NoError(t, err)
	assert.Len(t, summary.ImportID, 36)
	assert.Equal(t, 3, summary.Games)
	assert.Equal(t, 4, summary.Teams)
	assert.False(t, summary.ImportedAt.IsZero())

	games, err := store.LoadGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, testGames, games)

	teams, err := store.LoadTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, testTeams, teams, "duplicate team IDs must keep their source order")
}

func TestRecordStore_ImportReplacesPreviousRecords(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.ImportRecords(ctx, "first", testGames, testTeams)
	require.NoError(t, err)
	second, err := store.ImportRecords(ctx, "second", testGames[:1], testTeams[:1])
	require.NoError(t, err)

	games, err := store.LoadGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 1)

	teams, err := store.LoadTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, []schema.TeamRecord{{TeamID: 3, TeamName: "Gamma"}}, teams)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalImports)
	assert.Equal(t, second.ImportID, status.LastImportID)
}

func TestRecordStore_GetStatus(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Zero(t, status.TotalGames)
	assert.Empty(t, status.LastImportID)
	assert.Len(t, status.TableSizes, 3)

	summary, err := store.ImportRecords(ctx, "test", testGames, testTeams)
	require.NoError(t, err)

	status, err = store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, status.TotalGames)
	assert.Equal(t, 4, status.TotalTeams)
	assert.Equal(t, 1, status.TotalImports)
	assert.Equal(t, summary.ImportID, status.LastImportID)
	assert.True(t, summary.ImportedAt.Equal(status.LastImportTime))
	assert.Equal(t, 20240101, status.FirstGameDate)
	assert.Equal(t, 20240110, status.LastGameDate)
	assert.Equal(t, int64(3), status.TableSizes[gamesTable])
}

func TestRecordStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.ImportRecords(ctx, "test", testGames, testTeams)
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.TotalGames)
	assert.Zero(t, status.TotalTeams)
	assert.Zero(t, status.TotalImports)

	games, err := store.LoadGames(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestRecordStore_ClosedStatus(t *testing.T) {
	store, err := NewRecordStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	status, err := store.GetStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestRecordStore_FileDatabasePersists(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "league.db")

	store, err := NewRecordStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = store.ImportRecords(ctx, "test", testGames, testTeams)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewRecordStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	games, err := reopened.LoadGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 3)
	assert.Equal(t, "sqlite ("+dbPath+")", reopened.Describe())
}

func TestRecordStore_ExportParquet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	dir := t.TempDir()

	err := store.ExportParquet(ctx, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no league records")

	summary, err := store.ImportRecords(ctx, "test", testGames, testTeams)
	require.NoError(t, err)
	require.NoError(t, store.ExportParquet(ctx, dir))

	games, err := parquet.ReadGamesParquet(filepath.Join(dir, GamesExportFile))
	require.NoError(t, err)
	require.Len(t, games, 3)
	require.NotNil(t, games[0].ImportID)
	assert.Equal(t, summary.ImportID, *games[0].ImportID)
	assert.Equal(t, testGames, parquet.ToGameRecords(games))

	teams, err := parquet.ReadTeamsParquet(filepath.Join(dir, TeamsExportFile))
	require.NoError(t, err)
	assert.Equal(t, testTeams, parquet.ToTeamRecords(teams))
}

func TestRecordStore_ExportParquetRequiresDir(t *testing.T) {
	store := newTestStore(t)
	err := store.ExportParquet(context.Background(), "")
	assert.Error(t, err)
}

func TestMigrate_NoneBackend(t *testing.T) {
	err := Migrate(schema.NoneBackend, "", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestMigrate_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, -1))
	_, err := os.Stat(dbPath)
	require.NoError(t, err)

	// Already at the latest version
	assert.NoError(t, Migrate(schema.SQLiteBackend, dbPath, -1))
	assert.NoError(t, Migrate(schema.SQLiteBackend, dbPath, 1))

	// Roll back and up again
	assert.NoError(t, Migrate(schema.SQLiteBackend, dbPath, 0))
	assert.NoError(t, Migrate(schema.SQLiteBackend, dbPath, 1))

	store, err := NewRecordStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	_, err = store.ImportRecords(context.Background(), "test", testGames, testTeams)
	assert.NoError(t, err)
}

func TestMigrate_InvalidMySQLDSN(t *testing.T) {
	err := Migrate(schema.MySQLBackend, "not a dsn", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid MySQL connection string")
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements(createTablesSQL)
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], importsTable)
	assert.Contains(t, stmts[1], gamesTable)
	assert.Contains(t, stmts[2], teamsTable)
	assert.Empty(t, splitStatements(" ; \n ;"))
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`league_games`", quoteTableName(gamesTable, schema.MySQLBackend))
	assert.Equal(t, `"league_games"`, quoteTableName(gamesTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"league_games"`, quoteTableName(gamesTable, schema.SQLiteBackend))
}

func TestBind(t *testing.T) {
	query := "INSERT INTO t (a, b) VALUES (?, ?)"
	pg := &RecordStore{backend: schema.PostgreSQLBackend}
	assert.Equal(t, "INSERT INTO t (a, b) VALUES ($1, $2)", pg.bind(query))

	lite := &RecordStore{backend: schema.SQLiteBackend}
	assert.Equal(t, query, lite.bind(query))
}
