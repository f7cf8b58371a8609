package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/courtside/courtside/internal/contract"
	"github.com/courtside/courtside/internal/leaguestore"
	"github.com/courtside/courtside/internal/loader"
	"github.com/courtside/courtside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// writeSampleCSV writes the sample league as games and teams CSV files.
func writeSampleCSV(t *testing.T) (gamesPath, teamsPath string) {
	t.Helper()
	dir := t.TempDir()

	var games strings.Builder
	for _, g := range sampleGames() {
		fmt.Fprintf(&games, "%d,%d,%d,%d,%d,%d,%d,%d\n",
			g.GameID, g.Date, g.Team1ID, g.Location1, g.Score1, g.Team2ID, g.Location2, g.Score2)
	}
	teams := strings.Builder{}
	teams.WriteString("TeamID,TeamName\n")
	for _, tr := range sampleTeams() {
		fmt.Fprintf(&teams, "%d,%s\n", tr.TeamID, tr.TeamName)
	}

	gamesPath = filepath.Join(dir, "games.csv")
	teamsPath = filepath.Join(dir, "teams.csv")
	require.NoError(t, os.WriteFile(gamesPath, []byte(games.String()), 0o644))
	require.NoError(t, os.WriteFile(teamsPath, []byte(teams.String()), 0o644))
	return gamesPath, teamsPath
}

func testConfig(t *testing.T) *contract.Config {
	t.Helper()
	gamesPath, teamsPath := writeSampleCSV(t)
	return &contract.Config{
		GamesPath:   gamesPath,
		TeamsPath:   teamsPath,
		DateRange:   schema.OpenDateRange(),
		ResultLimit: contract.DefaultResultLimit,
		Precision:   contract.DefaultPrecision,
		Output:      schema.JSONOut,
		OutputFile:  filepath.Join(t.TempDir(), "out.json"),
		DataBackend: schema.NoneBackend,
		ChartDir:    t.TempDir(),
	}
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestLoadSessionWithMockSource(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	src := &contract.MockRecordSource{}
	src.On("LoadGames", mock.Anything).Return(sampleGames(), nil)
	src.On("LoadTeams", mock.Anything).Return(sampleTeams(), nil)
	src.On("Describe").Return("mock").Maybe()

	s, err := LoadSession(ctx, src, schema.OpenDateRange())
	require.NoError(t, err)
	assert.Equal(t, 6, s.ActiveGames())
	src.AssertExpectations(t)
}

func TestLoadSessionPropagatesSourceError(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	src := &contract.MockRecordSource{}
	src.On("LoadGames", mock.Anything).Return(nil, errors.New("disk gone"))
	src.On("LoadTeams", mock.Anything).Return(sampleTeams(), nil).Maybe()
	src.On("Describe").Return("mock").Maybe()

	_, err := LoadSession(ctx, src, schema.OpenDateRange())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestLoadSessionRejectsInvalidRecords(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	games := sampleGames()
	games[0].Score1 = -1
	src := &contract.MockRecordSource{}
	src.On("LoadGames", mock.Anything).Return(games, nil)
	src.On("LoadTeams", mock.Anything).Return(sampleTeams(), nil)
	src.On("Describe").Return("mock").Maybe()

	_, err := LoadSession(ctx, src, schema.OpenDateRange())
	assert.ErrorIs(t, err, schema.ErrInvalidRecord)
}

func TestGetResults(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	base, err := NewSession(sampleGames(), sampleTeams(), schema.OpenDateRange())
	require.NoError(t, err)
	cfg := &contract.Config{DateRange: schema.OpenDateRange(), ResultLimit: 2}

	t.Run("teams without limit", func(t *testing.T) {
		all := cfg.Clone()
		all.ResultLimit = 0
		ranked, _, err := GetTeamsResults(ctx, all, base)
		require.NoError(t, err)
		require.Len(t, ranked, 4)
		assert.Equal(t, 404, ranked[0].TeamID)
		assert.Equal(t, 1, ranked[0].Rank)
		assert.Equal(t, schema.EliteLabel, ranked[0].Label)
		assert.Equal(t, 303, ranked[3].TeamID)
	})

	t.Run("teams capped by limit", func(t *testing.T) {
		ranked, _, err := GetTeamsResults(ctx, cfg, base)
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, 404, ranked[0].TeamID)
		assert.Equal(t, 2, ranked[1].Rank)
	})

	t.Run("top", func(t *testing.T) {
		ranked, _, err := GetTopResults(ctx, cfg, base)
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, []int{404, 101}, []int{ranked[0].TeamID, ranked[1].TeamID})
	})

	t.Run("team by name with range", func(t *testing.T) {
		janCfg := cfg.CloneWithRange(schema.DateRange{Start: 20230101, End: 20230131})
		janCfg.TeamName = "duke"
		detail, _, err := GetTeamResults(ctx, janCfg, base)
		require.NoError(t, err)
		assert.Equal(t, 101, detail.TeamID)
		assert.Equal(t, 1, detail.TotalWins)
		assert.Equal(t, 1, detail.TotalLosses)
		assert.Equal(t, janCfg.DateRange, detail.Range)
		assert.True(t, base.Range().IsOpen(), "base session must not change")
	})

	t.Run("team not found", func(t *testing.T) {
		missing := cfg.Clone()
		missing.TeamName = "Gonzaga"
		_, _, err := GetTeamResults(ctx, missing, base)
		assert.ErrorIs(t, err, schema.ErrTeamNotFound)
	})

	t.Run("timeseries by id", func(t *testing.T) {
		byID := cfg.Clone()
		byID.TeamID = 303
		result, _, err := GetTimeseriesResults(ctx, byID, base)
		require.NoError(t, err)
		assert.Equal(t, "Virginia", result.TeamName)
		require.Len(t, result.Points, 4)
		assert.Equal(t, 25.0, result.Points[3].WinPercentage)
	})
}

func TestExecuteTeamsJSON(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, ExecuteTeams(context.Background(), cfg))

	var ranked []schema.RankedTeam
	readJSON(t, cfg.OutputFile, &ranked)
	require.Len(t, ranked, 4)
	assert.Equal(t, "Team 404", ranked[0].TeamName)
}

func TestExecuteTopWithChart(t *testing.T) {
	cfg := testConfig(t)
	cfg.ResultLimit = 3
	cfg.Chart = true
	require.NoError(t, ExecuteTop(context.Background(), cfg))

	var ranked []schema.RankedTeam
	readJSON(t, cfg.OutputFile, &ranked)
	assert.Len(t, ranked, 3)

	_, err := os.Stat(filepath.Join(cfg.ChartDir, topTeamsChartFile))
	assert.NoError(t, err)
}

func TestExecuteTeamWithChart(t *testing.T) {
	cfg := testConfig(t)
	cfg.TeamName = "North Carolina"
	cfg.Chart = true
	require.NoError(t, ExecuteTeam(context.Background(), cfg))

	var detail schema.TeamDetail
	readJSON(t, cfg.OutputFile, &detail)
	require.NotNil(t, detail.TeamPerformance)
	assert.Equal(t, 202, detail.TeamID)
	assert.Len(t, detail.GameHistory, 3)

	_, err := os.Stat(filepath.Join(cfg.ChartDir, "north_carolina_win_pct.png"))
	assert.NoError(t, err)
}

func TestExecuteTeamNotFound(t *testing.T) {
	cfg := testConfig(t)
	cfg.TeamName = "Nobody"
	err := ExecuteTeam(context.Background(), cfg)
	var notFound *schema.TeamNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, `"Nobody"`, notFound.Query)
}

func TestExecuteTimeseriesJSON(t *testing.T) {
	cfg := testConfig(t)
	cfg.TeamID = 101
	cfg.DateRange = schema.DateRange{Start: 20230201, End: schema.MaxDate}
	require.NoError(t, ExecuteTimeseries(context.Background(), cfg))

	var result schema.TimeseriesResult
	readJSON(t, cfg.OutputFile, &result)
	require.Len(t, result.Points, 2)
	assert.Equal(t, 20230201, result.Points[0].Date)
	assert.Equal(t, 100.0, result.Points[0].WinPercentage)
	assert.Equal(t, 50.0, result.Points[1].WinPercentage)
}

func TestExecuteMissingFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.GamesPath = filepath.Join(t.TempDir(), "missing.csv")
	err := ExecuteTeams(context.Background(), cfg)
	var loadErr *loader.RecordLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestOpenRecordSource(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t)
		src, closeSource, err := OpenRecordSource(cfg)
		require.NoError(t, err)
		defer closeSource()
		assert.IsType(t, &loader.CSVSource{}, src)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DataBackend = schema.SQLiteBackend
		cfg.DataDBConnect = filepath.Join(t.TempDir(), "league.db")

		src, closeSource, err := OpenRecordSource(cfg)
		require.NoError(t, err)
		store, ok := src.(*leaguestore.RecordStore)
		require.True(t, ok)
		_, err = store.ImportRecords(context.Background(), "test", sampleGames(), sampleTeams())
		require.NoError(t, err)
		closeSource()

		require.NoError(t, ExecuteTeams(context.Background(), cfg))
		var ranked []schema.RankedTeam
		readJSON(t, cfg.OutputFile, &ranked)
		assert.Len(t, ranked, 4)
	})
}
