// Package core has core logic for loading, filtering and querying league performances.
package core

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/courtside/courtside/internal/chart"
	"github.com/courtside/courtside/internal/contract"
	"github.com/courtside/courtside/internal/leaguestore"
	"github.com/courtside/courtside/internal/loader"
	"github.com/courtside/courtside/internal/outwriter"
	"github.com/courtside/courtside/schema"
)

// Chart file names.
const (
	topTeamsChartFile = "top_teams.png"
	winPctChartSuffix = "_win_pct.png"
)

// ExecutorFunc defines the function signature for executing different views.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// OpenRecordSource returns the league database when a backend is configured, otherwise the CSV files.
// The returned close function is always safe to call.
func OpenRecordSource(cfg *contract.Config) (contract.RecordSource, func(), error) {
	if cfg.UsesDatabase() {
		connStr := cfg.DataDBConnect
		if cfg.DataBackend == schema.SQLiteBackend && connStr == "" {
			connStr = contract.GetDataDBFilePath()
		}
		store, err := leaguestore.NewRecordStore(cfg.DataBackend, connStr)
		if err != nil {
			return nil, func() {}, fmt.Errorf("failed to open league database: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	}
	return loader.NewCSVSource(cfg.GamesPath, cfg.TeamsPath), func() {}, nil
}

// LoadSession reads every record from src and builds a session over r.
func LoadSession(ctx context.Context, src contract.RecordSource, r schema.DateRange) (*Session, error) {
	games, teams, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogLoadHeader(src.Describe(), len(games), len(teams))
	}
	return NewSession(games, teams, r)
}

// sessionFor returns base when it already covers cfg.DateRange, otherwise a derived session.
func sessionFor(ctx context.Context, cfg *contract.Config, base *Session) (*Session, error) {
	s := base
	if base.Range() != cfg.DateRange {
		var err error
		if s, err = base.WithRange(cfg.DateRange); err != nil {
			return nil, err
		}
	}
	if !shouldSuppressHeader(ctx) && !s.Range().IsOpen() {
		outwriter.LogRangeHeader(s.Range(), s.ActiveGames())
	}
	return s, nil
}

// loadForConfig opens the configured source and loads a session over cfg.DateRange.
func loadForConfig(ctx context.Context, cfg *contract.Config) (*Session, error) {
	src, closeSource, err := OpenRecordSource(cfg)
	if err != nil {
		return nil, err
	}
	defer closeSource()
	return LoadSession(ctx, src, cfg.DateRange)
}

// rankedUpTo returns the limit best teams of s, or all of them when limit is 0.
func rankedUpTo(s *Session, limit int) []*schema.TeamPerformance {
	if limit <= 0 {
		return s.Ranked()
	}
	return s.Top(limit)
}

// GetTeamsResults ranks the teams in the window of cfg, capped at cfg.ResultLimit when it is set.
func GetTeamsResults(ctx context.Context, cfg *contract.Config, base *Session) ([]schema.RankedTeam, time.Duration, error) {
	start := time.Now()
	s, err := sessionFor(ctx, cfg, base)
	if err != nil {
		return nil, 0, err
	}
	return schema.EnrichTeams(rankedUpTo(s, cfg.ResultLimit)), time.Since(start), nil
}

// GetTopResults returns the cfg.ResultLimit best teams in the window of cfg.
// The top command defaults the limit to DefaultTopLimit; 0 ranks every team.
func GetTopResults(ctx context.Context, cfg *contract.Config, base *Session) ([]schema.RankedTeam, time.Duration, error) {
	start := time.Now()
	s, err := sessionFor(ctx, cfg, base)
	if err != nil {
		return nil, 0, err
	}
	return schema.EnrichTeams(rankedUpTo(s, cfg.ResultLimit)), time.Since(start), nil
}

// GetTeamResults returns the detail view of the team selected by cfg.
func GetTeamResults(ctx context.Context, cfg *contract.Config, base *Session) (schema.TeamDetail, time.Duration, error) {
	start := time.Now()
	s, err := sessionFor(ctx, cfg, base)
	if err != nil {
		return schema.TeamDetail{}, 0, err
	}
	tp, err := s.Lookup(cfg.TeamName, cfg.TeamID)
	if err != nil {
		return schema.TeamDetail{}, 0, err
	}
	return schema.NewTeamDetail(tp, s.Range()), time.Since(start), nil
}

// GetTimeseriesResults returns the cumulative series of the team selected by cfg.
func GetTimeseriesResults(ctx context.Context, cfg *contract.Config, base *Session) (schema.TimeseriesResult, time.Duration, error) {
	start := time.Now()
	s, err := sessionFor(ctx, cfg, base)
	if err != nil {
		return schema.TimeseriesResult{}, 0, err
	}
	tp, err := s.Lookup(cfg.TeamName, cfg.TeamID)
	if err != nil {
		return schema.TimeseriesResult{}, 0, err
	}
	return schema.NewTimeseriesResult(tp, s.Range()), time.Since(start), nil
}

// ExecuteTeams prints the teams sorted by win percentage.
func ExecuteTeams(ctx context.Context, cfg *contract.Config) error {
	base, err := loadForConfig(ctx, cfg)
	if err != nil {
		return err
	}
	ranked, duration, err := GetTeamsResults(ctx, cfg, base)
	if err != nil {
		return err
	}
	return outwriter.WriteTeamList(ranked, cfg, duration)
}

// ExecuteTop prints the best cfg.ResultLimit teams and optionally charts them.
func ExecuteTop(ctx context.Context, cfg *contract.Config) error {
	base, err := loadForConfig(ctx, cfg)
	if err != nil {
		return err
	}
	ranked, duration, err := GetTopResults(ctx, cfg, base)
	if err != nil {
		return err
	}
	if err := outwriter.WriteTopTeams(ranked, cfg, duration); err != nil {
		return err
	}
	if !cfg.Chart {
		return nil
	}
	path := filepath.Join(cfg.ChartDir, topTeamsChartFile)
	if err := chart.WriteTopTeamsChart(ranked, path); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	outwriter.LogChartSaved(path)
	return nil
}

// ExecuteTeam prints the detail view of one team and optionally charts its win percentage.
func ExecuteTeam(ctx context.Context, cfg *contract.Config) error {
	base, err := loadForConfig(ctx, cfg)
	if err != nil {
		return err
	}
	detail, duration, err := GetTeamResults(ctx, cfg, base)
	if err != nil {
		return err
	}
	if err := outwriter.WriteTeamDetail(detail, cfg, duration); err != nil {
		return err
	}
	if !cfg.Chart {
		return nil
	}
	path := filepath.Join(cfg.ChartDir, schema.ChartFileSlug(detail.TeamName)+winPctChartSuffix)
	if err := chart.WriteWinPctChart(detail.TeamPerformance, path); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	outwriter.LogChartSaved(path)
	return nil
}

// ExecuteTimeseries prints the cumulative win-percentage series of one team.
func ExecuteTimeseries(ctx context.Context, cfg *contract.Config) error {
	base, err := loadForConfig(ctx, cfg)
	if err != nil {
		return err
	}
	result, duration, err := GetTimeseriesResults(ctx, cfg, base)
	if err != nil {
		return err
	}
	return outwriter.WriteTimeseries(result, cfg, duration)
}
