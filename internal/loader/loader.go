// Package loader reads league records from CSV files and loads any record source.
package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/courtside/courtside/internal/contract"
	"github.com/courtside/courtside/schema"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// RecordLoadError reports a source that could not be opened or a malformed row.
// Line is 1-based and zero when the failure is not tied to a row.
type RecordLoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *RecordLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *RecordLoadError) Unwrap() error {
	return e.Err
}

// Load reads games and teams from src in parallel.
// Both reads must succeed; the first failure cancels the other.
func Load(ctx context.Context, src contract.RecordSource) ([]schema.GameRecord, []schema.TeamRecord, error) {
	start := time.Now()
	g, gCtx := errgroup.WithContext(ctx)

	var games []schema.GameRecord
	var teams []schema.TeamRecord

	g.Go(func() error {
		var err error
		games, err = src.LoadGames(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		teams, err = src.LoadTeams(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	log.Debug().
		Str("source", src.Describe()).
		Int("games", len(games)).
		Int("teams", len(teams)).
		Dur("elapsed", time.Since(start)).
		Msg("records loaded")
	return games, teams, nil
}

// CSVSource reads a headerless games file and a teams file with a header row.
type CSVSource struct {
	GamesPath string
	TeamsPath string
}

var _ contract.RecordSource = &CSVSource{} // Compile-time check

// NewCSVSource creates a record source over two CSV files.
func NewCSVSource(gamesPath, teamsPath string) *CSVSource {
	return &CSVSource{GamesPath: gamesPath, TeamsPath: teamsPath}
}

// LoadGames reads every game row from GamesPath.
func (s *CSVSource) LoadGames(ctx context.Context) ([]schema.GameRecord, error) {
	var games []schema.GameRecord
	err := readFile(ctx, s.GamesPath, func(ctx context.Context, r *rowReader) error {
		var err error
		games, err = readGames(ctx, r)
		return err
	})
	return games, err
}

// LoadTeams reads every team row from TeamsPath.
func (s *CSVSource) LoadTeams(ctx context.Context) ([]schema.TeamRecord, error) {
	var teams []schema.TeamRecord
	err := readFile(ctx, s.TeamsPath, func(ctx context.Context, r *rowReader) error {
		var err error
		teams, err = readTeams(ctx, r)
		return err
	})
	return teams, err
}

// Describe names both files.
func (s *CSVSource) Describe() string {
	return fmt.Sprintf("%s + %s", filepath.Base(s.GamesPath), filepath.Base(s.TeamsPath))
}
