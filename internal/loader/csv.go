package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/courtside/courtside/schema"
)

// Column counts of the two CSV layouts.
const (
	gameColumns = 8 // GameID,Date,TeamID1,Location1,Score1,TeamID2,Location2,Score2
	teamColumns = 2 // TeamID,TeamName
)

// rowReader wraps a csv.Reader and tracks the current line for error reporting.
type rowReader struct {
	source string
	csv    *csv.Reader
	line   int
}

func newRowReader(source string, r io.Reader) *rowReader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &rowReader{source: source, csv: cr}
}

// next returns the next row, or io.EOF. Blank lines are skipped by csv.Reader.
func (r *rowReader) next() ([]string, error) {
	rec, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		line := 0
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			line = pe.StartLine
		}
		return nil, &RecordLoadError{Source: r.source, Line: line, Err: err}
	}
	r.line, _ = r.csv.FieldPos(0)
	return rec, nil
}

func (r *rowReader) fail(format string, args ...any) error {
	return &RecordLoadError{Source: r.source, Line: r.line, Err: fmt.Errorf(format, args...)}
}

// readFile opens path and hands a row reader to fn.
func readFile(ctx context.Context, path string, fn func(context.Context, *rowReader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &RecordLoadError{Source: path, Err: err}
	}
	defer func() { _ = f.Close() }()
	return fn(ctx, newRowReader(path, f))
}

// ReadGames parses the headerless games layout from r.
func ReadGames(ctx context.Context, source string, r io.Reader) ([]schema.GameRecord, error) {
	return readGames(ctx, newRowReader(source, r))
}

// ReadTeams parses the teams layout from r. The first row is a header and is skipped.
func ReadTeams(ctx context.Context, source string, r io.Reader) ([]schema.TeamRecord, error) {
	return readTeams(ctx, newRowReader(source, r))
}

func readGames(ctx context.Context, r *rowReader) ([]schema.GameRecord, error) {
	var games []schema.GameRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.next()
		if errors.Is(err, io.EOF) {
			return games, nil
		}
		if err != nil {
			return nil, err
		}
		g, err := parseGame(r, rec)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
}

func readTeams(ctx context.Context, r *rowReader) ([]schema.TeamRecord, error) {
	if _, err := r.next(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, r.fail("missing header row")
		}
		return nil, err
	}

	var teams []schema.TeamRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.next()
		if errors.Is(err, io.EOF) {
			return teams, nil
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < teamColumns {
			return nil, r.fail("expected %d columns, got %d", teamColumns, len(rec))
		}
		id, err := parseInt(rec[0])
		if err != nil {
			return nil, r.fail("team id: %w", err)
		}
		teams = append(teams, schema.TeamRecord{TeamID: id, TeamName: strings.TrimSpace(rec[1])})
	}
}

func parseGame(r *rowReader, rec []string) (schema.GameRecord, error) {
	if len(rec) < gameColumns {
		return schema.GameRecord{}, r.fail("expected %d columns, got %d", gameColumns, len(rec))
	}
	var vals [gameColumns]int
	names := [gameColumns]string{"game id", "date", "team id 1", "location 1", "score 1", "team id 2", "location 2", "score 2"}
	for i := range gameColumns {
		v, err := parseInt(rec[i])
		if err != nil {
			return schema.GameRecord{}, r.fail("%s: %w", names[i], err)
		}
		vals[i] = v
	}

	loc1, loc2 := schema.Location(vals[3]), schema.Location(vals[6])
	for _, loc := range []schema.Location{loc1, loc2} {
		if _, ok := schema.ValidLocations[loc]; !ok {
			return schema.GameRecord{}, r.fail("location %d is not one of -1, 0, 1", int(loc))
		}
	}

	return schema.GameRecord{
		GameID:    vals[0],
		Date:      vals[1],
		Team1ID:   vals[2],
		Location1: loc1,
		Score1:    vals[4],
		Team2ID:   vals[5],
		Location2: loc2,
		Score2:    vals[7],
	}, nil
}

// parseInt accepts integers written as floats ("70.0"), which spreadsheet exports produce.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int(f), nil
}
