package agg

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/courtside/courtside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func game(id, date, t1 int, l1 schema.Location, s1, t2 int, l2 schema.Location, s2 int) schema.GameRecord {
	return schema.GameRecord{
		GameID: id, Date: date,
		Team1ID: t1, Location1: l1, Score1: s1,
		Team2ID: t2, Location2: l2, Score2: s2,
	}
}

func TestAggregateSingleGame(t *testing.T) {
	games := []schema.GameRecord{
		game(1, 20230101, 10, schema.Home, 70, 20, schema.Away, 65),
	}
	teams := []schema.TeamRecord{{TeamID: 10, TeamName: "A"}, {TeamID: 20, TeamName: "B"}}

	perfs, err := Aggregate(games, teams)
	require.NoError(t, err)
	require.Len(t, perfs, 2)

	a := perfs[10]
	assert.Equal(t, "A", a.TeamName)
	assert.Equal(t, 1, a.TotalWins)
	assert.Equal(t, 0, a.TotalLosses)
	assert.Equal(t, 1, a.HomeWins)
	assert.Equal(t, 100.0, a.TotalWinPct)
	assert.Equal(t, 100.0, a.HomeWinPct)
	assert.Equal(t, 0.0, a.AwayWinPct)
	assert.Equal(t, 0.0, a.NeutralWinPct)

	b := perfs[20]
	assert.Equal(t, "B", b.TeamName)
	assert.Equal(t, 0, b.TotalWins)
	assert.Equal(t, 1, b.TotalLosses)
	assert.Equal(t, 1, b.AwayLosses)
	assert.Equal(t, 0.0, b.TotalWinPct)

	require.Len(t, a.GameHistory, 1)
	assert.Equal(t, schema.GameAppearance{
		GameID: 1, Date: 20230101, OpponentID: 20, OpponentName: "B",
		Location: schema.Home, OwnScore: 70, OpponentScore: 65, Win: true,
	}, a.GameHistory[0])

	require.Len(t, b.PerformanceOverTime, 1)
	assert.Equal(t, schema.PerformanceSnapshot{
		Date: 20230101, CumulativeWins: 0, CumulativeLosses: 1, WinPercentage: 0, OpponentName: "A",
	}, b.PerformanceOverTime[0])
}

func TestAggregateTieIsLossForBothSides(t *testing.T) {
	games := []schema.GameRecord{
		game(1, 20230101, 10, schema.Neutral, 60, 20, schema.Neutral, 60),
	}
	perfs, err := Aggregate(games, nil)
	require.NoError(t, err)

	for _, id := range []int{10, 20} {
		tp := perfs[id]
		assert.Equal(t, 0, tp.TotalWins, "team %d", id)
		assert.Equal(t, 1, tp.TotalLosses, "team %d", id)
		assert.Equal(t, 1, tp.NeutralLosses, "team %d", id)
		assert.False(t, tp.GameHistory[0].Win, "team %d", id)
		assert.Equal(t, 0.0, tp.TotalWinPct, "team %d", id)
	}
}

func TestAggregateLocationsAreIndependent(t *testing.T) {
	games := []schema.GameRecord{
		// Both sides claim home; each side is bucketed by its own value.
		game(1, 20230101, 10, schema.Home, 80, 20, schema.Home, 50),
		// Out-of-range location falls into the neutral bucket.
		game(2, 20230102, 10, schema.Location(3), 40, 20, schema.Away, 50),
	}
	perfs, err := Aggregate(games, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, perfs[10].HomeWins)
	assert.Equal(t, 1, perfs[10].NeutralLosses)
	assert.Equal(t, 1, perfs[20].HomeLosses)
	assert.Equal(t, 1, perfs[20].AwayWins)
}

func TestAggregateTeamNames(t *testing.T) {
	games := []schema.GameRecord{
		game(1, 20230101, 10, schema.Home, 70, 99, schema.Away, 65),
	}

	t.Run("missing roster entry uses placeholder", func(t *testing.T) {
		perfs, err := Aggregate(games, []schema.TeamRecord{{TeamID: 10, TeamName: "A"}})
		require.NoError(t, err)
		assert.Equal(t, "Team 99", perfs[99].TeamName)
		assert.Equal(t, "Team 99", perfs[10].GameHistory[0].OpponentName)
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		teams := []schema.TeamRecord{
			{TeamID: 10, TeamName: "First"},
			{TeamID: 10, TeamName: "Second"},
		}
		perfs, err := Aggregate(games, teams)
		require.NoError(t, err)
		assert.Equal(t, "First", perfs[10].TeamName)
		assert.Equal(t, "First", perfs[99].GameHistory[0].OpponentName)
	})

	t.Run("roster-only teams are not reported", func(t *testing.T) {
		teams := []schema.TeamRecord{{TeamID: 10, TeamName: "A"}, {TeamID: 50, TeamName: "Idle"}}
		perfs, err := Aggregate(games, teams)
		require.NoError(t, err)
		_, ok := perfs[50]
		assert.False(t, ok)
	})
}

func TestAggregateChronologicalOrder(t *testing.T) {
	games := []schema.GameRecord{
		game(1, 20230110, 10, schema.Home, 70, 20, schema.Away, 65), // W
		game(2, 20230101, 10, schema.Away, 50, 30, schema.Home, 65), // L
		game(3, 20230105, 10, schema.Home, 70, 40, schema.Away, 60), // W, same date as 4
		game(4, 20230105, 10, schema.Home, 55, 50, schema.Away, 60), // L, same date as 3
	}
	perfs, err := Aggregate(games, nil)
	require.NoError(t, err)

	tp := perfs[10]
	var ids []int
	for _, g := range tp.GameHistory {
		ids = append(ids, g.GameID)
	}
	assert.Equal(t, []int{2, 3, 4, 1}, ids, "same-date games keep input order")

	series := tp.PerformanceOverTime
	require.Len(t, series, 4)
	assert.Equal(t, schema.PerformanceSnapshot{Date: 20230101, CumulativeWins: 0, CumulativeLosses: 1, WinPercentage: 0, OpponentName: "Team 30"}, series[0])
	assert.Equal(t, 50.0, series[1].WinPercentage)
	assert.Equal(t, 33.33, series[2].WinPercentage)
	assert.Equal(t, 50.0, series[3].WinPercentage)
	assert.Equal(t, 20230110, series[3].Date)
}

func TestAggregateInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	locations := []schema.Location{schema.Home, schema.Away, schema.Neutral}

	var games []schema.GameRecord
	for i := range 500 {
		t1 := rng.Intn(12) + 1
		t2 := rng.Intn(12) + 13
		games = append(games, game(
			i+1,
			20230101+rng.Intn(28),
			t1, locations[rng.Intn(3)], rng.Intn(40)+50,
			t2, locations[rng.Intn(3)], rng.Intn(40)+50,
		))
	}

	perfs, err := Aggregate(games, nil)
	require.NoError(t, err)

	totalAppearances := 0
	for id, tp := range perfs {
		totalAppearances += len(tp.GameHistory)

		buckets := tp.HomeWins + tp.HomeLosses + tp.AwayWins + tp.AwayLosses + tp.NeutralWins + tp.NeutralLosses
		assert.Equal(t, len(tp.GameHistory), tp.TotalWins+tp.TotalLosses, "team %d", id)
		assert.Equal(t, tp.TotalWins+tp.TotalLosses, buckets, "team %d", id)
		assert.Equal(t, len(tp.GameHistory), len(tp.PerformanceOverTime), "team %d", id)

		for i, snap := range tp.PerformanceOverTime {
			assert.Equal(t, i+1, snap.CumulativeWins+snap.CumulativeLosses, "team %d step %d", id, i)
			assert.GreaterOrEqual(t, snap.WinPercentage, 0.0)
			assert.LessOrEqual(t, snap.WinPercentage, 100.0)
			if i > 0 {
				assert.LessOrEqual(t, tp.GameHistory[i-1].Date, tp.GameHistory[i].Date)
			}
		}

		for _, pct := range []float64{tp.TotalWinPct, tp.HomeWinPct, tp.AwayWinPct, tp.NeutralWinPct} {
			assert.GreaterOrEqual(t, pct, 0.0)
			assert.LessOrEqual(t, pct, 100.0)
		}
	}
	assert.Equal(t, 2*len(games), totalAppearances)
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	games := []schema.GameRecord{
		game(2, 20230105, 10, schema.Home, 70, 20, schema.Away, 65),
		game(1, 20230101, 20, schema.Home, 70, 10, schema.Away, 65),
	}
	snapshot := append([]schema.GameRecord(nil), games...)

	first, err := Aggregate(games, nil)
	require.NoError(t, err)
	second, err := Aggregate(games, nil)
	require.NoError(t, err)

	assert.Equal(t, snapshot, games)
	assert.Equal(t, first, second)
	assert.NotSame(t, first[10], second[10])
}

func TestAggregateEmpty(t *testing.T) {
	perfs, err := Aggregate(nil, []schema.TeamRecord{{TeamID: 1, TeamName: "A"}})
	require.NoError(t, err)
	assert.Empty(t, perfs)
}

func TestAggregateInvalidRecords(t *testing.T) {
	tests := []struct {
		name  string
		games []schema.GameRecord
		teams []schema.TeamRecord
	}{
		{"negative score", []schema.GameRecord{game(1, 20230101, 10, schema.Home, -1, 20, schema.Away, 65)}, nil},
		{"missing date", []schema.GameRecord{game(2, 0, 10, schema.Home, 70, 20, schema.Away, 65)}, nil},
		{"date out of range", []schema.GameRecord{game(3, 100000000, 10, schema.Home, 70, 20, schema.Away, 65)}, nil},
		{"negative team id", []schema.GameRecord{game(4, 20230101, -10, schema.Home, 70, 20, schema.Away, 65)}, nil},
		{"zero opponent id", []schema.GameRecord{game(5, 20230101, 10, schema.Home, 70, 0, schema.Away, 65)}, nil},
		{"zero roster id", nil, []schema.TeamRecord{{TeamID: 0, TeamName: "Nobody"}}},
		{"empty team name", nil, []schema.TeamRecord{{TeamID: 10, TeamName: "  "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perfs, err := Aggregate(tt.games, tt.teams)
			require.Error(t, err)
			assert.Nil(t, perfs)
			assert.True(t, errors.Is(err, schema.ErrInvalidRecord))
		})
	}
}

func TestWinPct(t *testing.T) {
	tests := []struct {
		wins, games int
		want        float64
	}{
		{0, 0, 0},
		{1, 1, 100},
		{0, 4, 0},
		{1, 2, 50},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 8, 12.5},
		{1, 800, 0.12}, // 0.125 rounds half to even
		{3, 800, 0.38}, // 0.375 rounds half to even
		{1, 32, 3.12},
		{2, 7, 28.57},
		// exact ties at 2.675 and 8.025, no float drift
		{107, 4000, 2.68},
		{321, 4000, 8.02},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WinPct(tt.wins, tt.games), "%d/%d", tt.wins, tt.games)
	}
}
