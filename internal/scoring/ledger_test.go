package scoring

import (
	"testing"

	"github.com/dugout-labs/pitchside/internal/scorecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOversPartsRoundTrip(t *testing.T) {
	cases := []struct {
		overs      float64
		completed  int
		legalBalls int
	}{
		{0, 0, 0},
		{0.1, 0, 1},
		{0.5, 0, 5},
		{1.0, 1, 0},
		{10.2, 10, 2},
		{19.5, 19, 5},
	}
	for _, tc := range cases {
		completed, legalBalls := OversParts(tc.overs)
		assert.Equal(t, tc.completed, completed, "overs %v", tc.overs)
		assert.Equal(t, tc.legalBalls, legalBalls, "overs %v", tc.overs)
		assert.InDelta(t, tc.overs, EncodeOvers(completed, legalBalls), 1e-9)
	}
}

func TestAdvanceOvers(t *testing.T) {
	assert.InDelta(t, 0.1, AdvanceOvers(0), 1e-9)
	assert.InDelta(t, 0.2, AdvanceOvers(0.1), 1e-9)
	assert.InDelta(t, 1.0, AdvanceOvers(0.5), 1e-9, "sixth legal ball rolls the over")
	assert.InDelta(t, 10.0, AdvanceOvers(9.5), 1e-9)
}

func TestAdvanceOversNoDriftOverFullInnings(t *testing.T) {
	overs := 0.0
	for i := 0; i < 20*6; i++ {
		overs = AdvanceOvers(overs)
	}
	assert.InDelta(t, 20.0, overs, 1e-9)
	completed, legalBalls := OversParts(overs)
	assert.Equal(t, 20, completed)
	assert.Equal(t, 0, legalBalls)
}

func TestRecomputeTotals(t *testing.T) {
	inn := &scorecard.Innings{
		Balls: []scorecard.Ball{
			{RunsScored: 4},
			{RunsScored: 1, Extras: scorecard.Extras{Type: scorecard.ExtraWide, Runs: 1}},
			{RunsScored: 0, Wicket: &scorecard.Wicket{Type: "Bowled", PlayerID: 101}},
			{RunsScored: 6},
		},
	}
	score, wickets := RecomputeTotals(inn)
	assert.Equal(t, 11, score)
	assert.Equal(t, 1, wickets)
}

func TestRecentBallsReverseChronological(t *testing.T) {
	inn := &scorecard.Innings{}
	for i := 1; i <= 8; i++ {
		inn.Balls = append(inn.Balls, scorecard.Ball{RunsScored: i})
	}

	recent := RecentBalls(inn, 3)
	require.Len(t, recent, 3)
	assert.Equal(t, 8, recent[0].RunsScored)
	assert.Equal(t, 7, recent[1].RunsScored)
	assert.Equal(t, 6, recent[2].RunsScored)

	assert.Len(t, RecentBalls(inn, 100), 8)
	assert.Nil(t, RecentBalls(nil, 3))
	assert.Empty(t, RecentBalls(inn, 0))
}

func TestInningsClosed(t *testing.T) {
	assert.False(t, inningsClosed(&scorecard.Innings{OversPlayed: 14.5, Wickets: 9}, 15))
	assert.True(t, inningsClosed(&scorecard.Innings{OversPlayed: 15.0, Wickets: 3}, 15), "allotment exhausted")
	assert.True(t, inningsClosed(&scorecard.Innings{OversPlayed: 4.2, Wickets: 10}, 15), "all out")
	assert.False(t, inningsClosed(nil, 15))
}

func TestCloneScorecardIsDeep(t *testing.T) {
	orig := &scorecard.Scorecard{
		MatchID:  42,
		Innings1: &scorecard.Innings{BattingTeamID: teamA, Balls: []scorecard.Ball{{RunsScored: 4}}},
	}
	cp := cloneScorecard(orig)
	cp.Innings1.Balls = append(cp.Innings1.Balls, scorecard.Ball{RunsScored: 6})
	cp.Innings1.Score = 10

	assert.Len(t, orig.Innings1.Balls, 1, "mutating the clone must not touch the original")
	assert.Equal(t, 0, orig.Innings1.Score)
}
