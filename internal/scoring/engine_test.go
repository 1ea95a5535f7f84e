package scoring

import (
	"testing"

	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/scorecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBallLegalDelivery(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)

	st, err := s.RecordBall(BallInput{Runs: 4})
	require.NoError(t, err)

	require.NotNil(t, st.Innings)
	assert.Equal(t, 4, st.Innings.Score)
	assert.Equal(t, 0, st.Innings.Wickets)
	assert.InDelta(t, 0.1, st.Innings.OversPlayed, 1e-9)
	require.Len(t, st.Innings.Balls, 1)

	ball := st.Innings.Balls[0]
	assert.Equal(t, 0, ball.Over)
	assert.Equal(t, 1, ball.BallInOver)
	assert.Equal(t, uint(101), ball.StrikerID)
	assert.Equal(t, uint(102), ball.NonStrikerID)
	assert.Equal(t, uint(201), ball.BowlerID)

	// Even runs keep the striker on strike.
	assert.Equal(t, uint(101), st.StrikerID)

	// The write was confirmed.
	assert.Equal(t, 0, st.UnconfirmedBalls)
	assert.Equal(t, 4, g.card.Innings1.Score)
}

func TestRecordBallStrikeRotation(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)

	st, err := s.RecordBall(BallInput{Runs: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(102), st.StrikerID, "odd runs rotate strike")
	assert.Equal(t, uint(101), st.NonStrikerID)

	st, err = s.RecordBall(BallInput{Runs: 3})
	require.NoError(t, err)
	assert.Equal(t, uint(101), st.StrikerID, "rotation applies again")

	// A wide never rotates, whatever the run count.
	st, err = s.RecordBall(BallInput{Runs: 1, IsExtra: true, ExtraType: scorecard.ExtraWide})
	require.NoError(t, err)
	assert.Equal(t, uint(101), st.StrikerID)

	// A bye is a legal delivery and rotates on odd runs.
	st, err = s.RecordBall(BallInput{Runs: 1, IsExtra: true, ExtraType: scorecard.ExtraBye})
	require.NoError(t, err)
	assert.Equal(t, uint(102), st.StrikerID)
}

func TestRecordBallExtrasDoNotAdvanceOvers(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)

	st, err := s.RecordBall(BallInput{Runs: 5, IsExtra: true, ExtraType: scorecard.ExtraWide})
	require.NoError(t, err)
	assert.Equal(t, 5, st.Innings.Score, "wide plus boundary all count")
	assert.InDelta(t, 0.0, st.Innings.OversPlayed, 1e-9, "wide does not count toward the over")
	assert.Equal(t, 5, st.Innings.Balls[0].Extras.Runs)

	st, err = s.RecordBall(BallInput{Runs: 2, IsExtra: true, ExtraType: scorecard.ExtraNoBall})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, st.Innings.OversPlayed, 1e-9)

	st, err = s.RecordBall(BallInput{Runs: 2, IsExtra: true, ExtraType: scorecard.ExtraLegBye})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, st.Innings.OversPlayed, 1e-9, "leg bye is a legal delivery")
	assert.Equal(t, 0, st.Innings.Balls[2].Extras.Runs, "leg bye runs are not penalty runs")
}

func TestRecordBallOverRollsAfterSixLegalDeliveries(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := s.RecordBall(BallInput{Runs: 0})
		require.NoError(t, err)
	}
	// A wide in between must not consume a ball slot.
	st, err := s.RecordBall(BallInput{Runs: 1, IsExtra: true, ExtraType: scorecard.ExtraWide})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, st.Innings.OversPlayed, 1e-9)
	assert.Equal(t, 6, st.Innings.Balls[5].BallInOver, "re-bowled sixth ball")

	st, err = s.RecordBall(BallInput{Runs: 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, st.Innings.OversPlayed, 1e-9)

	st, err = s.RecordBall(BallInput{Runs: 0})
	require.NoError(t, err)
	last := st.Innings.Balls[len(st.Innings.Balls)-1]
	assert.Equal(t, 1, last.Over)
	assert.Equal(t, 1, last.BallInOver)
}

func TestRecordBallWickets(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)

	st, err := s.RecordBall(BallInput{Wicket: &scorecard.Wicket{Type: "Bowled", PlayerID: 101}})
	require.NoError(t, err)
	assert.Equal(t, 1, st.Innings.Wickets)

	score, wickets := RecomputeTotals(st.Innings)
	assert.Equal(t, st.Innings.Score, score)
	assert.Equal(t, st.Innings.Wickets, wickets)
}

func TestRecordBallClosedInnings(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)

	// All out.
	for i := 0; i < 10; i++ {
		_, err := s.RecordBall(BallInput{Wicket: &scorecard.Wicket{Type: "Bowled", PlayerID: uint(101 + i)}})
		require.NoError(t, err)
	}
	_, err = s.RecordBall(BallInput{Runs: 1})
	assert.ErrorIs(t, err, ErrInningsClosed)
}

func TestRecordBallRejectsInvalidInput(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)

	_, err = s.RecordBall(BallInput{Runs: -1})
	assert.Error(t, err)
	_, err = s.RecordBall(BallInput{Runs: 7})
	assert.Error(t, err, "more than six off the bat")
	_, err = s.RecordBall(BallInput{Runs: 1, IsExtra: true})
	assert.Error(t, err, "extra without a type")

	assert.Empty(t, s.State().Innings.Balls, "nothing was recorded")
}

func TestRecordBallUnconfirmedOnWriteFailure(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)

	g.failPut = true
	st, err := s.RecordBall(BallInput{Runs: 4})
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 1, st.UnconfirmedBalls)
	assert.Equal(t, 4, st.Innings.Score, "the ball stays applied in memory")
	assert.Empty(t, g.card.Innings1.Balls, "nothing reached the store")
	assert.Equal(t, 0, g.card.Innings1.Score)

	st, err = s.RecordBall(BallInput{Runs: 1})
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 2, st.UnconfirmedBalls)

	// The next successful write flushes the whole card, unconfirmed balls
	// included.
	g.failPut = false
	st, err = s.RecordBall(BallInput{Runs: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, st.UnconfirmedBalls)
	assert.Equal(t, 5, g.card.Innings1.Score)
	assert.Len(t, g.card.Innings1.Balls, 3)
}

func TestConcludeInningsSwapsSides(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)
	_, err = s.RecordBall(BallInput{Runs: 4})
	require.NoError(t, err)

	require.NoError(t, s.ConcludeInnings())
	st := s.State()
	assert.Equal(t, StepInningsSetup, st.Step)
	assert.Equal(t, teamB, st.BattingTeamID)
	assert.Equal(t, teamA, st.BowlingTeamID)
	assert.Zero(t, st.StrikerID)

	// Starting the chase creates the second innings.
	require.NoError(t, s.StartInnings(201, 202, 101))
	st = s.State()
	assert.Equal(t, StepScoring, st.Step)
	assert.Equal(t, 2, st.InningsNumber)
	assert.Equal(t, teamB, st.Innings.BattingTeamID)

	require.NotNil(t, g.card.Innings2)
	assert.Equal(t, 4, g.card.Innings1.Score, "first innings untouched")
}

func TestConcludeInningsOnlyOnce(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)
	require.NoError(t, s.ConcludeInnings())
	require.NoError(t, s.StartInnings(201, 202, 101))

	assert.ErrorIs(t, s.ConcludeInnings(), ErrSecondInningsSet)
}

func TestConcludeMatch(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)
	_, err = s.RecordBall(BallInput{Runs: 4})
	require.NoError(t, err)
	require.NoError(t, s.ConcludeInnings())
	require.NoError(t, s.StartInnings(201, 202, 101))
	_, err = s.RecordBall(BallInput{Runs: 6})
	require.NoError(t, err)

	require.NoError(t, s.ConcludeMatch(""))
	assert.Equal(t, match.StatusCompleted, g.match.Status)
	assert.Equal(t, "Team 2 won by 10 wickets", g.match.Result)
}

func TestConcludeMatchCustomResultAndFailure(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)

	g.failUpdate = true
	err = s.ConcludeMatch("Rained off")
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, match.StatusLive, g.match.Status, "match untouched on failure")

	g.failUpdate = false
	require.NoError(t, s.ConcludeMatch("Rained off"))
	assert.Equal(t, "Rained off", g.match.Result)
}

func TestDeriveResult(t *testing.T) {
	first := &scorecard.Innings{BattingTeamID: teamA, Score: 150, Wickets: 7}

	assert.Equal(t, "Match concluded", deriveResult(nil))
	assert.Equal(t, "Team 1 scored 150/7", deriveResult(&scorecard.Scorecard{Innings1: first}))

	chaseWon := &scorecard.Scorecard{
		Innings1: first,
		Innings2: &scorecard.Innings{BattingTeamID: teamB, Score: 151, Wickets: 4},
	}
	assert.Equal(t, "Team 2 won by 6 wickets", deriveResult(chaseWon))

	defended := &scorecard.Scorecard{
		Innings1: first,
		Innings2: &scorecard.Innings{BattingTeamID: teamB, Score: 120, Wickets: 10},
	}
	assert.Equal(t, "Team 1 won by 30 runs", deriveResult(defended))

	tied := &scorecard.Scorecard{
		Innings1: first,
		Innings2: &scorecard.Innings{BattingTeamID: teamB, Score: 150, Wickets: 9},
	}
	assert.Equal(t, "Match tied", deriveResult(tied))
}
