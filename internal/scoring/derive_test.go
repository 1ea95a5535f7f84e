package scoring

import (
	"testing"

	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/scorecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSessionState(t *testing.T) {
	won := teamA
	bat := match.DecisionBat

	scheduled := &match.Match{TeamAID: teamA, TeamBID: teamB, Status: match.StatusScheduled}
	liveNoToss := &match.Match{TeamAID: teamA, TeamBID: teamB, Status: match.StatusLive}
	liveWithToss := &match.Match{TeamAID: teamA, TeamBID: teamB, Status: match.StatusLive, TossWonByTeamID: &won, ChoseTo: &bat}

	withBalls := &scorecard.Scorecard{Innings1: &scorecard.Innings{
		BattingTeamID: teamA,
		Balls:         []scorecard.Ball{{StrikerID: 101, NonStrikerID: 102, BowlerID: 201}},
	}}
	noBallsYet := &scorecard.Scorecard{Innings1: &scorecard.Innings{BattingTeamID: teamA}}

	assert.Equal(t, StepPlayingXI, DeriveSessionState(scheduled, nil))
	assert.Equal(t, StepPlayingXI, DeriveSessionState(liveNoToss, nil))
	assert.Equal(t, StepInningsSetup, DeriveSessionState(liveWithToss, nil))
	assert.Equal(t, StepScoring, DeriveSessionState(liveWithToss, withBalls))
	assert.Equal(t, StepScoring, DeriveSessionState(scheduled, withBalls), "a ball on record always wins")
	assert.Equal(t, StepInningsSetup, DeriveSessionState(liveWithToss, noBallsYet),
		"an innings without deliveries needs its roles assigned again")
	assert.Equal(t, StepInningsSetup, DeriveSessionState(liveWithToss, &scorecard.Scorecard{}),
		"an empty scorecard carries no innings, so the toss decides")
}

func TestTeamsFromToss(t *testing.T) {
	won := teamB
	bowl := match.DecisionBowl
	m := &match.Match{TeamAID: teamA, TeamBID: teamB, TossWonByTeamID: &won, ChoseTo: &bowl}

	batting, bowling := TeamsFromToss(m)
	assert.Equal(t, teamA, batting)
	assert.Equal(t, teamB, bowling)

	batting, bowling = TeamsFromToss(&match.Match{TeamAID: teamA, TeamBID: teamB})
	assert.Zero(t, batting)
	assert.Zero(t, bowling)
}

func TestRolesFromScorecardReappliesRotation(t *testing.T) {
	card := &scorecard.Scorecard{
		Innings1: &scorecard.Innings{
			BattingTeamID: teamA,
			Balls: []scorecard.Ball{
				{StrikerID: 101, NonStrikerID: 102, BowlerID: 201, RunsScored: 1},
			},
		},
	}
	strikerID, nonStrikerID, bowlerID, ok := RolesFromScorecard(card)
	require.True(t, ok)
	assert.Equal(t, uint(102), strikerID, "the single rotated strike")
	assert.Equal(t, uint(101), nonStrikerID)
	assert.Equal(t, uint(201), bowlerID)

	// A wide with an odd run count does not rotate.
	card.Innings1.Balls[0].Extras = scorecard.Extras{Type: scorecard.ExtraWide, Runs: 1}
	strikerID, _, _, ok = RolesFromScorecard(card)
	require.True(t, ok)
	assert.Equal(t, uint(101), strikerID)

	_, _, _, ok = RolesFromScorecard(&scorecard.Scorecard{Innings1: &scorecard.Innings{}})
	assert.False(t, ok)
}

// A session rebuilt from persisted state alone must be indistinguishable
// from the one that was scoring before the restart.
func TestSessionResumesIdentically(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)

	deliveries := []BallInput{
		{Runs: 4},
		{Runs: 1},
		{Runs: 1, IsExtra: true, ExtraType: scorecard.ExtraWide},
		{Runs: 0, Wicket: &scorecard.Wicket{Type: "Caught", PlayerID: 101, FielderID: ptr(uint(205))}},
		{Runs: 3},
	}
	for _, in := range deliveries {
		_, err := s.RecordBall(in)
		require.NoError(t, err)
	}

	resumed, err := NewSession(g, 42)
	require.NoError(t, err)
	assert.Equal(t, s.State(), resumed.State())

	// Scoring continues seamlessly on the resumed session.
	st, err := resumed.RecordBall(BallInput{Runs: 2})
	require.NoError(t, err)
	assert.Equal(t, 11, st.Innings.Score)
}

// A restart after the innings was persisted but before the first delivery
// must come back at role assignment, not scoring with empty roles.
func TestSessionResumesBeforeFirstBall(t *testing.T) {
	g := newFakeGateway()
	_, err := startedSession(g)
	require.NoError(t, err)

	resumed, err := NewSession(g, 42)
	require.NoError(t, err)
	st := resumed.State()
	assert.Equal(t, StepInningsSetup, st.Step)
	assert.Equal(t, teamA, st.BattingTeamID)
	assert.Equal(t, teamB, st.BowlingTeamID)

	// Re-assigning the openers resumes the persisted innings in place.
	require.NoError(t, resumed.StartInnings(103, 104, 202))
	st = resumed.State()
	assert.Equal(t, StepScoring, st.Step)
	assert.Equal(t, 1, st.InningsNumber)
	require.Nil(t, g.card.Innings2)

	recorded, err := resumed.RecordBall(BallInput{Runs: 4})
	require.NoError(t, err)
	assert.Equal(t, uint(103), recorded.Innings.Balls[0].StrikerID)
	assert.Equal(t, 4, g.card.Innings1.Score)
}

func TestSessionResumesBeforeFirstBallOfSecondInnings(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)
	_, err = s.RecordBall(BallInput{Runs: 6})
	require.NoError(t, err)
	require.NoError(t, s.ConcludeInnings())
	require.NoError(t, s.StartInnings(201, 202, 101))

	// The empty second innings is on record; a rebuilt session must ask for
	// the chase's openers again, with the swapped sides already pinned.
	resumed, err := NewSession(g, 42)
	require.NoError(t, err)
	st := resumed.State()
	assert.Equal(t, StepInningsSetup, st.Step)
	assert.Equal(t, teamB, st.BattingTeamID)
	assert.Equal(t, teamA, st.BowlingTeamID)

	require.NoError(t, resumed.StartInnings(203, 204, 102))
	st = resumed.State()
	assert.Equal(t, StepScoring, st.Step)
	assert.Equal(t, 2, st.InningsNumber)

	_, err = resumed.RecordBall(BallInput{Runs: 1})
	require.NoError(t, err)
	require.Len(t, g.card.Innings2.Balls, 1)
	assert.Equal(t, 6, g.card.Innings1.Score, "first innings untouched")
}

func TestSessionResumesIntoSecondInnings(t *testing.T) {
	g := newFakeGateway()
	s, err := startedSession(g)
	require.NoError(t, err)
	_, err = s.RecordBall(BallInput{Runs: 6})
	require.NoError(t, err)
	require.NoError(t, s.ConcludeInnings())
	require.NoError(t, s.StartInnings(201, 202, 101))
	_, err = s.RecordBall(BallInput{Runs: 1})
	require.NoError(t, err)

	resumed, err := NewSession(g, 42)
	require.NoError(t, err)
	st := resumed.State()
	assert.Equal(t, StepScoring, st.Step)
	assert.Equal(t, 2, st.InningsNumber)
	assert.Equal(t, teamB, st.BattingTeamID)
	assert.Equal(t, uint(202), st.StrikerID, "odd runs rotated before the restart")
	assert.Equal(t, s.State(), st)
}

func ptr[T any](v T) *T { return &v }
