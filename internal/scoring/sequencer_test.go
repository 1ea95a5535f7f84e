package scoring

import (
	"testing"

	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionUnknownMatch(t *testing.T) {
	g := newFakeGateway()
	_, err := NewSession(g, 999)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestTogglePlayerSemantics(t *testing.T) {
	g := newFakeGateway()
	s, err := NewSession(g, 42)
	require.NoError(t, err)

	require.NoError(t, s.TogglePlayer(teamA, 101))
	assert.Equal(t, []uint{101}, s.State().PlayingXI[teamA])

	// Toggling a selected player deselects them.
	require.NoError(t, s.TogglePlayer(teamA, 101))
	assert.Empty(t, s.State().PlayingXI[teamA])

	// A 12th selection is silently ignored.
	for _, id := range g.xiOf(teamA) {
		require.NoError(t, s.TogglePlayer(teamA, id))
	}
	require.NoError(t, s.TogglePlayer(teamA, 112))
	xi := s.State().PlayingXI[teamA]
	assert.Len(t, xi, 11)
	assert.NotContains(t, xi, uint(112))

	assert.ErrorIs(t, s.TogglePlayer(3, 101), ErrUnknownTeam)
	assert.ErrorIs(t, s.TogglePlayer(teamB, 9999), ErrNotInRoster)
}

func TestConfirmPlayingXIRequiresEleven(t *testing.T) {
	g := newFakeGateway()
	s, err := NewSession(g, 42)
	require.NoError(t, err)

	for _, id := range g.xiOf(teamA) {
		require.NoError(t, s.TogglePlayer(teamA, id))
	}
	assert.ErrorIs(t, s.ConfirmPlayingXI(), ErrXICount, "team B has no XI yet")

	for _, id := range g.xiOf(teamB) {
		require.NoError(t, s.TogglePlayer(teamB, id))
	}
	require.NoError(t, s.ConfirmPlayingXI())
	assert.Equal(t, StepToss, s.State().Step)

	assert.ErrorIs(t, s.TogglePlayer(teamA, 101), ErrWrongStep, "XI is locked after confirmation")
}

func TestConfirmTossDerivesBattingSide(t *testing.T) {
	cases := []struct {
		name        string
		wonBy       uint
		decision    match.TossDecision
		wantBatting uint
		wantBowling uint
	}{
		{"winner bats", teamA, match.DecisionBat, teamA, teamB},
		{"winner bowls", teamA, match.DecisionBowl, teamB, teamA},
		{"other winner bats", teamB, match.DecisionBat, teamB, teamA},
		{"other winner bowls", teamB, match.DecisionBowl, teamA, teamB},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newFakeGateway()
			s, err := NewSession(g, 42)
			require.NoError(t, err)
			for _, teamID := range []uint{teamA, teamB} {
				for _, id := range g.xiOf(teamID) {
					require.NoError(t, s.TogglePlayer(teamID, id))
				}
			}
			require.NoError(t, s.ConfirmPlayingXI())

			require.NoError(t, s.ConfirmToss(tc.wonBy, tc.decision))
			st := s.State()
			assert.Equal(t, StepInningsSetup, st.Step)
			assert.Equal(t, tc.wantBatting, st.BattingTeamID)
			assert.Equal(t, tc.wantBowling, st.BowlingTeamID)

			require.NotNil(t, g.match.TossWonByTeamID)
			assert.Equal(t, tc.wonBy, *g.match.TossWonByTeamID)
			require.NotNil(t, g.match.ChoseTo)
			assert.Equal(t, tc.decision, *g.match.ChoseTo)
		})
	}
}

func TestConfirmTossPersistenceFailureStaysOnToss(t *testing.T) {
	g := newFakeGateway()
	s, err := NewSession(g, 42)
	require.NoError(t, err)
	for _, teamID := range []uint{teamA, teamB} {
		for _, id := range g.xiOf(teamID) {
			require.NoError(t, s.TogglePlayer(teamID, id))
		}
	}
	require.NoError(t, s.ConfirmPlayingXI())

	g.failUpdate = true
	err = s.ConfirmToss(teamA, match.DecisionBat)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, StepToss, s.State().Step)

	g.failUpdate = false
	require.NoError(t, s.ConfirmToss(teamA, match.DecisionBat), "retry succeeds")
	assert.Equal(t, StepInningsSetup, s.State().Step)
}

func TestStartInningsValidation(t *testing.T) {
	g := newFakeGateway()
	s, err := NewSession(g, 42)
	require.NoError(t, err)
	for _, teamID := range []uint{teamA, teamB} {
		for _, id := range g.xiOf(teamID) {
			require.NoError(t, s.TogglePlayer(teamID, id))
		}
	}
	require.NoError(t, s.ConfirmPlayingXI())
	require.NoError(t, s.ConfirmToss(teamA, match.DecisionBat))

	assert.ErrorIs(t, s.StartInnings(101, 101, 201), ErrDuplicateBatters)
	assert.ErrorIs(t, s.StartInnings(101, 0, 201), ErrIncompleteSetup)
	assert.ErrorIs(t, s.StartInnings(101, 112, 201), ErrNotInXI, "non-striker outside the confirmed XI")
	assert.ErrorIs(t, s.StartInnings(101, 102, 102), ErrNotInXI, "bowler must come from the bowling side")

	require.NoError(t, s.StartInnings(101, 102, 201))
	st := s.State()
	assert.Equal(t, StepScoring, st.Step)
	assert.Equal(t, uint(101), st.StrikerID)
	assert.Equal(t, uint(102), st.NonStrikerID)
	assert.Equal(t, uint(201), st.BowlerID)
	assert.Equal(t, 1, st.InningsNumber)

	assert.Equal(t, match.StatusLive, g.match.Status)
	require.NotNil(t, g.match.ScorecardID)
	require.NotNil(t, g.card)
	assert.Equal(t, teamA, g.card.Innings1.BattingTeamID)
	assert.Equal(t, teamB, g.card.Innings1.BowlingTeamID)
}

func TestStartInningsPersistenceFailureStaysOnSetup(t *testing.T) {
	g := newFakeGateway()
	s, err := NewSession(g, 42)
	require.NoError(t, err)
	for _, teamID := range []uint{teamA, teamB} {
		for _, id := range g.xiOf(teamID) {
			require.NoError(t, s.TogglePlayer(teamID, id))
		}
	}
	require.NoError(t, s.ConfirmPlayingXI())
	require.NoError(t, s.ConfirmToss(teamA, match.DecisionBat))

	g.failPut = true
	err = s.StartInnings(101, 102, 201)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, StepInningsSetup, s.State().Step)

	g.failPut = false
	require.NoError(t, s.StartInnings(101, 102, 201))
	assert.Equal(t, StepScoring, s.State().Step)
}
