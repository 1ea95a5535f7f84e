package scoring

import (
	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/scorecard"
)

// Step identifies where a scoring session stands in the pre-play sequence.
// Steps advance strictly forward; once a later step's data is persisted
// there is no going back.
type Step string

const (
	StepInitial      Step = "initial"
	StepPlayingXI    Step = "playingXI"
	StepToss         Step = "toss"
	StepInningsSetup Step = "inningsSelection"
	StepScoring      Step = "scoring"
)

// DeriveSessionState reconciles persisted match and scorecard records into
// the step a resumed session must start at. Exhaustive over the persisted
// combinations:
//
//   - active innings with at least one ball: scoring is in progress and the
//     roles are reconstructable, resume at StepScoring;
//   - active innings with no balls yet: the innings was persisted before the
//     first delivery, so the opening roles must be assigned again at
//     StepInningsSetup (StartInnings resumes the existing innings);
//   - no active innings, match Live with toss recorded: the toss was
//     persisted but the first innings never was, resume at StepInningsSetup;
//   - anything else: start from playing-XI selection.
func DeriveSessionState(m *match.Match, sc *scorecard.Scorecard) Step {
	if inn := sc.ActiveInnings(); inn != nil {
		if len(inn.Balls) == 0 {
			return StepInningsSetup
		}
		return StepScoring
	}
	if m != nil && m.Status == match.StatusLive && m.TossWonByTeamID != nil && m.ChoseTo != nil {
		return StepInningsSetup
	}
	return StepPlayingXI
}

// TeamsFromToss derives which side bats first from the stored toss outcome.
func TeamsFromToss(m *match.Match) (battingTeamID, bowlingTeamID uint) {
	if m == nil || m.TossWonByTeamID == nil || m.ChoseTo == nil {
		return 0, 0
	}
	winner := *m.TossWonByTeamID
	loser := m.TeamAID
	if winner == m.TeamAID {
		loser = m.TeamBID
	}
	if *m.ChoseTo == match.DecisionBat {
		return winner, loser
	}
	return loser, winner
}

// RolesFromScorecard reconstructs the striker, non-striker, and bowler from
// the most recent delivery of the active innings. A recorded ball carries
// the batters as they stood when it was bowled, so any strike rotation that
// ball caused is re-applied here. ok is false when no ball has been
// recorded yet.
func RolesFromScorecard(sc *scorecard.Scorecard) (strikerID, nonStrikerID, bowlerID uint, ok bool) {
	inn := sc.ActiveInnings()
	if inn == nil || len(inn.Balls) == 0 {
		return 0, 0, 0, false
	}
	last := inn.Balls[len(inn.Balls)-1]
	strikerID, nonStrikerID = last.StrikerID, last.NonStrikerID
	if rotatesStrike(last) {
		strikerID, nonStrikerID = nonStrikerID, strikerID
	}
	return strikerID, nonStrikerID, last.BowlerID, true
}
