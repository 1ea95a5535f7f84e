package scoring

import (
	"fmt"

	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/scorecard"
)

// BallInput is one delivery as submitted by the scorer. Runs is the total
// credited to the batting side for the delivery, including the penalty run
// on a wide or no-ball.
type BallInput struct {
	Runs      int                 `json:"runs" binding:"min=0"`
	IsExtra   bool                `json:"isExtra"`
	ExtraType scorecard.ExtraType `json:"extraType,omitempty" binding:"omitempty,oneof=wide no_ball bye leg_bye"`
	Wicket    *scorecard.Wicket   `json:"wicket,omitempty"`
}

// rotatesStrike reports whether a delivery swaps the batters: an odd number
// of runs off a legal delivery. Wides and no-balls never rotate.
func rotatesStrike(b scorecard.Ball) bool {
	if b.Extras.Type == scorecard.ExtraWide || b.Extras.Type == scorecard.ExtraNoBall {
		return false
	}
	return b.RunsScored%2 == 1
}

// RecordBall appends one delivery to the active innings and persists the
// whole scorecard. The ball is applied to a draft first; on a successful
// write the draft becomes the confirmed state. On a write failure the
// session still adopts the ball (the scorer saw it happen) but counts it
// as unconfirmed; the next successful write flushes everything.
func (s *Session) RecordBall(in BallInput) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepScoring {
		return s.stateLocked(), ErrWrongStep
	}
	inn := s.card.ActiveInnings()
	if inn == nil {
		return s.stateLocked(), ErrNoActiveInnings
	}
	if s.strikerID == 0 || s.nonStrikerID == 0 || s.bowlerID == 0 {
		return s.stateLocked(), ErrIncompleteSetup
	}
	if inningsClosed(inn, s.m.Overs) {
		return s.stateLocked(), ErrInningsClosed
	}
	if in.Runs < 0 || (!in.IsExtra && in.Runs > 6) {
		return s.stateLocked(), fmt.Errorf("invalid run count %d", in.Runs)
	}
	if in.IsExtra && in.ExtraType == "" {
		return s.stateLocked(), fmt.Errorf("extra delivery needs an extra type")
	}

	completed, legalBalls := OversParts(inn.OversPlayed)
	ball := scorecard.Ball{
		Over:         completed,
		BallInOver:   legalBalls + 1,
		BowlerID:     s.bowlerID,
		StrikerID:    s.strikerID,
		NonStrikerID: s.nonStrikerID,
		RunsScored:   in.Runs,
		Wicket:       in.Wicket,
	}
	if in.IsExtra {
		ball.Extras.Type = in.ExtraType
		if in.ExtraType == scorecard.ExtraWide || in.ExtraType == scorecard.ExtraNoBall {
			ball.Extras.Runs = in.Runs
		}
	}

	draft := cloneScorecard(s.card)
	target := draft.ActiveInnings()
	target.Balls = append(target.Balls, ball)
	target.Score += ball.RunsScored
	if ball.IsLegal() {
		target.OversPlayed = AdvanceOvers(target.OversPlayed)
	}
	if ball.Wicket != nil && target.Wickets < 10 {
		target.Wickets++
	}

	err := s.gw.PutScorecard(draft)
	s.card = draft
	if err != nil {
		s.unconfirmedBalls++
	} else {
		s.unconfirmedBalls = 0
	}

	if rotatesStrike(ball) {
		s.strikerID, s.nonStrikerID = s.nonStrikerID, s.strikerID
	}

	if err != nil {
		return s.stateLocked(), fmt.Errorf("%w: saving ball: %s", ErrPersistence, err)
	}
	return s.stateLocked(), nil
}

// ConcludeInnings closes the active innings and returns to role assignment
// with the sides swapped, so the chase can be set up. Nothing is persisted
// here; the second innings becomes durable when its first state is written
// by StartInnings. Rejected once both innings exist.
func (s *Session) ConcludeInnings() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepScoring {
		return ErrWrongStep
	}
	if s.card.ActiveInnings() == nil {
		return ErrNoActiveInnings
	}
	if s.card.Innings2 != nil {
		return ErrSecondInningsSet
	}

	s.battingTeamID, s.bowlingTeamID = s.bowlingTeamID, s.battingTeamID
	s.strikerID, s.nonStrikerID, s.bowlerID = 0, 0, 0
	s.step = StepInningsSetup
	return nil
}

// ConcludeMatch marks the match Completed with a result line. When the
// caller passes no result text one is derived from the two innings totals.
// A persistence failure leaves the match and session untouched.
func (s *Session) ConcludeMatch(result string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepScoring && s.step != StepInningsSetup {
		return ErrWrongStep
	}
	if result == "" {
		result = deriveResult(s.card)
	}

	updated, err := s.gw.UpdateMatch(s.m.ID, map[string]interface{}{
		"status": match.StatusCompleted,
		"result": result,
	})
	if err != nil {
		return fmt.Errorf("%w: concluding match: %s", ErrPersistence, err)
	}
	if updated != nil {
		s.m = updated
	}
	return nil
}

// deriveResult builds a result line from the innings totals. Team names
// are not in scope here, so sides are named by id; callers wanting prose
// results pass their own text.
func deriveResult(sc *scorecard.Scorecard) string {
	if sc == nil || sc.Innings1 == nil {
		return "Match concluded"
	}
	if sc.Innings2 == nil {
		return fmt.Sprintf("Team %d scored %d/%d", sc.Innings1.BattingTeamID, sc.Innings1.Score, sc.Innings1.Wickets)
	}
	first, second := sc.Innings1, sc.Innings2
	switch {
	case second.Score > first.Score:
		return fmt.Sprintf("Team %d won by %d wickets", second.BattingTeamID, 10-second.Wickets)
	case first.Score > second.Score:
		return fmt.Sprintf("Team %d won by %d runs", first.BattingTeamID, first.Score-second.Score)
	default:
		return "Match tied"
	}
}
