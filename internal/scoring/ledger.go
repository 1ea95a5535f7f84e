package scoring

import (
	"math"

	"github.com/dugout-labs/pitchside/internal/scorecard"
)

// The innings ledger is the append-only ball sequence plus its derived
// views. OversPlayed is the persisted decimal encoding; all arithmetic here
// goes through integer (completedOvers, legalBalls) pairs so repeated
// increments cannot drift.

// OversParts decodes an oversPlayed value such as 10.2 into 10 completed
// overs and 2 legal balls in the current over. The fractional digit is
// always in [0,5] by construction.
func OversParts(oversPlayed float64) (completed, legalBalls int) {
	completed = int(oversPlayed)
	legalBalls = int(math.Round((oversPlayed - float64(completed)) * 10))
	return completed, legalBalls
}

// EncodeOvers is the inverse of OversParts.
func EncodeOvers(completed, legalBalls int) float64 {
	return float64(completed) + float64(legalBalls)/10
}

// AdvanceOvers moves the over count forward by one legal delivery. The 6th
// legal delivery rolls the count to the next whole over (9.5 -> 10.0).
func AdvanceOvers(oversPlayed float64) float64 {
	completed, legalBalls := OversParts(oversPlayed)
	legalBalls++
	if legalBalls >= 6 {
		return EncodeOvers(completed+1, 0)
	}
	return EncodeOvers(completed, legalBalls)
}

// CurrentPosition reports where the innings stands: the over and
// ball-in-over of the most recent delivery, or (0, 0) before the first.
func CurrentPosition(inn *scorecard.Innings) (over, ballInOver int) {
	if inn == nil || len(inn.Balls) == 0 {
		return 0, 0
	}
	last := inn.Balls[len(inn.Balls)-1]
	return last.Over, last.BallInOver
}

// RecomputeTotals derives score and wickets purely from the ball sequence.
// It must always agree with the incrementally maintained Score/Wickets
// fields; tests use it as a cross-check.
func RecomputeTotals(inn *scorecard.Innings) (score, wickets int) {
	if inn == nil {
		return 0, 0
	}
	for _, b := range inn.Balls {
		score += b.RunsScored
		if b.Wicket != nil && wickets < 10 {
			wickets++
		}
	}
	return score, wickets
}

// RecentBalls returns the most recent n deliveries in reverse chronological
// order, for the live feed.
func RecentBalls(inn *scorecard.Innings, n int) []scorecard.Ball {
	if inn == nil || n <= 0 {
		return nil
	}
	total := len(inn.Balls)
	if n > total {
		n = total
	}
	out := make([]scorecard.Ball, 0, n)
	for i := total - 1; i >= total-n; i-- {
		out = append(out, inn.Balls[i])
	}
	return out
}

// inningsClosed reports whether an innings can accept no further deliveries:
// all out, or the over allotment exhausted.
func inningsClosed(inn *scorecard.Innings, allottedOvers int) bool {
	if inn == nil {
		return false
	}
	if inn.Wickets >= 10 {
		return true
	}
	completed, _ := OversParts(inn.OversPlayed)
	return allottedOvers > 0 && completed >= allottedOvers
}

// cloneInnings deep-copies an innings so a draft can be mutated without
// touching the confirmed state.
func cloneInnings(inn *scorecard.Innings) *scorecard.Innings {
	if inn == nil {
		return nil
	}
	cp := *inn
	cp.Balls = make([]scorecard.Ball, len(inn.Balls))
	copy(cp.Balls, inn.Balls)
	return &cp
}

// cloneScorecard deep-copies a scorecard including both innings.
func cloneScorecard(sc *scorecard.Scorecard) *scorecard.Scorecard {
	if sc == nil {
		return nil
	}
	cp := *sc
	cp.Innings1 = cloneInnings(sc.Innings1)
	cp.Innings2 = cloneInnings(sc.Innings2)
	return &cp
}
