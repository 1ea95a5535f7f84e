package scoring

import "errors"

// Validation and precondition errors are reported to the caller with no
// state transition and no persistence call. Persistence errors wrap
// ErrPersistence so callers can distinguish them from validation failures.
var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrWrongStep        = errors.New("operation not allowed in the current setup step")
	ErrUnknownTeam      = errors.New("team is not part of this match")
	ErrXICount          = errors.New("each side must have exactly 11 selected players")
	ErrNotInRoster      = errors.New("player is not in the team's roster")
	ErrNotInXI          = errors.New("player is not in the confirmed playing XI")
	ErrDuplicateBatters = errors.New("striker and non-striker must be different players")
	ErrIncompleteSetup  = errors.New("striker, non-striker, and bowler must all be assigned")
	ErrNoActiveInnings  = errors.New("no active innings")
	ErrInningsClosed    = errors.New("innings is over")
	ErrSecondInningsSet = errors.New("second innings already recorded; conclude the match instead")
	ErrPersistence      = errors.New("persistence failed")
)
