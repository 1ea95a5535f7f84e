package scoring

import (
	"fmt"
	"sync"

	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/scorecard"
)

const playingXISize = 11

// Session drives one match through playing-XI selection, toss, innings
// role assignment, and ball-by-ball scoring. The session owns the
// in-memory scorecard for the duration of a scoring sitting; the gateway
// remains the durable system of record, and a session rebuilt from the
// gateway alone resumes exactly where the last one stopped.
type Session struct {
	mu sync.Mutex
	gw Gateway

	m    *match.Match
	card *scorecard.Scorecard

	step    Step
	rosters map[uint]map[uint]bool // teamID -> eligible player ids
	xi      map[uint][]uint        // teamID -> selected XI, selection order

	battingTeamID uint
	bowlingTeamID uint
	strikerID     uint
	nonStrikerID  uint
	bowlerID      uint

	// Balls applied in memory whose scorecard write failed. Zero means the
	// gateway has confirmed everything the session shows.
	unconfirmedBalls int
}

// SessionState is a read-only snapshot of a session for the API layer.
type SessionState struct {
	MatchID          uint               `json:"matchId"`
	Step             Step               `json:"step"`
	AllottedOvers    int                `json:"allottedOvers"`
	BattingTeamID    uint               `json:"battingTeamId,omitempty"`
	BowlingTeamID    uint               `json:"bowlingTeamId,omitempty"`
	StrikerID        uint               `json:"strikerId,omitempty"`
	NonStrikerID     uint               `json:"nonStrikerId,omitempty"`
	BowlerID         uint               `json:"bowlerId,omitempty"`
	PlayingXI        map[uint][]uint    `json:"playingXI,omitempty"`
	Innings          *scorecard.Innings `json:"innings,omitempty"`
	InningsNumber    int                `json:"inningsNumber,omitempty"`
	UnconfirmedBalls int                `json:"unconfirmedBalls"`
}

// NewSession loads a match and its persisted scorecard (if any) and derives
// the step to resume at. Roster and match data are loaded up front; nothing
// is read from ambient state afterwards.
func NewSession(gw Gateway, matchID uint) (*Session, error) {
	m, err := gw.GetMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("loading match %d: %w", matchID, err)
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}

	card, err := gw.GetScorecard(matchID)
	if err != nil {
		return nil, fmt.Errorf("loading scorecard for match %d: %w", matchID, err)
	}

	s := &Session{
		gw:      gw,
		m:       m,
		card:    card,
		rosters: make(map[uint]map[uint]bool, 2),
		xi: map[uint][]uint{
			m.TeamAID: {},
			m.TeamBID: {},
		},
	}

	for _, teamID := range []uint{m.TeamAID, m.TeamBID} {
		roster, rosterErr := gw.GetTeamRoster(teamID)
		if rosterErr != nil {
			return nil, fmt.Errorf("loading roster for team %d: %w", teamID, rosterErr)
		}
		set := make(map[uint]bool, len(roster))
		for _, p := range roster {
			set[p.ID] = true
		}
		s.rosters[teamID] = set
	}

	s.step = DeriveSessionState(m, card)
	switch s.step {
	case StepScoring:
		inn := card.ActiveInnings()
		s.battingTeamID = inn.BattingTeamID
		s.bowlingTeamID = inn.BowlingTeamID
		if strikerID, nonStrikerID, bowlerID, ok := RolesFromScorecard(card); ok {
			s.strikerID = strikerID
			s.nonStrikerID = nonStrikerID
			s.bowlerID = bowlerID
		}
	case StepInningsSetup:
		// A persisted innings with no balls yet pins the sides; otherwise
		// only the toss is on record.
		if inn := card.ActiveInnings(); inn != nil {
			s.battingTeamID, s.bowlingTeamID = inn.BattingTeamID, inn.BowlingTeamID
		} else {
			s.battingTeamID, s.bowlingTeamID = TeamsFromToss(m)
		}
	}

	return s, nil
}

// State returns a snapshot of the session.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() SessionState {
	st := SessionState{
		MatchID:          s.m.ID,
		Step:             s.step,
		AllottedOvers:    s.m.Overs,
		BattingTeamID:    s.battingTeamID,
		BowlingTeamID:    s.bowlingTeamID,
		StrikerID:        s.strikerID,
		NonStrikerID:     s.nonStrikerID,
		BowlerID:         s.bowlerID,
		UnconfirmedBalls: s.unconfirmedBalls,
	}
	if s.step == StepPlayingXI || s.step == StepToss || s.step == StepInningsSetup {
		st.PlayingXI = map[uint][]uint{}
		for teamID, ids := range s.xi {
			st.PlayingXI[teamID] = append([]uint(nil), ids...)
		}
	}
	if inn := s.card.ActiveInnings(); inn != nil {
		st.Innings = cloneInnings(inn)
		st.InningsNumber = 1
		if s.card.Innings2 != nil {
			st.InningsNumber = 2
		}
	}
	return st
}

// TogglePlayer adds a player to or removes them from a team's playing XI.
// Selecting a 12th player is a silent no-op; reselecting a chosen player
// removes them. Only valid during playing-XI selection.
func (s *Session) TogglePlayer(teamID, playerID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPlayingXI {
		return ErrWrongStep
	}
	if teamID != s.m.TeamAID && teamID != s.m.TeamBID {
		return ErrUnknownTeam
	}
	if !s.rosters[teamID][playerID] {
		return ErrNotInRoster
	}

	selected := s.xi[teamID]
	for i, id := range selected {
		if id == playerID {
			s.xi[teamID] = append(selected[:i], selected[i+1:]...)
			return nil
		}
	}
	if len(selected) >= playingXISize {
		// Limit enforced silently, mirroring the scorer UI.
		return nil
	}
	s.xi[teamID] = append(selected, playerID)
	return nil
}

// ConfirmPlayingXI locks in both sides' elevens and advances to the toss.
// Rejected unless each side has exactly 11 distinct players.
func (s *Session) ConfirmPlayingXI() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPlayingXI {
		return ErrWrongStep
	}
	if len(s.xi[s.m.TeamAID]) != playingXISize || len(s.xi[s.m.TeamBID]) != playingXISize {
		return ErrXICount
	}

	s.step = StepToss
	return nil
}

// ConfirmToss records the toss outcome, persists it on the match, and
// derives which side bats first. A persistence failure leaves the session
// at the toss step so the scorer can retry.
func (s *Session) ConfirmToss(wonByTeamID uint, decision match.TossDecision) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepToss {
		return ErrWrongStep
	}
	if wonByTeamID != s.m.TeamAID && wonByTeamID != s.m.TeamBID {
		return ErrUnknownTeam
	}
	if decision != match.DecisionBat && decision != match.DecisionBowl {
		return fmt.Errorf("invalid toss decision %q", decision)
	}

	updated, err := s.gw.UpdateMatch(s.m.ID, map[string]interface{}{
		"toss_won_by_team_id": wonByTeamID,
		"chose_to":            decision,
	})
	if err != nil {
		return fmt.Errorf("%w: saving toss: %s", ErrPersistence, err)
	}
	if updated != nil {
		s.m = updated
	}

	loser := s.m.TeamAID
	if wonByTeamID == s.m.TeamAID {
		loser = s.m.TeamBID
	}
	if decision == match.DecisionBat {
		s.battingTeamID, s.bowlingTeamID = wonByTeamID, loser
	} else {
		s.battingTeamID, s.bowlingTeamID = loser, wonByTeamID
	}

	s.step = StepInningsSetup
	return nil
}

// eligible checks a role selection against the confirmed XI, falling back
// to the full roster when the XI was lost across a reload (playing XIs are
// session-local and not persisted).
func (s *Session) eligible(teamID, playerID uint) bool {
	if ids := s.xi[teamID]; len(ids) == playingXISize {
		for _, id := range ids {
			if id == playerID {
				return true
			}
		}
		return false
	}
	return s.rosters[teamID][playerID]
}

// StartInnings assigns the opening striker, non-striker, and bowler and
// begins (or resumes) the innings. It creates the scorecard lazily on the
// first innings, attaches a fresh innings2 when the batting side changes,
// persists the scorecard, and marks the match Live. Persistence failures
// leave the session at the role-assignment step.
func (s *Session) StartInnings(strikerID, nonStrikerID, bowlerID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepInningsSetup {
		return ErrWrongStep
	}
	if strikerID == 0 || nonStrikerID == 0 || bowlerID == 0 {
		return ErrIncompleteSetup
	}
	if strikerID == nonStrikerID {
		return ErrDuplicateBatters
	}
	if !s.eligible(s.battingTeamID, strikerID) || !s.eligible(s.battingTeamID, nonStrikerID) {
		return ErrNotInXI
	}
	if !s.eligible(s.bowlingTeamID, bowlerID) {
		return ErrNotInXI
	}

	draft := cloneScorecard(s.card)
	switch {
	case draft == nil:
		draft = &scorecard.Scorecard{
			MatchID:  s.m.ID,
			Innings1: newInnings(s.battingTeamID, s.bowlingTeamID),
		}
	case draft.Innings1 != nil && draft.Innings2 == nil && draft.Innings1.BattingTeamID != s.battingTeamID:
		draft.Innings2 = newInnings(s.battingTeamID, s.bowlingTeamID)
	case draft.InningsFor(s.battingTeamID) != nil:
		// Resuming an innings already begun; nothing to initialize.
	default:
		return ErrSecondInningsSet
	}

	if err := s.gw.PutScorecard(draft); err != nil {
		return fmt.Errorf("%w: saving scorecard: %s", ErrPersistence, err)
	}
	updated, err := s.gw.UpdateMatch(s.m.ID, map[string]interface{}{
		"status":       match.StatusLive,
		"scorecard_id": draft.ID,
	})
	if err != nil {
		// The scorecard write stuck; keep it so a retry resumes the innings.
		s.card = draft
		return fmt.Errorf("%w: marking match live: %s", ErrPersistence, err)
	}
	if updated != nil {
		s.m = updated
	}

	s.card = draft
	s.strikerID = strikerID
	s.nonStrikerID = nonStrikerID
	s.bowlerID = bowlerID
	s.step = StepScoring
	return nil
}

func newInnings(battingTeamID, bowlingTeamID uint) *scorecard.Innings {
	return &scorecard.Innings{
		BattingTeamID: battingTeamID,
		BowlingTeamID: bowlingTeamID,
		Balls:         []scorecard.Ball{},
	}
}
