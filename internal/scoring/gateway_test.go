package scoring

import (
	"errors"
	"fmt"

	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/player"
	"github.com/dugout-labs/pitchside/internal/scorecard"
	"gorm.io/gorm"
)

const (
	teamA uint = 1
	teamB uint = 2
)

// fakeGateway is an in-memory Gateway with switchable write failures, used
// to exercise the two-phase persistence behavior without a database.
type fakeGateway struct {
	match   *match.Match
	card    *scorecard.Scorecard
	rosters map[uint][]player.Player

	failPut    bool
	failUpdate bool

	puts    int
	updates int
}

func newFakeGateway() *fakeGateway {
	g := &fakeGateway{
		match: &match.Match{
			Model:   gorm.Model{ID: 42},
			TeamAID: teamA,
			TeamBID: teamB,
			Overs:   15,
			Status:  match.StatusScheduled,
		},
		rosters: map[uint][]player.Player{},
	}
	for i := 0; i < 13; i++ {
		g.rosters[teamA] = append(g.rosters[teamA], player.Player{Model: gorm.Model{ID: uint(101 + i)}})
		g.rosters[teamB] = append(g.rosters[teamB], player.Player{Model: gorm.Model{ID: uint(201 + i)}})
	}
	return g
}

func (g *fakeGateway) GetMatch(matchID uint) (*match.Match, error) {
	if g.match == nil || g.match.ID != matchID {
		return nil, nil
	}
	cp := *g.match
	return &cp, nil
}

func (g *fakeGateway) UpdateMatch(matchID uint, fields map[string]interface{}) (*match.Match, error) {
	if g.failUpdate {
		return nil, errors.New("db down")
	}
	g.updates++
	if g.match == nil || g.match.ID != matchID {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "status":
			g.match.Status = v.(match.MatchStatus)
		case "toss_won_by_team_id":
			won := v.(uint)
			g.match.TossWonByTeamID = &won
		case "chose_to":
			d := v.(match.TossDecision)
			g.match.ChoseTo = &d
		case "result":
			g.match.Result = v.(string)
		case "scorecard_id":
			sid := v.(uint)
			g.match.ScorecardID = &sid
		default:
			return nil, fmt.Errorf("unexpected update field %q", k)
		}
	}
	cp := *g.match
	return &cp, nil
}

func (g *fakeGateway) GetScorecard(matchID uint) (*scorecard.Scorecard, error) {
	if g.card == nil || g.card.MatchID != matchID {
		return nil, nil
	}
	return cloneScorecard(g.card), nil
}

func (g *fakeGateway) PutScorecard(sc *scorecard.Scorecard) error {
	if g.failPut {
		return errors.New("db down")
	}
	g.puts++
	stored := cloneScorecard(sc)
	if stored.ID == 0 {
		stored.ID = 7
	}
	g.card = stored
	sc.ID = stored.ID
	return nil
}

func (g *fakeGateway) GetTeamRoster(teamID uint) ([]player.Player, error) {
	return g.rosters[teamID], nil
}

// xiOf returns the first eleven roster player ids for a team.
func (g *fakeGateway) xiOf(teamID uint) []uint {
	ids := make([]uint, 0, playingXISize)
	for _, p := range g.rosters[teamID][:playingXISize] {
		ids = append(ids, p.ID)
	}
	return ids
}

// startedSession fast-forwards a fresh session to the scoring step: full
// XIs, team A bats first, openers 101/102, bowler 201.
func startedSession(g *fakeGateway) (*Session, error) {
	s, err := NewSession(g, 42)
	if err != nil {
		return nil, err
	}
	for _, teamID := range []uint{teamA, teamB} {
		for _, id := range g.xiOf(teamID) {
			if err := s.TogglePlayer(teamID, id); err != nil {
				return nil, err
			}
		}
	}
	if err := s.ConfirmPlayingXI(); err != nil {
		return nil, err
	}
	if err := s.ConfirmToss(teamA, match.DecisionBat); err != nil {
		return nil, err
	}
	if err := s.StartInnings(101, 102, 201); err != nil {
		return nil, err
	}
	return s, nil
}
