package scoring

import (
	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/player"
	"github.com/dugout-labs/pitchside/internal/scorecard"
)

// Gateway is the persistence collaborator the scoring core talks to. The
// in-memory session state is a cache over it: everything a session needs to
// resume must be reconstructable from gateway reads alone.
type Gateway interface {
	// GetMatch returns (nil, nil) when the match does not exist.
	GetMatch(matchID uint) (*match.Match, error)
	// UpdateMatch applies a partial update (status, toss fields, result,
	// scorecard back-reference) and returns the updated match.
	UpdateMatch(matchID uint, fields map[string]interface{}) (*match.Match, error)
	// GetScorecard returns (nil, nil) when no innings has started yet.
	GetScorecard(matchID uint) (*scorecard.Scorecard, error)
	// PutScorecard upserts the full scorecard (no partial writes).
	PutScorecard(sc *scorecard.Scorecard) error
	// GetTeamRoster returns the players eligible for a team's playing XI.
	GetTeamRoster(teamID uint) ([]player.Player, error)
}

type gormGateway struct {
	matches    match.MatchRepository
	scorecards scorecard.ScorecardRepository
	players    player.PlayerRepository
}

// NewGormGateway builds a Gateway backed by the GORM repositories.
func NewGormGateway(matches match.MatchRepository, scorecards scorecard.ScorecardRepository, players player.PlayerRepository) Gateway {
	return &gormGateway{matches: matches, scorecards: scorecards, players: players}
}

func (g *gormGateway) GetMatch(matchID uint) (*match.Match, error) {
	return g.matches.GetMatchByID(matchID)
}

func (g *gormGateway) UpdateMatch(matchID uint, fields map[string]interface{}) (*match.Match, error) {
	return g.matches.UpdateMatchFields(matchID, fields)
}

func (g *gormGateway) GetScorecard(matchID uint) (*scorecard.Scorecard, error) {
	return g.scorecards.GetByMatchID(matchID)
}

func (g *gormGateway) PutScorecard(sc *scorecard.Scorecard) error {
	return g.scorecards.Upsert(sc)
}

func (g *gormGateway) GetTeamRoster(teamID uint) ([]player.Player, error) {
	return g.players.GetPlayersByTeam(teamID)
}
