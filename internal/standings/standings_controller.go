package standings

import (
	"net/http"
	"strconv"

	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/scorecard"
	"github.com/dugout-labs/pitchside/internal/team"
	"github.com/dugout-labs/pitchside/pkg/responses"
	"github.com/gin-gonic/gin"
)

// Large enough to cover any realistic league in one read.
const fetchLimit = 1000

// StandingsController serves the computed league table.
type StandingsController struct {
	teamRepo      team.TeamRepository
	matchRepo     match.MatchRepository
	scorecardRepo scorecard.ScorecardRepository
}

// NewStandingsController creates a new standings controller.
func NewStandingsController(teamRepo team.TeamRepository, matchRepo match.MatchRepository, scorecardRepo scorecard.ScorecardRepository) *StandingsController {
	return &StandingsController{
		teamRepo:      teamRepo,
		matchRepo:     matchRepo,
		scorecardRepo: scorecardRepo,
	}
}

// GetStandings godoc
// @Summary Get the league table
// @Description Computed from finished matches: 2 points for a win, 1 each for a tie or no result.
// @Tags standings
// @Produce json
// @Param leagueId query int true "League ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /standings [get]
func (sc *StandingsController) GetStandings(c *gin.Context) {
	leagueID, err := strconv.ParseUint(c.Query("leagueId"), 10, 32)
	if err != nil || leagueID == 0 {
		responses.BadRequest(c, "A valid leagueId query parameter is required")
		return
	}

	teams, _, err := sc.teamRepo.GetTeams(uint(leagueID), 1, fetchLimit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch teams")
		return
	}
	matches, _, err := sc.matchRepo.GetMatches(uint(leagueID), "", 1, fetchLimit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}

	cards := make(map[uint]*scorecard.Scorecard)
	for _, m := range matches {
		if m.Status != match.StatusCompleted {
			continue
		}
		card, cardErr := sc.scorecardRepo.GetByMatchID(m.ID)
		if cardErr != nil {
			responses.InternalServerError(c, "Failed to fetch scorecards")
			return
		}
		cards[m.ID] = card
	}

	responses.SendSuccess(c, http.StatusOK, "", Compute(teams, matches, cards))
}
