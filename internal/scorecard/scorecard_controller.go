package scorecard

import (
	"net/http"
	"strconv"

	"github.com/dugout-labs/pitchside/pkg/responses"
	"github.com/gin-gonic/gin"
)

// ScorecardController serves the public read-only scorecard view.
type ScorecardController struct {
	repo ScorecardRepository
}

// NewScorecardController creates a new scorecard controller.
func NewScorecardController(repo ScorecardRepository) *ScorecardController {
	return &ScorecardController{repo: repo}
}

// GetScorecardByMatch godoc
// @Summary Get the scorecard for a match
// @Description Returns null data when the match has no scorecard yet (no innings started).
// @Tags scorecards
// @Produce json
// @Param matchId path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /scorecards/{matchId} [get]
func (sc *ScorecardController) GetScorecardByMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("matchId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	card, err := sc.repo.GetByMatchID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch scorecard")
		return
	}
	if card == nil {
		responses.SendSuccess(c, http.StatusOK, "No innings started yet", nil)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", card)
}
