package match

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dugout-labs/pitchside/config"
	"github.com/dugout-labs/pitchside/internal/team"
	"github.com/dugout-labs/pitchside/pkg/responses"
	"github.com/dugout-labs/pitchside/pkg/validator"
	"github.com/gin-gonic/gin"
)

// MatchController handles match-related HTTP requests.
type MatchController struct {
	repo      MatchRepository
	teamRepo  team.TeamRepository
	appConfig *config.Config
}

// NewMatchController creates a new match controller.
func NewMatchController(repo MatchRepository, teamRepo team.TeamRepository, appConfig *config.Config) *MatchController {
	return &MatchController{
		repo:      repo,
		teamRepo:  teamRepo,
		appConfig: appConfig,
	}
}

// CreateMatchRequest defines the request payload for scheduling a match.
type CreateMatchRequest struct {
	LeagueID uint      `json:"leagueId" binding:"required"`
	TeamAID  uint      `json:"teamAId" binding:"required"`
	TeamBID  uint      `json:"teamBId" binding:"required"`
	DateTime time.Time `json:"dateTime" binding:"required"`
	Venue    string    `json:"venue" binding:"required"`
	Overs    int       `json:"overs" binding:"omitempty,min=1,max=50"`
	Umpire1  string    `json:"umpire1,omitempty"`
	Umpire2  string    `json:"umpire2,omitempty"`
}

// UpdateMatchRequest defines the request payload for updating a match.
// Toss fields and scorecard linkage are owned by the scoring flow but
// exposed here for compatibility with the generic match update endpoint.
type UpdateMatchRequest struct {
	DateTime        *time.Time    `json:"dateTime,omitempty"`
	Venue           *string       `json:"venue,omitempty"`
	Overs           *int          `json:"overs,omitempty" binding:"omitempty,min=1,max=50"`
	Status          *MatchStatus  `json:"status,omitempty" binding:"omitempty,oneof=Scheduled Live Completed Abandoned Postponed"`
	TossWonByTeamID *uint         `json:"tossWonByTeamId,omitempty"`
	ChoseTo         *TossDecision `json:"choseTo,omitempty" binding:"omitempty,oneof=Bat Bowl"`
	Umpire1         *string       `json:"umpire1,omitempty"`
	Umpire2         *string       `json:"umpire2,omitempty"`
	Result          *string       `json:"result,omitempty"`
}

// CreateMatch godoc
// @Summary Schedule a match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param match body CreateMatchRequest true "Match"
// @Success 201 {object} responses.SuccessResponse
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid match payload", validator.ParseError(err))
		return
	}
	if req.TeamAID == req.TeamBID {
		responses.BadRequest(c, "A match needs two distinct teams")
		return
	}

	for _, teamID := range []uint{req.TeamAID, req.TeamBID} {
		t, err := mc.teamRepo.GetTeamByID(teamID)
		if err != nil {
			responses.InternalServerError(c, "Failed to verify team")
			return
		}
		if t == nil {
			responses.NotFound(c, "Team")
			return
		}
		if t.LeagueID != req.LeagueID {
			responses.BadRequest(c, "Both teams must belong to the match's league")
			return
		}
	}

	overs := req.Overs
	if overs == 0 {
		overs = mc.appConfig.Cricket.DefaultOvers
	}

	m := &Match{
		LeagueID: req.LeagueID,
		TeamAID:  req.TeamAID,
		TeamBID:  req.TeamBID,
		DateTime: req.DateTime,
		Venue:    req.Venue,
		Overs:    overs,
		Status:   StatusScheduled,
		Umpire1:  req.Umpire1,
		Umpire2:  req.Umpire2,
	}
	if err := mc.repo.CreateMatch(m); err != nil {
		responses.InternalServerError(c, "Failed to create match")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match scheduled", m)
}

// GetMatches godoc
// @Summary List matches, optionally filtered by league or status
// @Tags matches
// @Produce json
// @Param leagueId query int false "League ID"
// @Param status query string false "Match status"
// @Success 200 {object} responses.PaginatedResponse
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}

	var leagueID uint
	if raw := c.Query("leagueId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			responses.BadRequest(c, "Invalid leagueId filter")
			return
		}
		leagueID = uint(parsed)
	}
	status := MatchStatus(c.Query("status"))

	matches, total, err := mc.repo.GetMatches(leagueID, status, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", matches, total, page, limit)
}

// GetMatchByID godoc
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", m)
}

// UpdateMatch godoc
// @Summary Update a match
// @Tags matches
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id} [put]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid match payload", validator.ParseError(err))
		return
	}

	fields := map[string]interface{}{}
	if req.DateTime != nil {
		fields["date_time"] = *req.DateTime
	}
	if req.Venue != nil {
		fields["venue"] = *req.Venue
	}
	if req.Overs != nil {
		fields["overs"] = *req.Overs
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.TossWonByTeamID != nil {
		fields["toss_won_by_team_id"] = *req.TossWonByTeamID
	}
	if req.ChoseTo != nil {
		fields["chose_to"] = *req.ChoseTo
	}
	if req.Umpire1 != nil {
		fields["umpire1"] = *req.Umpire1
	}
	if req.Umpire2 != nil {
		fields["umpire2"] = *req.Umpire2
	}
	if req.Result != nil {
		fields["result"] = *req.Result
	}
	if len(fields) == 0 {
		responses.BadRequest(c, "No update fields provided")
		return
	}

	m, err := mc.repo.UpdateMatchFields(uint(id), fields)
	if err != nil {
		responses.InternalServerError(c, "Failed to update match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated", m)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Tags matches
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	if err := mc.repo.DeleteMatch(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted", nil)
}
