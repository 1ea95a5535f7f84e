package team

import (
	"net/http"
	"strconv"

	"github.com/dugout-labs/pitchside/pkg/responses"
	"github.com/dugout-labs/pitchside/pkg/validator"
	"github.com/gin-gonic/gin"
)

// TeamController handles team-related HTTP requests.
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller.
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// CreateTeamRequest defines the request payload for creating a team.
type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=200"`
	LeagueID  uint   `json:"leagueId" binding:"required"`
	CaptainID *uint  `json:"captainId,omitempty"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

// UpdateTeamRequest defines the request payload for updating a team.
type UpdateTeamRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=2,max=200"`
	CaptainID *uint   `json:"captainId,omitempty"`
	LogoURL   *string `json:"logoUrl,omitempty"`
}

// CreateTeam godoc
// @Summary Create a team in a league
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team body CreateTeamRequest true "Team"
// @Success 201 {object} responses.SuccessResponse
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid team payload", validator.ParseError(err))
		return
	}

	t := &Team{
		Name:      req.Name,
		LeagueID:  req.LeagueID,
		CaptainID: req.CaptainID,
		LogoURL:   req.LogoURL,
	}
	if err := tc.repo.CreateTeam(t); err != nil {
		responses.Conflict(c, "Failed to create team (duplicate name in league?)")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created", t)
}

// GetTeams godoc
// @Summary List teams, optionally filtered by league
// @Tags teams
// @Produce json
// @Param leagueId query int false "League ID"
// @Success 200 {object} responses.PaginatedResponse
// @Router /teams [get]
func (tc *TeamController) GetTeams(c *gin.Context) {
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

	teams, total, err := tc.repo.GetTeams(leagueID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch teams")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", teams, total, page, limit)
}

// GetTeamByID godoc
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", t)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags teams
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse
// @Router /teams/{id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid team payload", validator.ParseError(err))
		return
	}

	t, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.CaptainID != nil {
		t.CaptainID = req.CaptainID
	}
	if req.LogoURL != nil {
		t.LogoURL = *req.LogoURL
	}

	if err := tc.repo.UpdateTeam(t); err != nil {
		responses.InternalServerError(c, "Failed to update team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated", t)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Tags teams
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /teams/{id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	if err := tc.repo.DeleteTeam(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted", nil)
}
