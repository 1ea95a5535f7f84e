package league

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dugout-labs/pitchside/pkg/responses"
	"github.com/dugout-labs/pitchside/pkg/validator"
	"github.com/gin-gonic/gin"
)

// LeagueController handles league-related HTTP requests.
type LeagueController struct {
	repo LeagueRepository
}

// NewLeagueController creates a new league controller.
func NewLeagueController(repo LeagueRepository) *LeagueController {
	return &LeagueController{repo: repo}
}

// CreateLeagueRequest defines the request payload for creating a league.
type CreateLeagueRequest struct {
	Name      string    `json:"name" binding:"required,min=3,max=200"`
	Location  string    `json:"location" binding:"max=200"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// UpdateLeagueRequest defines the request payload for updating a league.
type UpdateLeagueRequest struct {
	Name      *string    `json:"name,omitempty" binding:"omitempty,min=3,max=200"`
	Location  *string    `json:"location,omitempty" binding:"omitempty,max=200"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// LeagueView augments the model with the derived team count.
type LeagueView struct {
	League
	NumberOfTeams int64 `json:"numberOfTeams"`
}

// CreateLeague godoc
// @Summary Create a league
// @Tags leagues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param league body CreateLeagueRequest true "League"
// @Success 201 {object} responses.SuccessResponse
// @Router /leagues [post]
func (lc *LeagueController) CreateLeague(c *gin.Context) {
	var req CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid league payload", validator.ParseError(err))
		return
	}
	if !req.EndDate.After(req.StartDate) {
		responses.BadRequest(c, "endDate must be after startDate")
		return
	}

	l := &League{
		Name:      req.Name,
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := lc.repo.CreateLeague(l); err != nil {
		responses.InternalServerError(c, "Failed to create league")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "League created", l)
}

// GetLeagues godoc
// @Summary List leagues
// @Tags leagues
// @Produce json
// @Success 200 {object} responses.PaginatedResponse
// @Router /leagues [get]
func (lc *LeagueController) GetLeagues(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}

	leagues, total, err := lc.repo.GetLeagues(page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch leagues")
		return
	}

	views := make([]LeagueView, 0, len(leagues))
	for _, l := range leagues {
		count, countErr := lc.repo.CountTeams(l.ID)
		if countErr != nil {
			responses.InternalServerError(c, "Failed to count teams")
			return
		}
		views = append(views, LeagueView{League: l, NumberOfTeams: count})
	}

	responses.SendPaginated(c, http.StatusOK, "", views, total, page, limit)
}

// GetLeagueByID godoc
// @Summary Get a league
// @Tags leagues
// @Produce json
// @Param id path int true "League ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /leagues/{id} [get]
func (lc *LeagueController) GetLeagueByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid league ID")
		return
	}

	l, err := lc.repo.GetLeagueByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch league")
		return
	}
	if l == nil {
		responses.NotFound(c, "League")
		return
	}

	count, err := lc.repo.CountTeams(l.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to count teams")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", LeagueView{League: *l, NumberOfTeams: count})
}

// UpdateLeague godoc
// @Summary Update a league
// @Tags leagues
// @Security BearerAuth
// @Param id path int true "League ID"
// @Param league body UpdateLeagueRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse
// @Router /leagues/{id} [put]
func (lc *LeagueController) UpdateLeague(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid league ID")
		return
	}

	var req UpdateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid league payload", validator.ParseError(err))
		return
	}

	l, err := lc.repo.GetLeagueByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch league")
		return
	}
	if l == nil {
		responses.NotFound(c, "League")
		return
	}

	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Location != nil {
		l.Location = *req.Location
	}
	if req.StartDate != nil {
		l.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		l.EndDate = *req.EndDate
	}
	if !l.EndDate.After(l.StartDate) {
		responses.BadRequest(c, "endDate must be after startDate")
		return
	}

	if err := lc.repo.UpdateLeague(l); err != nil {
		responses.InternalServerError(c, "Failed to update league")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "League updated", l)
}

// DeleteLeague godoc
// @Summary Delete a league
// @Tags leagues
// @Security BearerAuth
// @Param id path int true "League ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /leagues/{id} [delete]
func (lc *LeagueController) DeleteLeague(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid league ID")
		return
	}

	if err := lc.repo.DeleteLeague(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete league")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "League deleted", nil)
}
