package player

import (
	"net/http"
	"strconv"

	"github.com/dugout-labs/pitchside/pkg/responses"
	"github.com/dugout-labs/pitchside/pkg/validator"
	"github.com/gin-gonic/gin"
)

// PlayerController handles player-related HTTP requests.
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new player controller.
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// CreatePlayerRequest defines the request payload for creating a player.
type CreatePlayerRequest struct {
	FirstName         string `json:"firstName" binding:"required,min=1,max=100"`
	LastName          string `json:"lastName" binding:"required,min=1,max=100"`
	Email             string `json:"email,omitempty" binding:"omitempty,email"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	TeamID            *uint  `json:"teamId,omitempty"` // optional initial team assignment
}

// UpdatePlayerRequest defines the request payload for updating a player.
type UpdatePlayerRequest struct {
	FirstName         *string `json:"firstName,omitempty" binding:"omitempty,min=1,max=100"`
	LastName          *string `json:"lastName,omitempty" binding:"omitempty,min=1,max=100"`
	Email             *string `json:"email,omitempty" binding:"omitempty,email"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}

// PlayerView augments the model with team membership ids.
type PlayerView struct {
	Player
	TeamIDs []uint `json:"teamIds"`
}

func (pc *PlayerController) view(p Player) (PlayerView, error) {
	ids, err := pc.repo.GetTeamIDs(p.ID)
	if err != nil {
		return PlayerView{}, err
	}
	if ids == nil {
		ids = []uint{}
	}
	return PlayerView{Player: p, TeamIDs: ids}, nil
}

// CreatePlayer godoc
// @Summary Create a player
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param player body CreatePlayerRequest true "Player"
// @Success 201 {object} responses.SuccessResponse
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid player payload", validator.ParseError(err))
		return
	}

	p := &Player{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		ProfilePictureURL: req.ProfilePictureURL,
	}
	if err := pc.repo.CreatePlayer(p); err != nil {
		responses.InternalServerError(c, "Failed to create player")
		return
	}
	if req.TeamID != nil {
		if err := pc.repo.AddToTeam(p.ID, *req.TeamID); err != nil {
			responses.InternalServerError(c, "Player created but team assignment failed")
			return
		}
	}

	view, err := pc.view(*p)
	if err != nil {
		responses.InternalServerError(c, "Failed to load player memberships")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created", view)
}

// GetPlayers godoc
// @Summary List players, optionally filtered by team
// @Tags players
// @Produce json
// @Param teamId query int false "Team ID"
// @Success 200 {object} responses.PaginatedResponse
// @Router /players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	if raw := c.Query("teamId"); raw != "" {
		teamID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			responses.BadRequest(c, "Invalid teamId filter")
			return
		}
		players, err := pc.repo.GetPlayersByTeam(uint(teamID))
		if err != nil {
			responses.InternalServerError(c, "Failed to fetch team roster")
			return
		}
		views := make([]PlayerView, 0, len(players))
		for _, p := range players {
			v, viewErr := pc.view(p)
			if viewErr != nil {
				responses.InternalServerError(c, "Failed to load player memberships")
				return
			}
			views = append(views, v)
		}
		responses.SendSuccess(c, http.StatusOK, "", views)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}

	players, total, err := pc.repo.GetPlayers(page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players")
		return
	}
	views := make([]PlayerView, 0, len(players))
	for _, p := range players {
		v, viewErr := pc.view(p)
		if viewErr != nil {
			responses.InternalServerError(c, "Failed to load player memberships")
			return
		}
		views = append(views, v)
	}
	responses.SendPaginated(c, http.StatusOK, "", views, total, page, limit)
}

// GetPlayerByID godoc
// @Summary Get a player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	view, err := pc.view(*p)
	if err != nil {
		responses.InternalServerError(c, "Failed to load player memberships")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", view)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags players
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid player payload", validator.ParseError(err))
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.ProfilePictureURL != nil {
		p.ProfilePictureURL = *req.ProfilePictureURL
	}

	if err := pc.repo.UpdatePlayer(p); err != nil {
		responses.InternalServerError(c, "Failed to update player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated", p)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Tags players
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	if err := pc.repo.DeletePlayer(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted", nil)
}

// AddPlayerToTeam godoc
// @Summary Add a player to a team roster
// @Tags players
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Param teamId path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{id}/teams/{teamId} [post]
func (pc *PlayerController) AddPlayerToTeam(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	teamID, err := strconv.ParseUint(c.Param("teamId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	if err := pc.repo.AddToTeam(uint(playerID), uint(teamID)); err != nil {
		responses.InternalServerError(c, "Failed to add player to team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player added to team", nil)
}

// RemovePlayerFromTeam godoc
// @Summary Remove a player from a team roster
// @Tags players
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Param teamId path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{id}/teams/{teamId} [delete]
func (pc *PlayerController) RemovePlayerFromTeam(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	teamID, err := strconv.ParseUint(c.Param("teamId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	if err := pc.repo.RemoveFromTeam(uint(playerID), uint(teamID)); err != nil {
		responses.InternalServerError(c, "Failed to remove player from team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player removed from team", nil)
}
