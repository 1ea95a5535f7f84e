package scoring

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/pkg/responses"
	"github.com/dugout-labs/pitchside/pkg/validator"
	"github.com/gin-gonic/gin"
)

// ScoringController exposes the live-scoring session over HTTP. Every
// handler resolves the match's session through the manager, so a request
// after a restart transparently resumes from persisted state.
type ScoringController struct {
	manager *Manager
}

// NewScoringController creates a new scoring controller.
func NewScoringController(manager *Manager) *ScoringController {
	return &ScoringController{manager: manager}
}

// TogglePlayerRequest selects or deselects one player for a side's XI.
type TogglePlayerRequest struct {
	TeamID   uint `json:"teamId" binding:"required"`
	PlayerID uint `json:"playerId" binding:"required"`
}

// TossRequest records the toss outcome.
type TossRequest struct {
	WonByTeamID uint               `json:"wonByTeamId" binding:"required"`
	ChoseTo     match.TossDecision `json:"choseTo" binding:"required,oneof=Bat Bowl"`
}

// StartInningsRequest assigns the opening roles for an innings.
type StartInningsRequest struct {
	StrikerID    uint `json:"strikerId" binding:"required"`
	NonStrikerID uint `json:"nonStrikerId" binding:"required"`
	BowlerID     uint `json:"bowlerId" binding:"required"`
}

// ConcludeMatchRequest optionally carries a result line; when omitted one
// is derived from the innings totals.
type ConcludeMatchRequest struct {
	Result string `json:"result,omitempty"`
}

func (sc *ScoringController) session(c *gin.Context) (*Session, bool) {
	matchID, err := strconv.ParseUint(c.Param("matchId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return nil, false
	}
	s, err := sc.manager.Session(uint(matchID))
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			responses.NotFound(c, "Match")
		} else {
			responses.InternalServerError(c, "Failed to load scoring session")
		}
		return nil, false
	}
	return s, true
}

// sendScoringError maps scoring-core errors onto the response envelope.
func sendScoringError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrWrongStep),
		errors.Is(err, ErrInningsClosed),
		errors.Is(err, ErrSecondInningsSet),
		errors.Is(err, ErrNoActiveInnings):
		responses.Conflict(c, err.Error())
	case errors.Is(err, ErrPersistence):
		responses.InternalServerError(c, err.Error())
	default:
		responses.BadRequest(c, err.Error())
	}
}

// GetState godoc
// @Summary Get the scoring session state for a match
// @Description Resumes the session from persisted state when none is live.
// @Tags scoring
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /scoring/{matchId}/state [get]
func (sc *ScoringController) GetState(c *gin.Context) {
	s, ok := sc.session(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", s.State())
}

// TogglePlayer godoc
// @Summary Toggle a player in or out of a team's playing XI
// @Tags scoring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Param selection body TogglePlayerRequest true "Selection"
// @Success 200 {object} responses.SuccessResponse
// @Router /scoring/{matchId}/playing-xi/toggle [post]
func (sc *ScoringController) TogglePlayer(c *gin.Context) {
	s, ok := sc.session(c)
	if !ok {
		return
	}
	var req TogglePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid selection payload", validator.ParseError(err))
		return
	}
	if err := s.TogglePlayer(req.TeamID, req.PlayerID); err != nil {
		sendScoringError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", s.State())
}

// ConfirmPlayingXI godoc
// @Summary Confirm both playing XIs and advance to the toss
// @Tags scoring
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /scoring/{matchId}/playing-xi/confirm [post]
func (sc *ScoringController) ConfirmPlayingXI(c *gin.Context) {
	s, ok := sc.session(c)
	if !ok {
		return
	}
	if err := s.ConfirmPlayingXI(); err != nil {
		sendScoringError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Playing XI confirmed", s.State())
}

// ConfirmToss godoc
// @Summary Record the toss outcome
// @Tags scoring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Param toss body TossRequest true "Toss outcome"
// @Success 200 {object} responses.SuccessResponse
// @Router /scoring/{matchId}/toss [post]
func (sc *ScoringController) ConfirmToss(c *gin.Context) {
	s, ok := sc.session(c)
	if !ok {
		return
	}
	var req TossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid toss payload", validator.ParseError(err))
		return
	}
	if err := s.ConfirmToss(req.WonByTeamID, req.ChoseTo); err != nil {
		sendScoringError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Toss recorded", s.State())
}

// StartInnings godoc
// @Summary Assign opening roles and start (or resume) the innings
// @Tags scoring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Param roles body StartInningsRequest true "Opening roles"
// @Success 200 {object} responses.SuccessResponse
// @Router /scoring/{matchId}/innings/start [post]
func (sc *ScoringController) StartInnings(c *gin.Context) {
	s, ok := sc.session(c)
	if !ok {
		return
	}
	var req StartInningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid innings payload", validator.ParseError(err))
		return
	}
	if err := s.StartInnings(req.StrikerID, req.NonStrikerID, req.BowlerID); err != nil {
		sendScoringError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Innings started", s.State())
}

// RecordBall godoc
// @Summary Record one delivery
// @Description On a persistence failure the ball is kept in the session and
// @Description reported in unconfirmedBalls; the next successful write flushes it.
// @Tags scoring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Param ball body BallInput true "Delivery"
// @Success 200 {object} responses.SuccessResponse
// @Router /scoring/{matchId}/balls [post]
func (sc *ScoringController) RecordBall(c *gin.Context) {
	s, ok := sc.session(c)
	if !ok {
		return
	}
	var in BallInput
	if err := c.ShouldBindJSON(&in); err != nil {
		responses.SendValidationError(c, "Invalid ball payload", validator.ParseError(err))
		return
	}
	state, err := s.RecordBall(in)
	if err != nil {
		// On a persistence failure the ball is already applied in memory and
		// counted in unconfirmedBalls; the error tells the scorer to expect a
		// flush on the next successful write.
		sendScoringError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", state)
}

// RecentBalls godoc
// @Summary List the most recent deliveries of the active innings
// @Tags scoring
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Param limit query int false "Number of deliveries (default 10)"
// @Success 200 {object} responses.SuccessResponse
// @Router /scoring/{matchId}/balls/recent [get]
func (sc *ScoringController) RecentBalls(c *gin.Context) {
	s, ok := sc.session(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	responses.SendSuccess(c, http.StatusOK, "", RecentBalls(s.State().Innings, limit))
}

// ConcludeInnings godoc
// @Summary Close the active innings and set up the next one
// @Tags scoring
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /scoring/{matchId}/innings/conclude [post]
func (sc *ScoringController) ConcludeInnings(c *gin.Context) {
	s, ok := sc.session(c)
	if !ok {
		return
	}
	if err := s.ConcludeInnings(); err != nil {
		sendScoringError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Innings concluded", s.State())
}

// ConcludeMatch godoc
// @Summary Conclude the match with a result
// @Tags scoring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchId path int true "Match ID"
// @Param result body ConcludeMatchRequest false "Result line"
// @Success 200 {object} responses.SuccessResponse
// @Router /scoring/{matchId}/conclude [post]
func (sc *ScoringController) ConcludeMatch(c *gin.Context) {
	s, ok := sc.session(c)
	if !ok {
		return
	}
	var req ConcludeMatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.SendValidationError(c, "Invalid result payload", validator.ParseError(err))
			return
		}
	}
	if err := s.ConcludeMatch(req.Result); err != nil {
		sendScoringError(c, err)
		return
	}
	sc.manager.Evict(s.State().MatchID)
	responses.SendSuccess(c, http.StatusOK, "Match concluded", nil)
}
