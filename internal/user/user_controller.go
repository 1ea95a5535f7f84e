package user

import (
	"net/http"

	"github.com/dugout-labs/pitchside/config"
	"github.com/dugout-labs/pitchside/internal/middleware"
	"github.com/dugout-labs/pitchside/pkg/responses"
	"github.com/dugout-labs/pitchside/pkg/token"
	"github.com/dugout-labs/pitchside/utils"
	"github.com/gin-gonic/gin"
)

// UserController handles authentication requests.
type UserController struct {
	repo      UserRepository
	appConfig *config.Config
}

// NewUserController creates a new user controller.
func NewUserController(repo UserRepository, appConfig *config.Config) *UserController {
	return &UserController{repo: repo, appConfig: appConfig}
}

// LoginRequest is the credential payload for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the user's public fields.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login godoc
// @Summary Authenticate with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} responses.SuccessResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Username and password are required")
		return
	}

	u, err := uc.repo.GetUserByUsername(req.Username)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up user")
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	signed, err := token.GenerateJWT(u.ID, u.Role, uc.appConfig.JWT.Secret, uc.appConfig.JWT.ExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue token")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Login successful", LoginResponse{Token: signed, User: *u})
}

// GetProfile godoc
// @Summary Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /me [get]
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	u, err := uc.repo.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load user")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", u)
}
