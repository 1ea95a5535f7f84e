package team

import (
	"github.com/dugout-labs/pitchside/config"
	mw "github.com/dugout-labs/pitchside/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTeamRoutes sets up all team-related routes.
func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewTeamRepository(db)
	controller := NewTeamController(repo)

	teams := router.Group("/teams")
	{
		teams.GET("", controller.GetTeams)
		teams.GET("/:id", controller.GetTeamByID)
	}

	adminTeams := router.Group("/teams")
	adminTeams.Use(mw.AuthMiddleware(appConfig.JWT.Secret), mw.AdminMiddleware())
	{
		adminTeams.POST("", controller.CreateTeam)
		adminTeams.PUT("/:id", controller.UpdateTeam)
		adminTeams.DELETE("/:id", controller.DeleteTeam)
	}
}
