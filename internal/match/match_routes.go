package match

import (
	"github.com/dugout-labs/pitchside/config"
	mw "github.com/dugout-labs/pitchside/internal/middleware"
	"github.com/dugout-labs/pitchside/internal/team"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterMatchRoutes sets up all match-related routes.
func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, teamRepo team.TeamRepository) {
	repo := NewGormMatchRepository(db)
	controller := NewMatchController(repo, teamRepo, appConfig)

	matches := router.Group("/matches")
	{
		matches.GET("", controller.GetMatches)
		matches.GET("/:id", controller.GetMatchByID)
	}

	adminMatches := router.Group("/matches")
	adminMatches.Use(mw.AuthMiddleware(appConfig.JWT.Secret), mw.AdminMiddleware())
	{
		adminMatches.POST("", controller.CreateMatch)
		adminMatches.PUT("/:id", controller.UpdateMatch)
		adminMatches.DELETE("/:id", controller.DeleteMatch)
	}
}
