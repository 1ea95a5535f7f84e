package league

import (
	"github.com/dugout-labs/pitchside/config"
	mw "github.com/dugout-labs/pitchside/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterLeagueRoutes sets up all league-related routes.
func RegisterLeagueRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewLeagueRepository(db)
	controller := NewLeagueController(repo)

	leagues := router.Group("/leagues")
	{
		leagues.GET("", controller.GetLeagues)
		leagues.GET("/:id", controller.GetLeagueByID)
	}

	adminLeagues := router.Group("/leagues")
	adminLeagues.Use(mw.AuthMiddleware(appConfig.JWT.Secret), mw.AdminMiddleware())
	{
		adminLeagues.POST("", controller.CreateLeague)
		adminLeagues.PUT("/:id", controller.UpdateLeague)
		adminLeagues.DELETE("/:id", controller.DeleteLeague)
	}
}
