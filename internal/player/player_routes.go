package player

import (
	"github.com/dugout-labs/pitchside/config"
	mw "github.com/dugout-labs/pitchside/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPlayerRoutes sets up all player-related routes.
func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewPlayerRepository(db)
	controller := NewPlayerController(repo)

	players := router.Group("/players")
	{
		players.GET("", controller.GetPlayers)
		players.GET("/:id", controller.GetPlayerByID)
	}

	adminPlayers := router.Group("/players")
	adminPlayers.Use(mw.AuthMiddleware(appConfig.JWT.Secret), mw.AdminMiddleware())
	{
		adminPlayers.POST("", controller.CreatePlayer)
		adminPlayers.PUT("/:id", controller.UpdatePlayer)
		adminPlayers.DELETE("/:id", controller.DeletePlayer)
		adminPlayers.POST("/:id/teams/:teamId", controller.AddPlayerToTeam)
		adminPlayers.DELETE("/:id/teams/:teamId", controller.RemovePlayerFromTeam)
	}
}
