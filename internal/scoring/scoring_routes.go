package scoring

import (
	"github.com/dugout-labs/pitchside/config"
	"github.com/dugout-labs/pitchside/internal/match"
	mw "github.com/dugout-labs/pitchside/internal/middleware"
	"github.com/dugout-labs/pitchside/internal/player"
	"github.com/dugout-labs/pitchside/internal/scorecard"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterScoringRoutes sets up the live-scoring routes. All of them are
// restricted to scorers and admins.
func RegisterScoringRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) *Manager {
	gw := NewGormGateway(
		match.NewGormMatchRepository(db),
		scorecard.NewScorecardRepository(db),
		player.NewPlayerRepository(db),
	)
	manager := NewManager(gw)
	controller := NewScoringController(manager)

	scoring := router.Group("/scoring/:matchId")
	scoring.Use(mw.AuthMiddleware(appConfig.JWT.Secret), mw.ScorerOrAdminMiddleware())
	{
		scoring.GET("/state", controller.GetState)
		scoring.POST("/playing-xi/toggle", controller.TogglePlayer)
		scoring.POST("/playing-xi/confirm", controller.ConfirmPlayingXI)
		scoring.POST("/toss", controller.ConfirmToss)
		scoring.POST("/innings/start", controller.StartInnings)
		scoring.POST("/innings/conclude", controller.ConcludeInnings)
		scoring.POST("/balls", controller.RecordBall)
		scoring.GET("/balls/recent", controller.RecentBalls)
		scoring.POST("/conclude", controller.ConcludeMatch)
	}

	return manager
}
