package standings

import (
	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/scorecard"
	"github.com/dugout-labs/pitchside/internal/team"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterStandingsRoutes sets up the public standings route.
func RegisterStandingsRoutes(router *gin.RouterGroup, db *gorm.DB) {
	controller := NewStandingsController(
		team.NewTeamRepository(db),
		match.NewGormMatchRepository(db),
		scorecard.NewScorecardRepository(db),
	)

	router.GET("/standings", controller.GetStandings)
}
