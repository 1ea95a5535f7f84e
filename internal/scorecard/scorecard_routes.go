package scorecard

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterScorecardRoutes sets up the public scorecard routes.
func RegisterScorecardRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewScorecardRepository(db)
	controller := NewScorecardController(repo)

	router.GET("/scorecards/:matchId", controller.GetScorecardByMatch)
}
