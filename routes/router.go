package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dugout-labs/pitchside/config"
	"github.com/dugout-labs/pitchside/internal/league"
	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/player"
	"github.com/dugout-labs/pitchside/internal/scorecard"
	"github.com/dugout-labs/pitchside/internal/scoring"
	"github.com/dugout-labs/pitchside/internal/standings"
	"github.com/dugout-labs/pitchside/internal/team"
	"github.com/dugout-labs/pitchside/internal/user"
)

// SetupRoutes builds the gin engine and registers every module's routes
// under /api.
func SetupRoutes(appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "pitchside",
			"status":  "ok",
			"docs":    "/swagger/index.html",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := config.DB

	api := r.Group("/api")
	user.RegisterUserRoutes(api, db, appConfig)
	league.RegisterLeagueRoutes(api, db, appConfig)
	team.RegisterTeamRoutes(api, db, appConfig)
	player.RegisterPlayerRoutes(api, db, appConfig)
	match.RegisterMatchRoutes(api, db, appConfig, team.NewTeamRepository(db))
	scorecard.RegisterScorecardRoutes(api, db)
	standings.RegisterStandingsRoutes(api, db)
	scoring.RegisterScoringRoutes(api, db, appConfig)

	return r
}
