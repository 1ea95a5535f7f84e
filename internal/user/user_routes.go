package user

import (
	"github.com/dugout-labs/pitchside/config"
	"github.com/dugout-labs/pitchside/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterUserRoutes sets up authentication routes.
func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewUserRepository(db)
	controller := NewUserController(repo, appConfig)

	router.POST("/login", controller.Login)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret))
	{
		protected.GET("/me", controller.GetProfile)
	}
}
