package main

import (
	"log"

	"github.com/dugout-labs/pitchside/config"
	"github.com/dugout-labs/pitchside/internal/league"
	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/player"
	"github.com/dugout-labs/pitchside/internal/scorecard"
	"github.com/dugout-labs/pitchside/internal/team"
	"github.com/dugout-labs/pitchside/internal/user"
	"github.com/dugout-labs/pitchside/routes"
	"github.com/dugout-labs/pitchside/utils"
)

// @title Pitchside REST API
// @version 1.0
// @description League administration and live cricket scoring backend.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&league.League{},
		&team.Team{},
		&player.Player{}, &player.TeamMembership{},
		&match.Match{},
		&scorecard.Scorecard{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := seedAdmin(); err != nil {
		log.Fatalf("Admin seeding failed: %v", err)
	}

	r := routes.SetupRoutes(cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// seedAdmin makes sure the default admin login exists on a fresh database.
func seedAdmin() error {
	hashed, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}
	return user.NewUserRepository(config.DB).EnsureSeedAdmin(hashed)
}
