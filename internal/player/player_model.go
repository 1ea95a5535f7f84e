package player

import (
	"gorm.io/gorm"
)

// Player represents a cricketer. A player can belong to multiple teams across
// leagues, tracked through the player_teams join table.
type Player struct {
	gorm.Model
	FirstName         string `json:"firstName" gorm:"not null"`
	LastName          string `json:"lastName" gorm:"not null"`
	Email             string `json:"email,omitempty" gorm:"index"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}

// TeamMembership links a player to a team.
type TeamMembership struct {
	PlayerID uint `json:"playerId" gorm:"primaryKey"`
	TeamID   uint `json:"teamId" gorm:"primaryKey"`
}

// TableName names the join table explicitly.
func (TeamMembership) TableName() string {
	return "player_teams"
}
