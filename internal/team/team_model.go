package team

import (
	"gorm.io/gorm"
)

// Team represents a cricket team registered in a league.
type Team struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null;uniqueIndex:idx_team_name_league"`
	LeagueID  uint   `json:"leagueId" gorm:"index;not null;uniqueIndex:idx_team_name_league"`
	CaptainID *uint  `json:"captainId,omitempty" gorm:"index"`
	LogoURL   string `json:"logoUrl,omitempty"`
}
