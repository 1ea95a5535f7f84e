package match

import (
	"time"

	"gorm.io/gorm"
)

// MatchStatus tracks a match through its lifecycle.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "Scheduled"
	StatusLive      MatchStatus = "Live"
	StatusCompleted MatchStatus = "Completed"
	StatusAbandoned MatchStatus = "Abandoned"
	StatusPostponed MatchStatus = "Postponed"
)

// TossDecision is what the toss winner chose to do.
type TossDecision string

const (
	DecisionBat  TossDecision = "Bat"
	DecisionBowl TossDecision = "Bowl"
)

// Match represents a scheduled game between two teams of a league.
// The live-scoring core transitions Status to Live when the first innings
// starts and writes the toss fields and the scorecard back-reference.
type Match struct {
	gorm.Model
	LeagueID uint      `json:"leagueId" gorm:"index;not null"`
	TeamAID  uint      `json:"teamAId" gorm:"index;not null"`
	TeamBID  uint      `json:"teamBId" gorm:"index;not null"`
	DateTime time.Time `json:"dateTime" gorm:"index;not null"`
	Venue    string    `json:"venue"`
	Overs    int       `json:"overs" gorm:"not null;default:15"`

	Status          MatchStatus   `json:"status" gorm:"index;default:'Scheduled'"`
	TossWonByTeamID *uint         `json:"tossWonByTeamId,omitempty" gorm:"index"`
	ChoseTo         *TossDecision `json:"choseTo,omitempty"`

	Umpire1 string `json:"umpire1,omitempty"`
	Umpire2 string `json:"umpire2,omitempty"`

	Result      string `json:"result,omitempty"` // e.g. "Team A won by 5 wickets"
	ScorecardID *uint  `json:"scorecardId,omitempty" gorm:"index"`
}
