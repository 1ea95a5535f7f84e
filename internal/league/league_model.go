package league

import (
	"time"

	"gorm.io/gorm"
)

// League represents a cricket league/season.
type League struct {
	gorm.Model
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"startDate" gorm:"not null"`
	EndDate   time.Time `json:"endDate" gorm:"not null"`
}
