package user

import "gorm.io/gorm"

// Role names mirror what the frontend expects in the login response.
const (
	RoleAdmin  = "ADMIN"
	RoleScorer = "SCORER"
	RolePlayer = "PLAYER"
	RoleGuest  = "GUEST"
)

type User struct {
	gorm.Model
	Username          string `gorm:"uniqueIndex;not null" json:"username"`
	Email             string `gorm:"index" json:"email,omitempty"`
	Password          string `json:"-"`
	Role              string `gorm:"not null;default:'GUEST'" json:"role"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}
