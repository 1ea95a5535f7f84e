package user

import (
	"errors"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(user *User) error
	GetUserByID(id uint) (*User, error)
	GetUserByUsername(username string) (*User, error)
	EnsureSeedAdmin(hashedPassword string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetUserByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetUserByUsername(username string) (*User, error) {
	var u User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// EnsureSeedAdmin creates the default admin account on first boot so the
// application is usable before any other user exists.
func (r *userRepository) EnsureSeedAdmin(hashedPassword string) error {
	existing, err := r.GetUserByUsername("admin")
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	admin := &User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: hashedPassword,
		Role:     RoleAdmin,
	}
	return r.db.Create(admin).Error
}
