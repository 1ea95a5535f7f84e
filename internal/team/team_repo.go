package team

import (
	"errors"

	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeams(leagueID uint, page, limit int) ([]Team, int64, error)
	UpdateTeam(team *Team) error
	DeleteTeam(id uint) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var t Team
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// GetTeams lists teams, optionally filtered by league (leagueID == 0 means all).
func (r *teamRepository) GetTeams(leagueID uint, page, limit int) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{})
	if leagueID != 0 {
		query = query.Where("league_id = ?", leagueID)
	}
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) UpdateTeam(team *Team) error {
	return r.db.Save(team).Error
}

func (r *teamRepository) DeleteTeam(id uint) error {
	return r.db.Delete(&Team{}, id).Error
}
