package league

import (
	"errors"

	"gorm.io/gorm"
)

// LeagueRepository defines the interface for league data operations.
type LeagueRepository interface {
	CreateLeague(league *League) error
	GetLeagueByID(id uint) (*League, error)
	GetLeagues(page, limit int) ([]League, int64, error)
	UpdateLeague(league *League) error
	DeleteLeague(id uint) error
	CountTeams(leagueID uint) (int64, error)
}

type leagueRepository struct {
	db *gorm.DB
}

// NewLeagueRepository creates a new instance of LeagueRepository.
func NewLeagueRepository(db *gorm.DB) LeagueRepository {
	return &leagueRepository{db: db}
}

func (r *leagueRepository) CreateLeague(league *League) error {
	return r.db.Create(league).Error
}

func (r *leagueRepository) GetLeagueByID(id uint) (*League, error) {
	var l League
	if err := r.db.First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *leagueRepository) GetLeagues(page, limit int) ([]League, int64, error) {
	var leagues []League
	var total int64

	query := r.db.Model(&League{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("start_date desc").Find(&leagues).Error; err != nil {
		return nil, 0, err
	}
	return leagues, total, nil
}

func (r *leagueRepository) UpdateLeague(league *League) error {
	return r.db.Save(league).Error
}

func (r *leagueRepository) DeleteLeague(id uint) error {
	return r.db.Delete(&League{}, id).Error
}

// CountTeams counts teams registered in a league. Queried by table name to keep
// the league package free of a dependency on the team package.
func (r *leagueRepository) CountTeams(leagueID uint) (int64, error) {
	var count int64
	err := r.db.Table("teams").Where("league_id = ? AND deleted_at IS NULL", leagueID).Count(&count).Error
	return count, err
}
