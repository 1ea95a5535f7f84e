package match

import (
	"errors"

	"gorm.io/gorm"
)

// MatchRepository defines methods to interact with match data.
type MatchRepository interface {
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatches(leagueID uint, status MatchStatus, page, limit int) ([]Match, int64, error)
	UpdateMatch(match *Match) error
	// UpdateMatchFields applies a partial update (status, toss fields,
	// result, scorecard back-reference) without touching other columns.
	UpdateMatchFields(id uint, fields map[string]interface{}) (*Match, error)
	DeleteMatch(id uint) error
	WithTransaction(txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM.
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository.
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support.
func (r *GormMatchRepository) WithTransaction(txFunc func(MatchRepository) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	if err := txFunc(txRepo); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *GormMatchRepository) CreateMatch(match *Match) error {
	return r.db.Create(match).Error
}

func (r *GormMatchRepository) GetMatchByID(id uint) (*Match, error) {
	var m Match
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// GetMatches lists matches, optionally filtered by league and status
// (zero values mean no filter).
func (r *GormMatchRepository) GetMatches(leagueID uint, status MatchStatus, page, limit int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{})
	if leagueID != 0 {
		query = query.Where("league_id = ?", leagueID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("date_time desc").Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *GormMatchRepository) UpdateMatch(match *Match) error {
	return r.db.Save(match).Error
}

func (r *GormMatchRepository) UpdateMatchFields(id uint, fields map[string]interface{}) (*Match, error) {
	result := r.db.Model(&Match{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetMatchByID(id)
}

func (r *GormMatchRepository) DeleteMatch(id uint) error {
	return r.db.Delete(&Match{}, id).Error
}
