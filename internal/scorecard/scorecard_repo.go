package scorecard

import (
	"errors"

	"gorm.io/gorm"
)

// ScorecardRepository defines the interface for scorecard data operations.
type ScorecardRepository interface {
	// GetByMatchID returns (nil, nil) when no scorecard exists yet, a
	// legitimate "no innings started" signal distinct from a storage error.
	GetByMatchID(matchID uint) (*Scorecard, error)
	// Upsert replaces the scorecard wholesale (no partial writes). On first
	// write it also sets the scorecard back-reference on the match row.
	Upsert(sc *Scorecard) error
}

type scorecardRepository struct {
	db *gorm.DB
}

// NewScorecardRepository creates a new instance of ScorecardRepository.
func NewScorecardRepository(db *gorm.DB) ScorecardRepository {
	return &scorecardRepository{db: db}
}

func (r *scorecardRepository) GetByMatchID(matchID uint) (*Scorecard, error) {
	var sc Scorecard
	if err := r.db.Where("match_id = ?", matchID).First(&sc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sc, nil
}

func (r *scorecardRepository) Upsert(sc *Scorecard) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing Scorecard
		err := tx.Where("match_id = ?", sc.MatchID).First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Create(sc).Error; err != nil {
				return err
			}
			// First write links the match to its scorecard.
			return tx.Table("matches").
				Where("id = ?", sc.MatchID).
				Update("scorecard_id", sc.ID).Error
		}

		sc.ID = existing.ID
		sc.CreatedAt = existing.CreatedAt
		return tx.Model(&existing).
			Select("Innings1", "Innings2").
			Updates(map[string]interface{}{
				"innings1": sc.Innings1,
				"innings2": sc.Innings2,
			}).Error
	})
}
