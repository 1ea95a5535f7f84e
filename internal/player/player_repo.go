package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the interface for player data operations.
type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayers(page, limit int) ([]Player, int64, error)
	GetPlayersByTeam(teamID uint) ([]Player, error)
	GetTeamIDs(playerID uint) ([]uint, error)
	UpdatePlayer(player *Player) error
	DeletePlayer(id uint) error
	AddToTeam(playerID, teamID uint) error
	RemoveFromTeam(playerID, teamID uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetPlayers(page, limit int) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("last_name asc, first_name asc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

// GetPlayersByTeam returns the roster of a team.
func (r *playerRepository) GetPlayersByTeam(teamID uint) ([]Player, error) {
	var players []Player
	err := r.db.
		Joins("JOIN player_teams ON player_teams.player_id = players.id").
		Where("player_teams.team_id = ?", teamID).
		Order("players.last_name asc, players.first_name asc").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetTeamIDs(playerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&TeamMembership{}).
		Where("player_id = ?", playerID).
		Pluck("team_id", &ids).Error
	return ids, err
}

func (r *playerRepository) UpdatePlayer(player *Player) error {
	return r.db.Save(player).Error
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_id = ?", id).Delete(&TeamMembership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Player{}, id).Error
	})
}

func (r *playerRepository) AddToTeam(playerID, teamID uint) error {
	membership := TeamMembership{PlayerID: playerID, TeamID: teamID}
	return r.db.FirstOrCreate(&membership, membership).Error
}

func (r *playerRepository) RemoveFromTeam(playerID, teamID uint) error {
	return r.db.Where("player_id = ? AND team_id = ?", playerID, teamID).Delete(&TeamMembership{}).Error
}
