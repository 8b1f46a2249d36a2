package export

import (
	"context"
	"errors"

	"github.com/cimile-club/lineup-api/internal/model"
	"gorm.io/gorm"
)

type ExportRepository struct{}

func NewExportRepository() *ExportRepository {
	return &ExportRepository{}
}

func (r *ExportRepository) FindLineup(ctx context.Context, db *gorm.DB, id uint32) (*model.Lineup, error) {
	var lineup model.Lineup
	err := db.WithContext(ctx).Where("id = ?", id).First(&lineup).Error
	if err != nil {
		return nil, err
	}
	return &lineup, nil
}

func (r *ExportRepository) FindSlots(ctx context.Context, db *gorm.DB, lineupID uint32) ([]model.LineupPlayer, error) {
	slots := make([]model.LineupPlayer, 0)
	err := db.WithContext(ctx).
		Where("lineup_id = ?", lineupID).
		Order("batting_order, id").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// FindGame returns nil without error when the game row is gone.
func (r *ExportRepository) FindGame(ctx context.Context, db *gorm.DB, id uint32) (*model.Game, error) {
	var game model.Game
	err := db.WithContext(ctx).Where("id = ?", id).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// FindTeam returns nil without error when the team row is gone.
func (r *ExportRepository) FindTeam(ctx context.Context, db *gorm.DB, id uint32) (*model.Team, error) {
	var team model.Team
	err := db.WithContext(ctx).Where("id = ?", id).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// FindVenue returns nil without error when the venue row is gone.
func (r *ExportRepository) FindVenue(ctx context.Context, db *gorm.DB, id uint32) (*model.Venue, error) {
	var venue model.Venue
	err := db.WithContext(ctx).Where("id = ?", id).First(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// FindPlayer returns nil without error when the player row is gone.
func (r *ExportRepository) FindPlayer(ctx context.Context, db *gorm.DB, id uint32) (*model.Player, error) {
	var player model.Player
	err := db.WithContext(ctx).Where("id = ?", id).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *ExportRepository) FindPlayersByIDs(ctx context.Context, db *gorm.DB, ids []uint32) (map[uint32]model.Player, error) {
	players := make([]model.Player, 0)
	err := db.WithContext(ctx).Where("id IN ?", ids).Find(&players).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint32]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *ExportRepository) ListActivePlayers(ctx context.Context, db *gorm.DB) ([]model.Player, error) {
	players := make([]model.Player, 0)
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("number NULLS LAST, id").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}
