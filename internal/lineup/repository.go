package lineup

import (
	"context"

	"github.com/cimile-club/lineup-api/internal/model"
	"gorm.io/gorm"
)

type LineupRepository struct{}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{}
}

func (r *LineupRepository) Create(ctx context.Context, db *gorm.DB, lineup *model.Lineup) error {
	return db.WithContext(ctx).Create(lineup).Error
}

func (r *LineupRepository) Save(ctx context.Context, db *gorm.DB, lineup *model.Lineup) error {
	return db.WithContext(ctx).Save(lineup).Error
}

func (r *LineupRepository) Delete(ctx context.Context, db *gorm.DB, lineup *model.Lineup) error {
	return db.WithContext(ctx).Delete(lineup).Error
}

func (r *LineupRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Lineup, error) {
	var lineup model.Lineup
	err := db.WithContext(ctx).Where("id = ?", id).First(&lineup).Error
	if err != nil {
		return nil, err
	}
	return &lineup, nil
}

func (r *LineupRepository) List(ctx context.Context, db *gorm.DB, gameID uint32, skip, limit int) ([]model.Lineup, error) {
	lineups := make([]model.Lineup, 0)

	q := db.WithContext(ctx).Model(&model.Lineup{})
	if gameID != 0 {
		q = q.Where("game_id = ?", gameID)
	}

	err := q.Order("id").Offset(skip).Limit(limit).Find(&lineups).Error
	if err != nil {
		return nil, err
	}
	return lineups, nil
}

func (r *LineupRepository) GameExists(ctx context.Context, db *gorm.DB, gameID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Game{}).Where("id = ?", gameID).Count(&count).Error
	return count > 0, err
}

func (r *LineupRepository) PlayerExists(ctx context.Context, db *gorm.DB, playerID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Player{}).Where("id = ?", playerID).Count(&count).Error
	return count > 0, err
}

// --- LineupPlayer rows ---

func (r *LineupRepository) CreateSlot(ctx context.Context, db *gorm.DB, slot *model.LineupPlayer) error {
	return db.WithContext(ctx).Create(slot).Error
}

func (r *LineupRepository) SaveSlot(ctx context.Context, db *gorm.DB, slot *model.LineupPlayer) error {
	return db.WithContext(ctx).Save(slot).Error
}

func (r *LineupRepository) DeleteSlot(ctx context.Context, db *gorm.DB, slot *model.LineupPlayer) error {
	return db.WithContext(ctx).Delete(slot).Error
}

// DeleteSlots removes every slot row of a lineup (lineup delete / copy rollback).
func (r *LineupRepository) DeleteSlots(ctx context.Context, db *gorm.DB, lineupID uint32) error {
	return db.WithContext(ctx).
		Where("lineup_id = ?", lineupID).
		Delete(&model.LineupPlayer{}).Error
}

// FindSlot finds one slot row scoped to its lineup.
func (r *LineupRepository) FindSlot(ctx context.Context, db *gorm.DB, lineupID, slotID uint32) (*model.LineupPlayer, error) {
	var slot model.LineupPlayer
	err := db.WithContext(ctx).
		Where("id = ? AND lineup_id = ?", slotID, lineupID).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// FindSlots returns every slot row of a lineup ordered by batting order.
func (r *LineupRepository) FindSlots(ctx context.Context, db *gorm.DB, lineupID uint32) ([]model.LineupPlayer, error) {
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

// FindSlotsAtOrder returns slot rows of a lineup at one batting order.
func (r *LineupRepository) FindSlotsAtOrder(ctx context.Context, db *gorm.DB, lineupID uint32, battingOrder int) ([]model.LineupPlayer, error) {
	slots := make([]model.LineupPlayer, 0)
	err := db.WithContext(ctx).
		Where("lineup_id = ? AND batting_order = ?", lineupID, battingOrder).
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// FindSlotsOfPlayer returns the slot rows a player already holds in a lineup.
func (r *LineupRepository) FindSlotsOfPlayer(ctx context.Context, db *gorm.DB, lineupID, playerID uint32) ([]model.LineupPlayer, error) {
	slots := make([]model.LineupPlayer, 0)
	err := db.WithContext(ctx).
		Where("lineup_id = ? AND player_id = ?", lineupID, playerID).
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// PositionHeldByOther reports whether another row in the lineup already holds
// the exact non-empty position code.
func (r *LineupRepository) PositionHeldByOther(ctx context.Context, db *gorm.DB, lineupID uint32, position string, excludeSlotID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.LineupPlayer{}).
		Where("lineup_id = ? AND position = ? AND id <> ?", lineupID, position, excludeSlotID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
