package player

import (
	"context"

	"github.com/cimile-club/lineup-api/internal/model"
	"gorm.io/gorm"
)

type PlayerRepository struct{}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{}
}

func (r *PlayerRepository) Create(ctx context.Context, db *gorm.DB, player *model.Player) error {
	return db.WithContext(ctx).Create(player).Error
}

func (r *PlayerRepository) Save(ctx context.Context, db *gorm.DB, player *model.Player) error {
	return db.WithContext(ctx).Save(player).Error
}

func (r *PlayerRepository) Delete(ctx context.Context, db *gorm.DB, player *model.Player) error {
	return db.WithContext(ctx).Delete(player).Error
}

func (r *PlayerRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Player, error) {
	var player model.Player
	err := db.WithContext(ctx).Where("id = ?", id).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []uint32) ([]model.Player, error) {
	players := make([]model.Player, 0, len(ids))
	if len(ids) == 0 {
		return players, nil
	}

	err := db.WithContext(ctx).Where("id IN ?", ids).Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *PlayerRepository) ExistsByNumber(ctx context.Context, db *gorm.DB, number int, excludeID uint32) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(&model.Player{}).Where("number = ?", number)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PlayerRepository) List(ctx context.Context, db *gorm.DB, query ListPlayersQuery, skip, limit int) ([]model.Player, error) {
	players := make([]model.Player, 0)

	q := db.WithContext(ctx).Model(&model.Player{})
	if query.Active != nil {
		q = q.Where("is_active = ?", *query.Active)
	}
	if query.Role != "" {
		q = q.Where("role = ?", query.Role)
	}
	if query.TeamID != 0 {
		q = q.Where("team_id = ?", query.TeamID)
	}

	err := q.Order("id").Offset(skip).Limit(limit).Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// ListActive returns every active player ordered by jersey number, for roster exports.
func (r *PlayerRepository) ListActive(ctx context.Context, db *gorm.DB) ([]model.Player, error) {
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

// DeleteLineupAssignments removes all lineup slot rows referencing the player.
// 선수 삭제 시 라인업 참조가 선수 삭제를 막지 않는다.
func (r *PlayerRepository) DeleteLineupAssignments(ctx context.Context, db *gorm.DB, playerID uint32) error {
	return db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Delete(&model.LineupPlayer{}).Error
}
