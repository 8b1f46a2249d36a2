package game

import (
	"context"

	"github.com/cimile-club/lineup-api/internal/model"
	"gorm.io/gorm"
)

type GameRepository struct{}

func NewGameRepository() *GameRepository {
	return &GameRepository{}
}

func (r *GameRepository) Create(ctx context.Context, db *gorm.DB, game *model.Game) error {
	return db.WithContext(ctx).Create(game).Error
}

func (r *GameRepository) Save(ctx context.Context, db *gorm.DB, game *model.Game) error {
	return db.WithContext(ctx).Save(game).Error
}

func (r *GameRepository) Delete(ctx context.Context, db *gorm.DB, game *model.Game) error {
	return db.WithContext(ctx).Delete(game).Error
}

func (r *GameRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Game, error) {
	var game model.Game
	err := db.WithContext(ctx).Where("id = ?", id).First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *GameRepository) List(ctx context.Context, db *gorm.DB, query ListGamesQuery, skip, limit int) ([]model.Game, error) {
	games := make([]model.Game, 0)

	q := db.WithContext(ctx).Model(&model.Game{})
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}

	err := q.Order("played_at").Offset(skip).Limit(limit).Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// CountLineups counts lineups attached to the game.
func (r *GameRepository) CountLineups(ctx context.Context, db *gorm.DB, gameID uint32) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Lineup{}).
		Where("game_id = ?", gameID).
		Count(&count).Error
	return count, err
}

func (r *GameRepository) VenueExists(ctx context.Context, db *gorm.DB, venueID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Venue{}).Where("id = ?", venueID).Count(&count).Error
	return count > 0, err
}

func (r *GameRepository) TeamExists(ctx context.Context, db *gorm.DB, teamID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Team{}).Where("id = ?", teamID).Count(&count).Error
	return count > 0, err
}
