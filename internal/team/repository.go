package team

import (
	"context"

	"github.com/cimile-club/lineup-api/internal/model"
	"gorm.io/gorm"
)

type TeamRepository struct{}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{}
}

func (r *TeamRepository) Create(ctx context.Context, db *gorm.DB, team *model.Team) error {
	return db.WithContext(ctx).Create(team).Error
}

func (r *TeamRepository) Save(ctx context.Context, db *gorm.DB, team *model.Team) error {
	return db.WithContext(ctx).Save(team).Error
}

func (r *TeamRepository) Delete(ctx context.Context, db *gorm.DB, team *model.Team) error {
	return db.WithContext(ctx).Delete(team).Error
}

func (r *TeamRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Team, error) {
	var team model.Team
	err := db.WithContext(ctx).Where("id = ?", id).First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) ExistsByName(ctx context.Context, db *gorm.DB, name string, excludeID uint32) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(&model.Team{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TeamRepository) List(ctx context.Context, db *gorm.DB, query ListTeamsQuery, skip, limit int) ([]model.Team, error) {
	teams := make([]model.Team, 0)

	q := db.WithContext(ctx).Model(&model.Team{})
	if query.Active != nil {
		q = q.Where("is_active = ?", *query.Active)
	}
	if query.League != "" {
		q = q.Where("league = ?", query.League)
	}

	err := q.Order("id").Offset(skip).Limit(limit).Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// CountGamesAgainst counts games referencing the team as opponent.
func (r *TeamRepository) CountGamesAgainst(ctx context.Context, db *gorm.DB, teamID uint32) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Game{}).
		Where("opponent_team_id = ?", teamID).
		Count(&count).Error
	return count, err
}

// CountPlayers counts roster players assigned to the team.
func (r *TeamRepository) CountPlayers(ctx context.Context, db *gorm.DB, teamID uint32) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Player{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}
