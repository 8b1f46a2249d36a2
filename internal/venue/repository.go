package venue

import (
	"context"

	"github.com/cimile-club/lineup-api/internal/model"
	"gorm.io/gorm"
)

type VenueRepository struct{}

func NewVenueRepository() *VenueRepository {
	return &VenueRepository{}
}

func (r *VenueRepository) Create(ctx context.Context, db *gorm.DB, venue *model.Venue) error {
	return db.WithContext(ctx).Create(venue).Error
}

func (r *VenueRepository) Save(ctx context.Context, db *gorm.DB, venue *model.Venue) error {
	return db.WithContext(ctx).Save(venue).Error
}

func (r *VenueRepository) Delete(ctx context.Context, db *gorm.DB, venue *model.Venue) error {
	return db.WithContext(ctx).Delete(venue).Error
}

func (r *VenueRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Venue, error) {
	var venue model.Venue
	err := db.WithContext(ctx).Where("id = ?", id).First(&venue).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepository) ExistsByName(ctx context.Context, db *gorm.DB, name string, excludeID uint32) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(&model.Venue{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VenueRepository) List(ctx context.Context, db *gorm.DB, active *bool, skip, limit int) ([]model.Venue, error) {
	venues := make([]model.Venue, 0)

	q := db.WithContext(ctx).Model(&model.Venue{})
	if active != nil {
		q = q.Where("is_active = ?", *active)
	}

	err := q.Order("id").Offset(skip).Limit(limit).Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// CountGames counts games scheduled at the venue.
func (r *VenueRepository) CountGames(ctx context.Context, db *gorm.DB, venueID uint32) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Game{}).
		Where("venue_id = ?", venueID).
		Count(&count).Error
	return count, err
}
