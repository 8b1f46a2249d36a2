package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/database"
	"github.com/cimile-club/lineup-api/internal/shared/logger"
	"gorm.io/gorm"
)

type VenueService struct {
	db              *gorm.DB
	venueRepository *VenueRepository
}

func NewVenueService(db *gorm.DB, venueRepository *VenueRepository) *VenueService {
	return &VenueService{
		db:              db,
		venueRepository: venueRepository,
	}
}

func (s *VenueService) List(ctx context.Context, active *bool, skip, limit int) ([]model.Venue, error) {
	venues, err := s.venueRepository.List(ctx, s.db, active, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("경기장 목록 조회 실패: %w", err)
	}
	return venues, nil
}

func (s *VenueService) Get(ctx context.Context, venueID uint32) (*model.Venue, error) {
	venue, err := s.venueRepository.FindByID(ctx, s.db, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("경기장을 찾을 수 없습니다 venueID=%d %w", venueID, ErrVenueNotFound)
		}
		return nil, fmt.Errorf("경기장 조회 실패: %w", err)
	}
	return venue, nil
}

func (s *VenueService) Create(ctx context.Context, request *CreateVenueRequest) (*model.Venue, error) {
	log := logger.FromContext(ctx)

	var created *model.Venue
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.venueRepository.ExistsByName(ctx, tx, request.Name, 0)
		if err != nil {
			return fmt.Errorf("경기장명 중복 확인 실패: %w", err)
		}
		if exists {
			return fmt.Errorf("경기장명 중복 name=%s %w", request.Name, ErrVenueNameTaken)
		}

		venue := &model.Venue{
			Name:        request.Name,
			Location:    request.Location,
			Capacity:    request.Capacity,
			SurfaceType: request.SurfaceType,
			IsIndoor:    request.IsIndoor,
			IsActive:    true,
		}
		if err := s.venueRepository.Create(ctx, tx, venue); err != nil {
			return fmt.Errorf("경기장 생성 실패: %w", err)
		}

		log.Info("경기장 생성 완료", "venue_id", venue.ID, "name", venue.Name)
		created = venue
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *VenueService) Update(ctx context.Context, venueID uint32, request *UpdateVenueRequest) (*model.Venue, error) {
	var updated *model.Venue
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		venue, err := s.venueRepository.FindByID(ctx, tx, venueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("경기장을 찾을 수 없습니다 venueID=%d %w", venueID, ErrVenueNotFound)
			}
			return fmt.Errorf("경기장 조회 실패: %w", err)
		}

		if request.Name != nil && *request.Name != venue.Name {
			exists, err := s.venueRepository.ExistsByName(ctx, tx, *request.Name, venueID)
			if err != nil {
				return fmt.Errorf("경기장명 중복 확인 실패: %w", err)
			}
			if exists {
				return fmt.Errorf("경기장명 중복 name=%s %w", *request.Name, ErrVenueNameTaken)
			}
			venue.Name = *request.Name
		}
		if request.Location != nil {
			venue.Location = *request.Location
		}
		if request.Capacity != nil {
			venue.Capacity = request.Capacity
		}
		if request.SurfaceType != nil {
			venue.SurfaceType = *request.SurfaceType
		}
		if request.IsIndoor != nil {
			venue.IsIndoor = *request.IsIndoor
		}
		if request.IsActive != nil {
			venue.IsActive = *request.IsActive
		}

		if err := s.venueRepository.Save(ctx, tx, venue); err != nil {
			return fmt.Errorf("경기장 수정 실패: %w", err)
		}

		updated = venue
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a venue. Blocked while any game references it.
func (s *VenueService) Delete(ctx context.Context, venueID uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		venue, err := s.venueRepository.FindByID(ctx, tx, venueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("경기장을 찾을 수 없습니다 venueID=%d %w", venueID, ErrVenueNotFound)
			}
			return fmt.Errorf("경기장 조회 실패: %w", err)
		}

		gameCount, err := s.venueRepository.CountGames(ctx, tx, venueID)
		if err != nil {
			return fmt.Errorf("경기장 사용 확인 실패: %w", err)
		}
		if gameCount > 0 {
			return fmt.Errorf("사용 중인 경기 %d건 %w", gameCount, ErrVenueInUse)
		}

		if err := s.venueRepository.Delete(ctx, tx, venue); err != nil {
			return fmt.Errorf("경기장 삭제 실패: %w", err)
		}

		log.Info("경기장 삭제 완료", "venue_id", venueID, "name", venue.Name)
		return nil
	})
}
