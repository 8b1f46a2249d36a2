package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/database"
	"github.com/cimile-club/lineup-api/internal/shared/logger"
	"gorm.io/gorm"
)

type PlayerService struct {
	db               *gorm.DB
	playerRepository *PlayerRepository
}

func NewPlayerService(db *gorm.DB, playerRepository *PlayerRepository) *PlayerService {
	return &PlayerService{
		db:               db,
		playerRepository: playerRepository,
	}
}

func (s *PlayerService) List(ctx context.Context, query ListPlayersQuery, skip, limit int) ([]model.Player, error) {
	players, err := s.playerRepository.List(ctx, s.db, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("선수 목록 조회 실패: %w", err)
	}
	return players, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID uint32) (*model.Player, error) {
	player, err := s.playerRepository.FindByID(ctx, s.db, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("선수를 찾을 수 없습니다 playerID=%d %w", playerID, ErrPlayerNotFound)
		}
		return nil, fmt.Errorf("선수 조회 실패: %w", err)
	}
	return player, nil
}

func (s *PlayerService) Create(ctx context.Context, request *CreatePlayerRequest) (*model.Player, error) {
	log := logger.FromContext(ctx)

	role := model.PlayerRolePlayer
	if request.Role != "" {
		role = model.PlayerRole(request.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("알 수 없는 역할 %q: %w", request.Role, ErrPlayerInvalidRole)
		}
	}

	var created *model.Player
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if request.Number != nil {
			taken, err := s.playerRepository.ExistsByNumber(ctx, tx, *request.Number, 0)
			if err != nil {
				return fmt.Errorf("등번호 중복 확인 실패: %w", err)
			}
			if taken {
				return fmt.Errorf("등번호 중복 number=%d %w", *request.Number, ErrPlayerNumberTaken)
			}
		}

		if request.TeamID != nil {
			var count int64
			if err := tx.WithContext(ctx).Model(&model.Team{}).Where("id = ?", *request.TeamID).Count(&count).Error; err != nil {
				return fmt.Errorf("소속 팀 확인 실패: %w", err)
			}
			if count == 0 {
				return fmt.Errorf("소속 팀 없음 teamID=%d %w", *request.TeamID, ErrPlayerTeamMissing)
			}
		}

		player := &model.Player{
			Name:               request.Name,
			Number:             request.Number,
			Phone:              request.Phone,
			Email:              request.Email,
			Role:               role,
			TeamID:             request.TeamID,
			PositionPreference: request.PositionPreference,
			PhotoURL:           request.PhotoURL,
			Notes:              request.Notes,
			IsActive:           true,
		}
		if err := s.playerRepository.Create(ctx, tx, player); err != nil {
			return fmt.Errorf("선수 생성 실패: %w", err)
		}

		log.Info("선수 생성 완료", "player_id", player.ID, "name", player.Name)
		created = player
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID uint32, request *UpdatePlayerRequest) (*model.Player, error) {
	var updated *model.Player
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		player, err := s.playerRepository.FindByID(ctx, tx, playerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("선수를 찾을 수 없습니다 playerID=%d %w", playerID, ErrPlayerNotFound)
			}
			return fmt.Errorf("선수 조회 실패: %w", err)
		}

		if request.Number != nil {
			taken, err := s.playerRepository.ExistsByNumber(ctx, tx, *request.Number, playerID)
			if err != nil {
				return fmt.Errorf("등번호 중복 확인 실패: %w", err)
			}
			if taken {
				return fmt.Errorf("등번호 중복 number=%d %w", *request.Number, ErrPlayerNumberTaken)
			}
			player.Number = request.Number
		}

		if request.Role != nil {
			role := model.PlayerRole(*request.Role)
			if !role.Valid() {
				return fmt.Errorf("알 수 없는 역할 %q: %w", *request.Role, ErrPlayerInvalidRole)
			}
			player.Role = role
		}

		if request.Name != nil {
			player.Name = *request.Name
		}
		if request.Phone != nil {
			player.Phone = *request.Phone
		}
		if request.Email != nil {
			player.Email = *request.Email
		}
		if request.TeamID != nil {
			var count int64
			if err := tx.WithContext(ctx).Model(&model.Team{}).Where("id = ?", *request.TeamID).Count(&count).Error; err != nil {
				return fmt.Errorf("소속 팀 확인 실패: %w", err)
			}
			if count == 0 {
				return fmt.Errorf("소속 팀 없음 teamID=%d %w", *request.TeamID, ErrPlayerTeamMissing)
			}
			player.TeamID = request.TeamID
		}
		if request.PositionPreference != nil {
			player.PositionPreference = *request.PositionPreference
		}
		if request.PhotoURL != nil {
			player.PhotoURL = *request.PhotoURL
		}
		if request.Notes != nil {
			player.Notes = *request.Notes
		}
		if request.IsActive != nil {
			player.IsActive = *request.IsActive
		}

		if err := s.playerRepository.Save(ctx, tx, player); err != nil {
			return fmt.Errorf("선수 수정 실패: %w", err)
		}

		updated = player
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete hard-deletes a player. Lineup references never block the delete;
// the player's slot rows are removed in the same transaction.
func (s *PlayerService) Delete(ctx context.Context, playerID uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		player, err := s.playerRepository.FindByID(ctx, tx, playerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("선수를 찾을 수 없습니다 playerID=%d %w", playerID, ErrPlayerNotFound)
			}
			return fmt.Errorf("선수 조회 실패: %w", err)
		}

		if err := s.playerRepository.DeleteLineupAssignments(ctx, tx, playerID); err != nil {
			return fmt.Errorf("라인업 배정 삭제 실패: %w", err)
		}

		if err := s.playerRepository.Delete(ctx, tx, player); err != nil {
			return fmt.Errorf("선수 삭제 실패: %w", err)
		}

		log.Info("선수 삭제 완료", "player_id", playerID, "name", player.Name)
		return nil
	})
}
