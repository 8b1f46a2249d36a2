package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/database"
	"github.com/cimile-club/lineup-api/internal/shared/logger"
	"gorm.io/gorm"
)

type GameService struct {
	db             *gorm.DB
	gameRepository *GameRepository
}

func NewGameService(db *gorm.DB, gameRepository *GameRepository) *GameService {
	return &GameService{
		db:             db,
		gameRepository: gameRepository,
	}
}

func (s *GameService) List(ctx context.Context, query ListGamesQuery, skip, limit int) ([]model.Game, error) {
	games, err := s.gameRepository.List(ctx, s.db, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("경기 목록 조회 실패: %w", err)
	}
	return games, nil
}

func (s *GameService) Get(ctx context.Context, gameID uint32) (*model.Game, error) {
	game, err := s.gameRepository.FindByID(ctx, s.db, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("경기를 찾을 수 없습니다 gameID=%d %w", gameID, ErrGameNotFound)
		}
		return nil, fmt.Errorf("경기 조회 실패: %w", err)
	}
	return game, nil
}

func (s *GameService) Create(ctx context.Context, request *CreateGameRequest) (*model.Game, error) {
	log := logger.FromContext(ctx)

	gameType := model.GameTypeRegular
	if request.GameType != "" {
		gameType = model.GameType(request.GameType)
		if !gameType.Valid() {
			return nil, fmt.Errorf("알 수 없는 경기 유형 %q: %w", request.GameType, ErrGameInvalidType)
		}
	}

	var created *model.Game
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.checkReferences(ctx, tx, request.VenueID, request.OpponentTeamID); err != nil {
			return err
		}

		game := &model.Game{
			PlayedAt:       request.PlayedAt,
			VenueID:        request.VenueID,
			OpponentTeamID: request.OpponentTeamID,
			IsHome:         request.IsHome,
			GameType:       gameType,
			Status:         model.GameStatusScheduled,
			Notes:          request.Notes,
		}
		if err := s.gameRepository.Create(ctx, tx, game); err != nil {
			return fmt.Errorf("경기 생성 실패: %w", err)
		}

		log.Info("경기 생성 완료", "game_id", game.ID, "played_at", game.PlayedAt)
		created = game
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *GameService) Update(ctx context.Context, gameID uint32, request *UpdateGameRequest) (*model.Game, error) {
	var updated *model.Game
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		game, err := s.gameRepository.FindByID(ctx, tx, gameID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("경기를 찾을 수 없습니다 gameID=%d %w", gameID, ErrGameNotFound)
			}
			return fmt.Errorf("경기 조회 실패: %w", err)
		}

		if request.VenueID != nil {
			exists, err := s.gameRepository.VenueExists(ctx, tx, *request.VenueID)
			if err != nil {
				return fmt.Errorf("경기장 확인 실패: %w", err)
			}
			if !exists {
				return fmt.Errorf("경기장 없음 venueID=%d %w", *request.VenueID, ErrGameVenueMissing)
			}
			game.VenueID = *request.VenueID
		}
		if request.OpponentTeamID != nil {
			exists, err := s.gameRepository.TeamExists(ctx, tx, *request.OpponentTeamID)
			if err != nil {
				return fmt.Errorf("상대 팀 확인 실패: %w", err)
			}
			if !exists {
				return fmt.Errorf("상대 팀 없음 teamID=%d %w", *request.OpponentTeamID, ErrGameTeamMissing)
			}
			game.OpponentTeamID = *request.OpponentTeamID
		}
		if request.GameType != nil {
			gameType := model.GameType(*request.GameType)
			if !gameType.Valid() {
				return fmt.Errorf("알 수 없는 경기 유형 %q: %w", *request.GameType, ErrGameInvalidType)
			}
			game.GameType = gameType
		}
		if request.Status != nil {
			status := model.GameStatus(*request.Status)
			if !status.Valid() {
				return fmt.Errorf("알 수 없는 경기 상태 %q: %w", *request.Status, ErrGameInvalidStatus)
			}
			game.Status = status
		}
		if request.PlayedAt != nil {
			game.PlayedAt = *request.PlayedAt
		}
		if request.IsHome != nil {
			game.IsHome = *request.IsHome
		}
		if request.Notes != nil {
			game.Notes = *request.Notes
		}

		if err := s.gameRepository.Save(ctx, tx, game); err != nil {
			return fmt.Errorf("경기 수정 실패: %w", err)
		}

		updated = game
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a game. Blocked while any lineup references it.
func (s *GameService) Delete(ctx context.Context, gameID uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		game, err := s.gameRepository.FindByID(ctx, tx, gameID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("경기를 찾을 수 없습니다 gameID=%d %w", gameID, ErrGameNotFound)
			}
			return fmt.Errorf("경기 조회 실패: %w", err)
		}

		lineupCount, err := s.gameRepository.CountLineups(ctx, tx, gameID)
		if err != nil {
			return fmt.Errorf("라인업 확인 실패: %w", err)
		}
		if lineupCount > 0 {
			return fmt.Errorf("연결된 라인업 %d건 %w", lineupCount, ErrGameHasLineups)
		}

		if err := s.gameRepository.Delete(ctx, tx, game); err != nil {
			return fmt.Errorf("경기 삭제 실패: %w", err)
		}

		log.Info("경기 삭제 완료", "game_id", gameID)
		return nil
	})
}

func (s *GameService) checkReferences(ctx context.Context, tx *gorm.DB, venueID, opponentTeamID uint32) error {
	venueExists, err := s.gameRepository.VenueExists(ctx, tx, venueID)
	if err != nil {
		return fmt.Errorf("경기장 확인 실패: %w", err)
	}
	if !venueExists {
		return fmt.Errorf("경기장 없음 venueID=%d %w", venueID, ErrGameVenueMissing)
	}

	teamExists, err := s.gameRepository.TeamExists(ctx, tx, opponentTeamID)
	if err != nil {
		return fmt.Errorf("상대 팀 확인 실패: %w", err)
	}
	if !teamExists {
		return fmt.Errorf("상대 팀 없음 teamID=%d %w", opponentTeamID, ErrGameTeamMissing)
	}

	return nil
}
