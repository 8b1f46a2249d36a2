package lineup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/database"
	"github.com/cimile-club/lineup-api/internal/shared/logger"
	"gorm.io/gorm"
)

type LineupService struct {
	db               *gorm.DB
	lineupRepository *LineupRepository
}

func NewLineupService(db *gorm.DB, lineupRepository *LineupRepository) *LineupService {
	return &LineupService{
		db:               db,
		lineupRepository: lineupRepository,
	}
}

func (s *LineupService) List(ctx context.Context, gameID uint32, skip, limit int) ([]model.Lineup, error) {
	lineups, err := s.lineupRepository.List(ctx, s.db, gameID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("라인업 목록 조회 실패: %w", err)
	}
	return lineups, nil
}

func (s *LineupService) GetDetail(ctx context.Context, lineupID uint32) (*LineupDetailResponse, error) {
	lineup, err := s.findLineup(ctx, s.db, lineupID)
	if err != nil {
		return nil, err
	}

	slots, err := s.lineupRepository.FindSlots(ctx, s.db, lineupID)
	if err != nil {
		return nil, fmt.Errorf("라인업 구성 조회 실패: %w", err)
	}

	return &LineupDetailResponse{Lineup: *lineup, Players: slots}, nil
}

func (s *LineupService) Create(ctx context.Context, request *CreateLineupRequest) (*model.Lineup, error) {
	log := logger.FromContext(ctx)

	var created *model.Lineup
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.lineupRepository.GameExists(ctx, tx, request.GameID)
		if err != nil {
			return fmt.Errorf("경기 확인 실패: %w", err)
		}
		if !exists {
			return fmt.Errorf("경기 없음 gameID=%d %w", request.GameID, ErrLineupGameMissing)
		}

		lineup := &model.Lineup{
			GameID:    request.GameID,
			Name:      request.Name,
			IsDefault: request.IsDefault,
		}
		if err := s.lineupRepository.Create(ctx, tx, lineup); err != nil {
			return fmt.Errorf("라인업 생성 실패: %w", err)
		}

		log.Info("라인업 생성 완료", "lineup_id", lineup.ID, "game_id", lineup.GameID)
		created = lineup
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *LineupService) Update(ctx context.Context, lineupID uint32, request *UpdateLineupRequest) (*model.Lineup, error) {
	var updated *model.Lineup
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		lineup, err := s.findLineup(ctx, tx, lineupID)
		if err != nil {
			return err
		}

		if request.Name != nil {
			lineup.Name = *request.Name
		}
		if request.IsDefault != nil {
			lineup.IsDefault = *request.IsDefault
		}

		if err := s.lineupRepository.Save(ctx, tx, lineup); err != nil {
			return fmt.Errorf("라인업 수정 실패: %w", err)
		}

		updated = lineup
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a lineup together with its slot rows.
func (s *LineupService) Delete(ctx context.Context, lineupID uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		lineup, err := s.findLineup(ctx, tx, lineupID)
		if err != nil {
			return err
		}

		if err := s.lineupRepository.DeleteSlots(ctx, tx, lineupID); err != nil {
			return fmt.Errorf("라인업 구성 삭제 실패: %w", err)
		}
		if err := s.lineupRepository.Delete(ctx, tx, lineup); err != nil {
			return fmt.Errorf("라인업 삭제 실패: %w", err)
		}

		log.Info("라인업 삭제 완료", "lineup_id", lineupID)
		return nil
	})
}

// AssignPlayer puts a player into a lineup slot.
//
// 타순 1~9의 타자 슬롯은 독점이다. 타자 배정이 들어오면 같은 타순의 기존
// 타자 행을 먼저 지우고 들어간다. 투수(포지션 P)는 타순과 무관하게
// 공존하므로 한 선수가 타자 겸 투수로 동시에 설 수 있다. 같은 유형의
// 중복 배정만 거부한다.
func (s *LineupService) AssignPlayer(ctx context.Context, lineupID uint32, request *AssignPlayerRequest) (*model.LineupPlayer, error) {
	log := logger.FromContext(ctx)

	battingOrder := *request.BattingOrder
	if battingOrder < 0 || battingOrder > 9 {
		return nil, fmt.Errorf("타순 범위 초과 battingOrder=%d %w", battingOrder, ErrInvalidBattingOrder)
	}

	incomingPitcher := request.Position == model.PositionPitcher

	var assigned *model.LineupPlayer
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.findLineup(ctx, tx, lineupID); err != nil {
			return err
		}

		playerExists, err := s.lineupRepository.PlayerExists(ctx, tx, request.PlayerID)
		if err != nil {
			return fmt.Errorf("선수 확인 실패: %w", err)
		}
		if !playerExists {
			return fmt.Errorf("선수 없음 playerID=%d %w", request.PlayerID, ErrLineupPlayerMissing)
		}

		// 타자 슬롯 탈환. 자기 자신의 기존 행도 여기서 같이 지워지므로
		// 같은 타순에 재배정하면 교체로 동작한다.
		if battingOrder >= 1 && !incomingPitcher {
			occupants, err := s.lineupRepository.FindSlotsAtOrder(ctx, tx, lineupID, battingOrder)
			if err != nil {
				return fmt.Errorf("타순 조회 실패: %w", err)
			}
			for i := range occupants {
				if occupants[i].IsPitcher() {
					continue
				}
				if err := s.lineupRepository.DeleteSlot(ctx, tx, &occupants[i]); err != nil {
					return fmt.Errorf("기존 타자 제거 실패: %w", err)
				}
				log.Info("타순 교체", "lineup_id", lineupID,
					"batting_order", battingOrder, "removed_player_id", occupants[i].PlayerID)
			}
		}

		existing, err := s.lineupRepository.FindSlotsOfPlayer(ctx, tx, lineupID, request.PlayerID)
		if err != nil {
			return fmt.Errorf("선수 배정 조회 실패: %w", err)
		}
		for i := range existing {
			if existing[i].IsPitcher() != incomingPitcher {
				continue
			}
			if incomingPitcher {
				return fmt.Errorf("중복 투수 배정 playerID=%d %w", request.PlayerID, ErrPlayerAlreadyPitcher)
			}
			return fmt.Errorf("중복 타순 배정 playerID=%d battingOrder=%d %w",
				request.PlayerID, existing[i].BattingOrder, ErrPlayerAlreadyBatting)
		}

		slot := &model.LineupPlayer{
			LineupID:     lineupID,
			PlayerID:     request.PlayerID,
			Position:     normalizePosition(request.Position),
			BattingOrder: battingOrder,
			IsStarter:    true,
		}
		if request.IsStarter != nil {
			slot.IsStarter = *request.IsStarter
		}
		if err := s.lineupRepository.CreateSlot(ctx, tx, slot); err != nil {
			return fmt.Errorf("선수 배정 실패: %w", err)
		}

		log.Info("선수 배정 완료", "lineup_id", lineupID, "player_id", slot.PlayerID,
			"batting_order", slot.BattingOrder, "position", request.Position)
		assigned = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assigned, nil
}

// UpdatePosition changes the position of one slot row. Without force the new
// position must not be held by another row of the same lineup.
func (s *LineupService) UpdatePosition(ctx context.Context, lineupID, slotID uint32, request *UpdatePositionRequest) (*model.LineupPlayer, error) {
	var updated *model.LineupPlayer
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		slot, err := s.findSlot(ctx, tx, lineupID, slotID)
		if err != nil {
			return err
		}

		if request.Position != "" && !request.Force {
			taken, err := s.lineupRepository.PositionHeldByOther(ctx, tx, lineupID, request.Position, slot.ID)
			if err != nil {
				return fmt.Errorf("포지션 확인 실패: %w", err)
			}
			if taken {
				return fmt.Errorf("포지션 중복 position=%s %w", request.Position, ErrPositionTaken)
			}
		}

		slot.Position = normalizePosition(request.Position)
		if err := s.lineupRepository.SaveSlot(ctx, tx, slot); err != nil {
			return fmt.Errorf("포지션 수정 실패: %w", err)
		}

		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *LineupService) RemovePlayer(ctx context.Context, lineupID, slotID uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		slot, err := s.findSlot(ctx, tx, lineupID, slotID)
		if err != nil {
			return err
		}

		if err := s.lineupRepository.DeleteSlot(ctx, tx, slot); err != nil {
			return fmt.Errorf("선수 제외 실패: %w", err)
		}

		log.Info("선수 제외 완료", "lineup_id", lineupID, "player_id", slot.PlayerID)
		return nil
	})
}

// Copy clones a lineup with all slot rows. The clone is never the default
// lineup, and the rows are copied as-is without re-running slot checks.
func (s *LineupService) Copy(ctx context.Context, lineupID uint32, request *CopyLineupRequest) (*model.Lineup, error) {
	log := logger.FromContext(ctx)

	var created *model.Lineup
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		source, err := s.findLineup(ctx, tx, lineupID)
		if err != nil {
			return err
		}

		targetGameID := source.GameID
		if request.NewGameID != nil {
			exists, err := s.lineupRepository.GameExists(ctx, tx, *request.NewGameID)
			if err != nil {
				return fmt.Errorf("경기 확인 실패: %w", err)
			}
			if !exists {
				return fmt.Errorf("경기 없음 gameID=%d %w", *request.NewGameID, ErrLineupGameMissing)
			}
			targetGameID = *request.NewGameID
		}

		clone := &model.Lineup{
			GameID:    targetGameID,
			Name:      request.NewName,
			IsDefault: false,
		}
		if err := s.lineupRepository.Create(ctx, tx, clone); err != nil {
			return fmt.Errorf("라인업 복사 실패: %w", err)
		}

		slots, err := s.lineupRepository.FindSlots(ctx, tx, lineupID)
		if err != nil {
			return fmt.Errorf("라인업 구성 조회 실패: %w", err)
		}
		for i := range slots {
			copied := &model.LineupPlayer{
				LineupID:     clone.ID,
				PlayerID:     slots[i].PlayerID,
				Position:     slots[i].Position,
				BattingOrder: slots[i].BattingOrder,
				IsStarter:    slots[i].IsStarter,
			}
			if err := s.lineupRepository.CreateSlot(ctx, tx, copied); err != nil {
				return fmt.Errorf("라인업 구성 복사 실패: %w", err)
			}
		}

		log.Info("라인업 복사 완료", "source_lineup_id", lineupID,
			"new_lineup_id", clone.ID, "slot_count", len(slots))
		created = clone
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// SetAttendance replaces the attendance map of a lineup wholesale.
func (s *LineupService) SetAttendance(ctx context.Context, lineupID uint32, attendance map[uint32]bool) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		lineup, err := s.findLineup(ctx, tx, lineupID)
		if err != nil {
			return err
		}

		raw, err := json.Marshal(attendance)
		if err != nil {
			return fmt.Errorf("참석 정보 직렬화 실패: %w", err)
		}
		data := string(raw)
		lineup.AttendanceData = &data

		if err := s.lineupRepository.Save(ctx, tx, lineup); err != nil {
			return fmt.Errorf("참석 정보 저장 실패: %w", err)
		}
		return nil
	})
}

// GetAttendance returns the stored attendance map. Missing or unreadable
// data yields an empty map rather than an error.
func (s *LineupService) GetAttendance(ctx context.Context, lineupID uint32) (map[uint32]bool, error) {
	lineup, err := s.findLineup(ctx, s.db, lineupID)
	if err != nil {
		return nil, err
	}

	attendance := make(map[uint32]bool)
	if lineup.AttendanceData == nil || *lineup.AttendanceData == "" {
		return attendance, nil
	}
	if err := json.Unmarshal([]byte(*lineup.AttendanceData), &attendance); err != nil {
		logger.FromContext(ctx).Warn("참석 정보 파싱 실패", "lineup_id", lineupID, "error", err)
		return make(map[uint32]bool), nil
	}
	return attendance, nil
}

func (s *LineupService) findLineup(ctx context.Context, db *gorm.DB, lineupID uint32) (*model.Lineup, error) {
	lineup, err := s.lineupRepository.FindByID(ctx, db, lineupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("라인업을 찾을 수 없습니다 lineupID=%d %w", lineupID, ErrLineupNotFound)
		}
		return nil, fmt.Errorf("라인업 조회 실패: %w", err)
	}
	return lineup, nil
}

func (s *LineupService) findSlot(ctx context.Context, db *gorm.DB, lineupID, slotID uint32) (*model.LineupPlayer, error) {
	slot, err := s.lineupRepository.FindSlot(ctx, db, lineupID, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("배정 행을 찾을 수 없습니다 slotID=%d %w", slotID, ErrSlotNotFound)
		}
		return nil, fmt.Errorf("배정 행 조회 실패: %w", err)
	}
	return slot, nil
}

func normalizePosition(position string) *string {
	if position == "" {
		return nil
	}
	return &position
}
