package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/database"
	"github.com/cimile-club/lineup-api/internal/shared/logger"
	"gorm.io/gorm"
)

type TeamService struct {
	db             *gorm.DB
	teamRepository *TeamRepository
}

func NewTeamService(db *gorm.DB, teamRepository *TeamRepository) *TeamService {
	return &TeamService{
		db:             db,
		teamRepository: teamRepository,
	}
}

func (s *TeamService) List(ctx context.Context, query ListTeamsQuery, skip, limit int) ([]model.Team, error) {
	teams, err := s.teamRepository.List(ctx, s.db, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("팀 목록 조회 실패: %w", err)
	}
	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, teamID uint32) (*model.Team, error) {
	team, err := s.teamRepository.FindByID(ctx, s.db, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("팀을 찾을 수 없습니다 teamID=%d %w", teamID, ErrTeamNotFound)
		}
		return nil, fmt.Errorf("팀 조회 실패: %w", err)
	}
	return team, nil
}

func (s *TeamService) Create(ctx context.Context, request *CreateTeamRequest) (*model.Team, error) {
	log := logger.FromContext(ctx)

	var created *model.Team
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.teamRepository.ExistsByName(ctx, tx, request.Name, 0)
		if err != nil {
			return fmt.Errorf("팀명 중복 확인 실패: %w", err)
		}
		if exists {
			return fmt.Errorf("팀명 중복 name=%s %w", request.Name, ErrTeamNameTaken)
		}

		team := &model.Team{
			Name:      request.Name,
			City:      request.City,
			League:    request.League,
			IsOurTeam: request.IsOurTeam,
			IsActive:  true,
		}
		if err := s.teamRepository.Create(ctx, tx, team); err != nil {
			return fmt.Errorf("팀 생성 실패: %w", err)
		}

		log.Info("팀 생성 완료", "team_id", team.ID, "name", team.Name)
		created = team
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *TeamService) Update(ctx context.Context, teamID uint32, request *UpdateTeamRequest) (*model.Team, error) {
	var updated *model.Team
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		team, err := s.teamRepository.FindByID(ctx, tx, teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("팀을 찾을 수 없습니다 teamID=%d %w", teamID, ErrTeamNotFound)
			}
			return fmt.Errorf("팀 조회 실패: %w", err)
		}

		if request.Name != nil && *request.Name != team.Name {
			exists, err := s.teamRepository.ExistsByName(ctx, tx, *request.Name, teamID)
			if err != nil {
				return fmt.Errorf("팀명 중복 확인 실패: %w", err)
			}
			if exists {
				return fmt.Errorf("팀명 중복 name=%s %w", *request.Name, ErrTeamNameTaken)
			}
			team.Name = *request.Name
		}
		if request.City != nil {
			team.City = *request.City
		}
		if request.League != nil {
			team.League = *request.League
		}
		if request.IsOurTeam != nil {
			team.IsOurTeam = *request.IsOurTeam
		}
		if request.IsActive != nil {
			team.IsActive = *request.IsActive
		}

		if err := s.teamRepository.Save(ctx, tx, team); err != nil {
			return fmt.Errorf("팀 수정 실패: %w", err)
		}

		updated = team
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a team. Blocked while any game references it as opponent or
// any player belongs to it.
func (s *TeamService) Delete(ctx context.Context, teamID uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		team, err := s.teamRepository.FindByID(ctx, tx, teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("팀을 찾을 수 없습니다 teamID=%d %w", teamID, ErrTeamNotFound)
			}
			return fmt.Errorf("팀 조회 실패: %w", err)
		}

		gameCount, err := s.teamRepository.CountGamesAgainst(ctx, tx, teamID)
		if err != nil {
			return fmt.Errorf("연결된 경기 확인 실패: %w", err)
		}
		if gameCount > 0 {
			return fmt.Errorf("연결된 경기 %d건 %w", gameCount, ErrTeamHasGames)
		}

		playerCount, err := s.teamRepository.CountPlayers(ctx, tx, teamID)
		if err != nil {
			return fmt.Errorf("소속 선수 확인 실패: %w", err)
		}
		if playerCount > 0 {
			return fmt.Errorf("소속 선수 %d명 %w", playerCount, ErrTeamHasPlayers)
		}

		if err := s.teamRepository.Delete(ctx, tx, team); err != nil {
			return fmt.Errorf("팀 삭제 실패: %w", err)
		}

		log.Info("팀 삭제 완료", "team_id", teamID, "name", team.Name)
		return nil
	})
}
