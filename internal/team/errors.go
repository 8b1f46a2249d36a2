package team

import (
	"net/http"

	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
)

const (
	teamNotFound   = "TEAM_NOT_FOUND"   // errInfo
	teamNameTaken  = "TEAM_NAME_TAKEN"  // errInfo
	teamHasGames   = "TEAM_HAS_GAMES"   // errInfo
	teamHasPlayers = "TEAM_HAS_PLAYERS" // errInfo
)

var (
	ErrTeamNotFound   = sharedError.NewDomainError(teamNotFound)
	ErrTeamNameTaken  = sharedError.NewDomainError(teamNameTaken)
	ErrTeamHasGames   = sharedError.NewDomainError(teamHasGames)
	ErrTeamHasPlayers = sharedError.NewDomainError(teamHasPlayers)
)

func init() {
	sharedError.RegisterDomainErrorResponse(teamNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "TEAM-001",
		Message: "팀을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(teamNameTaken, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "TEAM-002",
		Message: "팀명이 이미 존재합니다.",
	})

	sharedError.RegisterDomainErrorResponse(teamHasGames, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "TEAM-003",
		Message: "연결된 경기가 있습니다. 먼저 경기를 삭제해 주세요.",
	})

	sharedError.RegisterDomainErrorResponse(teamHasPlayers, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "TEAM-004",
		Message: "소속된 선수가 있습니다. 선수의 팀을 변경하거나 선수를 삭제해 주세요.",
	})
}
