package player

import (
	"net/http"

	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
)

const (
	playerNotFound    = "PLAYER_NOT_FOUND"      // errInfo
	playerNumberTaken = "PLAYER_NUMBER_TAKEN"   // errInfo
	playerInvalidRole = "PLAYER_INVALID_ROLE"   // errInfo
	playerTeamMissing = "PLAYER_TEAM_NOT_FOUND" // errInfo
)

var (
	ErrPlayerNotFound    = sharedError.NewDomainError(playerNotFound)
	ErrPlayerNumberTaken = sharedError.NewDomainError(playerNumberTaken)
	ErrPlayerInvalidRole = sharedError.NewDomainError(playerInvalidRole)
	ErrPlayerTeamMissing = sharedError.NewDomainError(playerTeamMissing)
)

func init() {
	sharedError.RegisterDomainErrorResponse(playerNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "PLAYER-001",
		Message: "선수를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(playerNumberTaken, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "PLAYER-002",
		Message: "이미 사용 중인 등번호입니다.",
	})

	sharedError.RegisterDomainErrorResponse(playerInvalidRole, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "PLAYER-003",
		Message: "알 수 없는 선수 역할입니다.",
	})

	sharedError.RegisterDomainErrorResponse(playerTeamMissing, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "PLAYER-004",
		Message: "소속 팀을 찾을 수 없습니다.",
	})
}
