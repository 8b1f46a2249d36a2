package game

import (
	"net/http"

	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
)

const (
	gameNotFound      = "GAME_NOT_FOUND"       // errInfo
	gameVenueMissing  = "GAME_VENUE_NOT_FOUND" // errInfo
	gameTeamMissing   = "GAME_TEAM_NOT_FOUND"  // errInfo
	gameInvalidType   = "GAME_INVALID_TYPE"    // errInfo
	gameInvalidStatus = "GAME_INVALID_STATUS"  // errInfo
	gameHasLineups    = "GAME_HAS_LINEUPS"     // errInfo
)

var (
	ErrGameNotFound      = sharedError.NewDomainError(gameNotFound)
	ErrGameVenueMissing  = sharedError.NewDomainError(gameVenueMissing)
	ErrGameTeamMissing   = sharedError.NewDomainError(gameTeamMissing)
	ErrGameInvalidType   = sharedError.NewDomainError(gameInvalidType)
	ErrGameInvalidStatus = sharedError.NewDomainError(gameInvalidStatus)
	ErrGameHasLineups    = sharedError.NewDomainError(gameHasLineups)
)

func init() {
	sharedError.RegisterDomainErrorResponse(gameNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "GAME-001",
		Message: "경기를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(gameVenueMissing, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "GAME-002",
		Message: "경기장을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(gameTeamMissing, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "GAME-003",
		Message: "상대 팀을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(gameInvalidType, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "GAME-004",
		Message: "알 수 없는 경기 유형입니다. (REGULAR/PLAYOFF/FRIENDLY)",
	})

	sharedError.RegisterDomainErrorResponse(gameInvalidStatus, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "GAME-005",
		Message: "알 수 없는 경기 상태입니다.",
	})

	sharedError.RegisterDomainErrorResponse(gameHasLineups, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "GAME-006",
		Message: "이 경기에 라인업이 있습니다. 먼저 라인업을 삭제해 주세요.",
	})
}
