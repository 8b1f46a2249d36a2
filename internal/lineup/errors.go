package lineup

import (
	"net/http"

	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
)

const (
	lineupNotFound       = "LINEUP_NOT_FOUND"        // errInfo
	lineupGameMissing    = "LINEUP_GAME_NOT_FOUND"   // errInfo
	lineupPlayerMissing  = "LINEUP_PLAYER_NOT_FOUND" // errInfo
	slotPlayerNotFound   = "SLOT_NOT_FOUND"          // errInfo
	playerAlreadyBatting = "PLAYER_ALREADY_BATTING"  // errInfo
	playerAlreadyPitcher = "PLAYER_ALREADY_PITCHER"  // errInfo
	positionTaken        = "POSITION_TAKEN"          // errInfo
	invalidBattingOrder  = "INVALID_BATTING_ORDER"   // errInfo
)

var (
	ErrLineupNotFound       = sharedError.NewDomainError(lineupNotFound)
	ErrLineupGameMissing    = sharedError.NewDomainError(lineupGameMissing)
	ErrLineupPlayerMissing  = sharedError.NewDomainError(lineupPlayerMissing)
	ErrSlotNotFound         = sharedError.NewDomainError(slotPlayerNotFound)
	ErrPlayerAlreadyBatting = sharedError.NewDomainError(playerAlreadyBatting)
	ErrPlayerAlreadyPitcher = sharedError.NewDomainError(playerAlreadyPitcher)
	ErrPositionTaken        = sharedError.NewDomainError(positionTaken)
	ErrInvalidBattingOrder  = sharedError.NewDomainError(invalidBattingOrder)
)

func init() {
	sharedError.RegisterDomainErrorResponse(lineupNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LINEUP-001",
		Message: "라인업을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(lineupGameMissing, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LINEUP-002",
		Message: "경기를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(lineupPlayerMissing, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LINEUP-003",
		Message: "선수를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(slotPlayerNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LINEUP-004",
		Message: "라인업에서 해당 선수를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(playerAlreadyBatting, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LINEUP-005",
		Message: "이미 타순에 배정된 선수입니다.",
	})

	sharedError.RegisterDomainErrorResponse(playerAlreadyPitcher, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LINEUP-006",
		Message: "이미 투수로 배정된 선수입니다.",
	})

	sharedError.RegisterDomainErrorResponse(positionTaken, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LINEUP-007",
		Message: "이미 다른 선수에게 배정된 포지션입니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidBattingOrder, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LINEUP-008",
		Message: "타순은 0(투수)부터 9 사이여야 합니다.",
	})
}
