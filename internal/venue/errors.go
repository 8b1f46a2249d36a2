package venue

import (
	"net/http"

	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
)

const (
	venueNotFound  = "VENUE_NOT_FOUND"  // errInfo
	venueNameTaken = "VENUE_NAME_TAKEN" // errInfo
	venueInUse     = "VENUE_IN_USE"     // errInfo
)

var (
	ErrVenueNotFound  = sharedError.NewDomainError(venueNotFound)
	ErrVenueNameTaken = sharedError.NewDomainError(venueNameTaken)
	ErrVenueInUse     = sharedError.NewDomainError(venueInUse)
)

func init() {
	sharedError.RegisterDomainErrorResponse(venueNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "VENUE-001",
		Message: "경기장을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(venueNameTaken, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "VENUE-002",
		Message: "이미 존재하는 경기장명입니다.",
	})

	sharedError.RegisterDomainErrorResponse(venueInUse, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "VENUE-003",
		Message: "이 경기장을 사용하는 경기가 있습니다. 먼저 해당 경기들을 수정하거나 삭제해 주세요.",
	})
}
