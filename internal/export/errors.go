package export

import (
	"net/http"

	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
)

const (
	exportLineupMissing = "EXPORT_LINEUP_NOT_FOUND" // errInfo
)

var (
	ErrExportLineupMissing = sharedError.NewDomainError(exportLineupMissing)
)

func init() {
	sharedError.RegisterDomainErrorResponse(exportLineupMissing, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "EXPORT-001",
		Message: "라인업을 찾을 수 없습니다.",
	})
}
