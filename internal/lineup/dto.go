package lineup

import "github.com/cimile-club/lineup-api/internal/model"

type CreateLineupRequest struct {
	GameID    uint32 `json:"gameId" binding:"required"`
	Name      string `json:"name" binding:"required,min=1,max=200"`
	IsDefault bool   `json:"isDefault"`
}

type UpdateLineupRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=200"`
	IsDefault *bool   `json:"isDefault"`
}

type AssignPlayerRequest struct {
	PlayerID uint32 `json:"playerId" binding:"required"`
	Position string `json:"position" binding:"max=20"`
	// 타순: 0은 투수 전용, 1~9는 타자. required 검증 때문에 포인터로 받는다.
	BattingOrder *int  `json:"battingOrder" binding:"required"`
	IsStarter    *bool `json:"isStarter"`
}

type UpdatePositionRequest struct {
	Position string `json:"position" binding:"max=20"`
	// true면 포지션 충돌 검사를 건너뛰고 덮어쓴다 (드래그 재배치용).
	Force bool `json:"force"`
}

type CopyLineupRequest struct {
	NewName   string  `json:"newName" binding:"required,min=1,max=200"`
	NewGameID *uint32 `json:"newGameId"`
}

type AttendanceRequest struct {
	Attendance map[uint32]bool `json:"attendance" binding:"required"`
}

type AttendanceResponse struct {
	Attendance map[uint32]bool `json:"attendance"`
}

type LineupDetailResponse struct {
	model.Lineup
	Players []model.LineupPlayer `json:"players"`
}
