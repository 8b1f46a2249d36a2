package game

import (
	"time"

	"github.com/cimile-club/lineup-api/internal/model"
)

type CreateGameRequest struct {
	PlayedAt       time.Time `json:"playedAt" binding:"required"`
	VenueID        uint32    `json:"venueId" binding:"required"`
	OpponentTeamID uint32    `json:"opponentTeamId" binding:"required"`
	IsHome         bool      `json:"isHome"`
	GameType       string    `json:"gameType" binding:"omitempty,max=20"`
	Notes          string    `json:"notes"`
}

type UpdateGameRequest struct {
	PlayedAt       *time.Time `json:"playedAt"`
	VenueID        *uint32    `json:"venueId"`
	OpponentTeamID *uint32    `json:"opponentTeamId"`
	IsHome         *bool      `json:"isHome"`
	GameType       *string    `json:"gameType" binding:"omitempty,max=20"`
	Status         *string    `json:"status" binding:"omitempty,max=20"`
	Notes          *string    `json:"notes"`
}

type ListGamesQuery struct {
	Status model.GameStatus
}
