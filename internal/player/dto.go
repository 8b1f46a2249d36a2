package player

import "github.com/cimile-club/lineup-api/internal/model"

type CreatePlayerRequest struct {
	Name               string  `json:"name" binding:"required,min=1,max=100"`
	Number             *int    `json:"number" binding:"omitempty,min=0,max=999"`
	Phone              string  `json:"phone" binding:"omitempty,phone"`
	Email              string  `json:"email" binding:"omitempty,email,max=100"`
	Role               string  `json:"role" binding:"omitempty,max=20"`
	TeamID             *uint32 `json:"teamId"`
	PositionPreference string  `json:"positionPreference" binding:"omitempty,max=20"`
	PhotoURL           string  `json:"photoUrl" binding:"omitempty,url"`
	Notes              string  `json:"notes"`
}

type UpdatePlayerRequest struct {
	Name               *string `json:"name" binding:"omitempty,min=1,max=100"`
	Number             *int    `json:"number" binding:"omitempty,min=0,max=999"`
	Phone              *string `json:"phone" binding:"omitempty,phone"`
	Email              *string `json:"email" binding:"omitempty,email,max=100"`
	Role               *string `json:"role" binding:"omitempty,max=20"`
	TeamID             *uint32 `json:"teamId"`
	PositionPreference *string `json:"positionPreference" binding:"omitempty,max=20"`
	PhotoURL           *string `json:"photoUrl" binding:"omitempty,url"`
	Notes              *string `json:"notes"`
	IsActive           *bool   `json:"isActive"`
}

type ListPlayersQuery struct {
	Active *bool
	Role   model.PlayerRole
	TeamID uint32
}
