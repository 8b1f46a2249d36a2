package auth

import "github.com/cimile-club/lineup-api/internal/model"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=30"`
	Password string `json:"password" binding:"required,min=8,max=30"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint32         `json:"id"`
	Username string         `json:"username"`
	Role     model.UserRole `json:"role"`
	IsActive bool           `json:"isActive"`
}
