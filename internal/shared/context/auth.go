package context

import (
	"net/http"

	"github.com/cimile-club/lineup-api/internal/model"
	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
	"github.com/cimile-club/lineup-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Context keys for storing user authentication information
const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
	UserRoleKey = "user_role"
)

func GetUserID(c *gin.Context) (uint32, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint32)
	if !ok {
		return 0, false
	}

	return id, true
}

func GetUserRole(c *gin.Context) (model.UserRole, bool) {
	roleValue, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := roleValue.(model.UserRole)
	if !ok {
		return "", false
	}

	return role, true
}

// RequireUserID retrieves the authenticated user's ID from the Gin context.
// If the user ID is not found, automatically sends an authentication error response.
// Use this in most handlers to reduce boilerplate.
func RequireUserID(c *gin.Context) (uint32, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "로그인을 해주세요.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 사용자 ID가 존재하지 않습니다.")
		return 0, false
	}
	return userID, true
}
