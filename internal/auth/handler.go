package auth

import (
	sharedContext "github.com/cimile-club/lineup-api/internal/shared/context"
	"github.com/cimile-club/lineup-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (a *AuthHandler) Login(c *gin.Context) {
	var request LoginRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Login(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, response)
}

func (a *AuthHandler) Register(c *gin.Context) {
	var request RegisterRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Register(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(201, response)
}

func (a *AuthHandler) Me(c *gin.Context) {
	userID, ok := sharedContext.RequireUserID(c)
	if !ok {
		return
	}

	response, err := a.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, response)
}
