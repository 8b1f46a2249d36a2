package game

import (
	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *GameService
}

func NewGameHandler(gameService *GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

func (h *GameHandler) List(c *gin.Context) {
	skip, limit := handler.Pagination(c, 20)

	var query ListGamesQuery
	if status := c.Query("status"); status != "" {
		query.Status = model.GameStatus(status)
	}

	games, err := h.gameService.List(c.Request.Context(), query, skip, limit)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, games)
}

func (h *GameHandler) Get(c *gin.Context) {
	gameID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameService.Get(c.Request.Context(), gameID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, game)
}

func (h *GameHandler) Create(c *gin.Context) {
	var request CreateGameRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	game, err := h.gameService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(201, game)
}

func (h *GameHandler) Update(c *gin.Context) {
	gameID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request UpdateGameRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	game, err := h.gameService.Update(c.Request.Context(), gameID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, game)
}

func (h *GameHandler) Delete(c *gin.Context) {
	gameID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.gameService.Delete(c.Request.Context(), gameID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "경기가 삭제되었습니다."})
}
