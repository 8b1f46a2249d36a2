package player

import (
	"strconv"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *PlayerService
}

func NewPlayerHandler(playerService *PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

func (h *PlayerHandler) List(c *gin.Context) {
	skip, limit := handler.Pagination(c, 20)

	var query ListPlayersQuery
	if raw, ok := c.GetQuery("active"); ok {
		if active, err := strconv.ParseBool(raw); err == nil {
			query.Active = &active
		}
	}
	if role := c.Query("role"); role != "" {
		query.Role = model.PlayerRole(role)
	}
	if raw := c.Query("teamId"); raw != "" {
		if teamID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			query.TeamID = uint32(teamID)
		}
	}

	players, err := h.playerService.List(c.Request.Context(), query, skip, limit)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, players)
}

func (h *PlayerHandler) Get(c *gin.Context) {
	playerID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	player, err := h.playerService.Get(c.Request.Context(), playerID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, player)
}

func (h *PlayerHandler) Create(c *gin.Context) {
	var request CreatePlayerRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	player, err := h.playerService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(201, player)
}

func (h *PlayerHandler) Update(c *gin.Context) {
	playerID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request UpdatePlayerRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	player, err := h.playerService.Update(c.Request.Context(), playerID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, player)
}

func (h *PlayerHandler) Delete(c *gin.Context) {
	playerID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.playerService.Delete(c.Request.Context(), playerID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "선수가 삭제되었습니다."})
}
