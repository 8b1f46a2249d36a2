package team

import (
	"strconv"

	"github.com/cimile-club/lineup-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *TeamService
}

func NewTeamHandler(teamService *TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

func (h *TeamHandler) List(c *gin.Context) {
	skip, limit := handler.Pagination(c, 20)

	var query ListTeamsQuery
	if raw, ok := c.GetQuery("active"); ok {
		if active, err := strconv.ParseBool(raw); err == nil {
			query.Active = &active
		}
	}
	query.League = c.Query("league")

	teams, err := h.teamService.List(c.Request.Context(), query, skip, limit)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, teams)
}

func (h *TeamHandler) Get(c *gin.Context) {
	teamID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.Get(c.Request.Context(), teamID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, team)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var request CreateTeamRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(201, team)
}

func (h *TeamHandler) Update(c *gin.Context) {
	teamID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request UpdateTeamRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), teamID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, team)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	teamID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), teamID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "팀이 삭제되었습니다."})
}
