package lineup

import (
	"strconv"

	"github.com/cimile-club/lineup-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type LineupHandler struct {
	lineupService *LineupService
}

func NewLineupHandler(lineupService *LineupService) *LineupHandler {
	return &LineupHandler{
		lineupService: lineupService,
	}
}

func (h *LineupHandler) List(c *gin.Context) {
	skip, limit := handler.Pagination(c, 20)

	var gameID uint32
	if raw := c.Query("gameId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err == nil {
			gameID = uint32(parsed)
		}
	}

	lineups, err := h.lineupService.List(c.Request.Context(), gameID, skip, limit)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, lineups)
}

func (h *LineupHandler) Get(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.lineupService.GetDetail(c.Request.Context(), lineupID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, detail)
}

func (h *LineupHandler) Create(c *gin.Context) {
	var request CreateLineupRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	lineup, err := h.lineupService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(201, lineup)
}

func (h *LineupHandler) Update(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request UpdateLineupRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	lineup, err := h.lineupService.Update(c.Request.Context(), lineupID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, lineup)
}

func (h *LineupHandler) Delete(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.lineupService.Delete(c.Request.Context(), lineupID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "라인업이 삭제되었습니다."})
}

func (h *LineupHandler) AssignPlayer(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request AssignPlayerRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	slot, err := h.lineupService.AssignPlayer(c.Request.Context(), lineupID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(201, slot)
}

func (h *LineupHandler) UpdatePosition(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}
	slotID, ok := handler.PathID(c, "lineupPlayerId")
	if !ok {
		return
	}

	var request UpdatePositionRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	slot, err := h.lineupService.UpdatePosition(c.Request.Context(), lineupID, slotID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, slot)
}

func (h *LineupHandler) RemovePlayer(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}
	slotID, ok := handler.PathID(c, "lineupPlayerId")
	if !ok {
		return
	}

	if err := h.lineupService.RemovePlayer(c.Request.Context(), lineupID, slotID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "라인업에서 제외되었습니다."})
}

func (h *LineupHandler) Copy(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request CopyLineupRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	lineup, err := h.lineupService.Copy(c.Request.Context(), lineupID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(201, lineup)
}

func (h *LineupHandler) GetAttendance(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	attendance, err := h.lineupService.GetAttendance(c.Request.Context(), lineupID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, AttendanceResponse{Attendance: attendance})
}

func (h *LineupHandler) SetAttendance(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request AttendanceRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.lineupService.SetAttendance(c.Request.Context(), lineupID, request.Attendance); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, AttendanceResponse{Attendance: request.Attendance})
}
