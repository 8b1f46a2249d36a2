package venue

import (
	"strconv"

	"github.com/cimile-club/lineup-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venueService *VenueService
}

func NewVenueHandler(venueService *VenueService) *VenueHandler {
	return &VenueHandler{
		venueService: venueService,
	}
}

func (h *VenueHandler) List(c *gin.Context) {
	skip, limit := handler.Pagination(c, 100)

	var active *bool
	if raw, ok := c.GetQuery("active"); ok {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			active = &parsed
		}
	}

	venues, err := h.venueService.List(c.Request.Context(), active, skip, limit)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, venues)
}

func (h *VenueHandler) Get(c *gin.Context) {
	venueID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	venue, err := h.venueService.Get(c.Request.Context(), venueID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, venue)
}

func (h *VenueHandler) Create(c *gin.Context) {
	var request CreateVenueRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(201, venue)
}

func (h *VenueHandler) Update(c *gin.Context) {
	venueID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request UpdateVenueRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	venue, err := h.venueService.Update(c.Request.Context(), venueID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, venue)
}

func (h *VenueHandler) Delete(c *gin.Context) {
	venueID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.venueService.Delete(c.Request.Context(), venueID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "경기장이 삭제되었습니다."})
}
