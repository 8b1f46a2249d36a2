package export

import (
	"fmt"

	"github.com/cimile-club/lineup-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type ExportHandler struct {
	exportService *ExportService
}

func NewExportHandler(exportService *ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

func (h *ExportHandler) LineupSpreadsheet(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.exportService.LineupSpreadsheet(c.Request.Context(), lineupID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	respondFile(c, contentTypeXLSX, filename, data)
}

func (h *ExportHandler) LineupPDF(c *gin.Context) {
	lineupID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.exportService.LineupPDF(c.Request.Context(), lineupID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	respondFile(c, contentTypePDF, filename, data)
}

func (h *ExportHandler) RosterSpreadsheet(c *gin.Context) {
	data, filename, err := h.exportService.RosterSpreadsheet(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	respondFile(c, contentTypeXLSX, filename, data)
}

func respondFile(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, contentType, data)
}
