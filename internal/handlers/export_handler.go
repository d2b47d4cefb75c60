package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/services"
)

type ExportHandler struct {
	*BaseHandler
	exportService services.ExportService
}

func NewExportHandler(base *BaseHandler, exportService services.ExportService) *ExportHandler {
	return &ExportHandler{BaseHandler: base, exportService: exportService}
}

var exportableEntities = map[string]bool{
	"jobs":         true,
	"news":         true,
	"applications": true,
	"inquiries":    true,
	"users":        true,
}

// Export handles GET /admin/export/:entity, streaming a CSV download.
func (h *ExportHandler) Export(c *gin.Context) {
	entity := c.Param("entity")
	if !exportableEntities[entity] {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Unknown export entity"))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename(entity)))
	c.Status(http.StatusOK)

	if err := h.exportService.ExportCSV(c.Writer, entity); err != nil {
		// Headers may already be out; at minimum surface the failure to
		// the logs and abort the stream.
		h.HandleServiceError(c, err)
	}
}
