package handlers

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/middleware"
	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/services/dto"
)

type ModerationHandler struct {
	*BaseHandler
	moderationService services.ModerationService
}

func NewModerationHandler(base *BaseHandler, moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{BaseHandler: base, moderationService: moderationService}
}

// Pending handles GET /admin/content/pending: the moderation queue.
func (h *ModerationHandler) Pending(c *gin.Context) {
	page, limit := ParsePagination(c)

	pending, err := h.moderationService.PendingContent(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, pending)
}

// Moderate handles PATCH /admin/content/approve.
func (h *ModerationHandler) Moderate(c *gin.Context) {
	admin := middleware.GetAdmin(c)

	var req dto.ModerateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	content, err := h.moderationService.Moderate(admin.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Moderation applied", content)
}
