package handlers

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/middleware"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, appService: appService}
}

// Apply handles POST /applications. Runs behind OptionalUser: an
// authenticated applicant is recorded against their account and
// de-duplicated, an anonymous one is accepted as-is.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	var userID *string
	if user := middleware.GetUser(c); user != nil {
		userID = &user.ID
	}

	app, err := h.appService.Apply(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, "Application submitted", app)
}

// ListMine handles GET /user/applications.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	user := middleware.GetUser(c)
	page, limit := ParsePagination(c)

	apps, total, err := h.appService.ListMine(user.ID, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKList(c, apps, dto.NewPagination(page, limit, total))
}

// ListForJob handles GET /user/jobs/:id/applications for the job owner.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	user := middleware.GetUser(c)
	page, limit := ParsePagination(c)

	caller := services.Identity{ID: user.ID, Kind: models.AuthorKindUser}
	apps, total, err := h.appService.ListForJob(c.Param("id"), caller, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKList(c, apps, dto.NewPagination(page, limit, total))
}

// AdminListForJob handles GET /admin/jobs/:id/applications.
func (h *ApplicationHandler) AdminListForJob(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	page, limit := ParsePagination(c)

	caller := services.Identity{ID: admin.ID, Kind: models.AuthorKindAdmin, SuperAdmin: admin.IsSuperAdmin()}
	apps, total, err := h.appService.ListForJob(c.Param("id"), caller, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKList(c, apps, dto.NewPagination(page, limit, total))
}

// UpdateStatus handles PATCH /admin/applications/:id.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.appService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Application updated", app)
}
