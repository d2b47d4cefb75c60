package handlers

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/logger"
	"apnajourney_backend/internal/middleware"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

// ListPublic handles GET /jobs. The public listing degrades to an
// empty page on a backend failure instead of erroring the whole site.
func (h *JobHandler) ListPublic(c *gin.Context) {
	var query dto.ListJobsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	page, limit := ParsePagination(c)

	jobs, total, err := h.jobService.ListPublic(&query, page, limit)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "public job listing failed", err)
		h.OKList(c, []models.Job{}, dto.NewPagination(page, limit, 0))
		return
	}
	h.OKList(c, jobs, dto.NewPagination(page, limit, total))
}

// GetBySlug handles GET /jobs/:slug.
func (h *JobHandler) GetBySlug(c *gin.Context) {
	job, err := h.jobService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

// Related handles GET /jobs/:slug/related.
func (h *JobHandler) Related(c *gin.Context) {
	limit := parseQueryInt(c, "limit", 5)

	jobs, err := h.jobService.Related(c.Param("slug"), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, jobs)
}

// Create handles POST /jobs.
func (h *JobHandler) Create(c *gin.Context) {
	user := middleware.GetUser(c)

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, "Job submitted for review", job)
}

// ListMine handles GET /jobs/my.
func (h *JobHandler) ListMine(c *gin.Context) {
	user := middleware.GetUser(c)
	page, limit := ParsePagination(c)

	jobs, total, err := h.jobService.ListByOwner(user.ID, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKList(c, jobs, dto.NewPagination(page, limit, total))
}

// GetMine handles GET /user/jobs/:id: the owner's view, any status.
func (h *JobHandler) GetMine(c *gin.Context) {
	user := middleware.GetUser(c)

	job, err := h.jobService.GetForOwner(c.Param("id"), user.ID, false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

// Update handles PUT /jobs/:id. Any edit resubmits the job for
// moderation.
func (h *JobHandler) Update(c *gin.Context) {
	user := middleware.GetUser(c)

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Param("id"), user.ID, false, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Job updated and resubmitted for review", job)
}

// Delete handles DELETE /jobs/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	user := middleware.GetUser(c)

	if err := h.jobService.Delete(c.Param("id"), user.ID, false); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Job deleted", nil)
}

// AdminList handles GET /admin/jobs: every status, full filters.
func (h *JobHandler) AdminList(c *gin.Context) {
	var query dto.ListJobsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	page, limit := ParsePagination(c)

	jobs, total, err := h.jobService.ListAdmin(&query, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKList(c, jobs, dto.NewPagination(page, limit, total))
}

// AdminUpdate handles PATCH /admin/jobs/:id. Edits go through the same
// path as owner edits, so the posting reenters the moderation queue.
func (h *JobHandler) AdminUpdate(c *gin.Context) {
	admin := middleware.GetAdmin(c)

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Param("id"), admin.ID, true, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Job updated and resubmitted for review", job)
}

// AdminDelete handles DELETE /admin/jobs/:id.
func (h *JobHandler) AdminDelete(c *gin.Context) {
	admin := middleware.GetAdmin(c)

	if err := h.jobService.Delete(c.Param("id"), admin.ID, true); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Job deleted", nil)
}
