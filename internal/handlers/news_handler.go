package handlers

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/logger"
	"apnajourney_backend/internal/middleware"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/services/dto"
)

type NewsHandler struct {
	*BaseHandler
	newsService services.NewsService
}

func NewNewsHandler(base *BaseHandler, newsService services.NewsService) *NewsHandler {
	return &NewsHandler{BaseHandler: base, newsService: newsService}
}

func userIdentity(c *gin.Context) services.Identity {
	user := middleware.GetUser(c)
	return services.Identity{ID: user.ID, Kind: models.AuthorKindUser}
}

func adminIdentity(c *gin.Context) services.Identity {
	admin := middleware.GetAdmin(c)
	return services.Identity{ID: admin.ID, Kind: models.AuthorKindAdmin, SuperAdmin: admin.IsSuperAdmin()}
}

// ListPublic handles GET /news. Degrades to an empty page on a backend
// failure, same as the job listing.
func (h *NewsHandler) ListPublic(c *gin.Context) {
	var query dto.ListNewsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	page, limit := ParsePagination(c)

	articles, total, err := h.newsService.ListPublic(&query, page, limit)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "public news listing failed", err)
		h.OKList(c, []models.News{}, dto.NewPagination(page, limit, 0))
		return
	}
	h.OKList(c, articles, dto.NewPagination(page, limit, total))
}

// GetBySlug handles GET /news/:slug.
func (h *NewsHandler) GetBySlug(c *gin.Context) {
	article, err := h.newsService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, article)
}

// CreateByUser handles POST /user/news.
func (h *NewsHandler) CreateByUser(c *gin.Context) {
	user := middleware.GetUser(c)

	var req dto.CreateNewsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	article, err := h.newsService.CreateByUser(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if article.Status == models.NewsStatusDraft {
		h.Created(c, "Draft saved", article)
		return
	}
	h.Created(c, "Article submitted for review", article)
}

// ListMine handles GET /user/news.
func (h *NewsHandler) ListMine(c *gin.Context) {
	var query dto.ListNewsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	page, limit := ParsePagination(c)

	articles, total, err := h.newsService.ListByAuthor(userIdentity(c), &query, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKList(c, articles, dto.NewPagination(page, limit, total))
}

// GetMine handles GET /user/news/:id.
func (h *NewsHandler) GetMine(c *gin.Context) {
	article, err := h.newsService.GetForAuthor(c.Param("id"), userIdentity(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, article)
}

// UpdateByUser handles PUT /user/news/:id.
func (h *NewsHandler) UpdateByUser(c *gin.Context) {
	var req dto.UpdateNewsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	article, err := h.newsService.Update(c.Param("id"), userIdentity(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Article updated", article)
}

// SubmitDraft handles POST /user/news/:id/submit.
func (h *NewsHandler) SubmitDraft(c *gin.Context) {
	user := middleware.GetUser(c)

	article, err := h.newsService.SubmitDraft(c.Param("id"), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Article submitted for review", article)
}

// DeleteByUser handles DELETE /user/news/:id.
func (h *NewsHandler) DeleteByUser(c *gin.Context) {
	if err := h.newsService.Delete(c.Param("id"), userIdentity(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Article deleted", nil)
}

// CreateByAdmin handles POST /admin/news: publishes immediately unless
// saved as a draft.
func (h *NewsHandler) CreateByAdmin(c *gin.Context) {
	var req dto.CreateNewsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	article, err := h.newsService.CreateByAdmin(adminIdentity(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if article.Status == models.NewsStatusDraft {
		h.Created(c, "Draft saved", article)
		return
	}
	h.Created(c, "Article published", article)
}

// AdminList handles GET /admin/news.
func (h *NewsHandler) AdminList(c *gin.Context) {
	var query dto.ListNewsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	page, limit := ParsePagination(c)

	articles, total, err := h.newsService.ListAdmin(&query, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKList(c, articles, dto.NewPagination(page, limit, total))
}

// UpdateByAdmin handles PUT /admin/news/:id.
func (h *NewsHandler) UpdateByAdmin(c *gin.Context) {
	var req dto.UpdateNewsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	article, err := h.newsService.Update(c.Param("id"), adminIdentity(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Article updated", article)
}

// DeleteByAdmin handles DELETE /admin/news/:id.
func (h *NewsHandler) DeleteByAdmin(c *gin.Context) {
	if err := h.newsService.Delete(c.Param("id"), adminIdentity(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Article deleted", nil)
}
