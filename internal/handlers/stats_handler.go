package handlers

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/logger"
	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/services/dto"
)

type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{BaseHandler: base, statsService: statsService}
}

// Public handles GET /stats, the landing-page counters. Degrades to
// zeros on a backend failure.
func (h *StatsHandler) Public(c *gin.Context) {
	stats, err := h.statsService.Public()
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "public stats failed", err)
		h.OK(c, &dto.PublicStats{})
		return
	}
	h.OK(c, stats)
}

// Dashboard handles GET /admin/stats.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}

// Jobs handles GET /stats/jobs.
func (h *StatsHandler) Jobs(c *gin.Context) {
	stats, err := h.statsService.Jobs()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}

// News handles GET /stats/news.
func (h *StatsHandler) News(c *gin.Context) {
	stats, err := h.statsService.News()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}
