package handlers

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/services/dto"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{BaseHandler: base, searchService: searchService}
}

// Search handles GET /search across the public job and news surfaces.
func (h *SearchHandler) Search(c *gin.Context) {
	var query dto.SearchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	results, err := h.searchService.Search(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, results)
}
