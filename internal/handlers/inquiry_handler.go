package handlers

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/services/dto"
)

type InquiryHandler struct {
	*BaseHandler
	inquiryService services.InquiryService
}

func NewInquiryHandler(base *BaseHandler, inquiryService services.InquiryService) *InquiryHandler {
	return &InquiryHandler{BaseHandler: base, inquiryService: inquiryService}
}

// Create handles POST /inquiries, the public contact form.
func (h *InquiryHandler) Create(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiryService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, "Thanks for reaching out, we will get back to you", inquiry)
}

// List handles GET /admin/inquiries.
func (h *InquiryHandler) List(c *gin.Context) {
	var query dto.ListInquiriesQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	page, limit := ParsePagination(c)

	inquiries, total, err := h.inquiryService.List(&query, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKList(c, inquiries, dto.NewPagination(page, limit, total))
}

// Get handles GET /admin/inquiries/:id.
func (h *InquiryHandler) Get(c *gin.Context) {
	inquiry, err := h.inquiryService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, inquiry)
}

// Update handles PATCH /admin/inquiries/:id.
func (h *InquiryHandler) Update(c *gin.Context) {
	var req dto.UpdateInquiryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiryService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Inquiry updated", inquiry)
}

// Delete handles DELETE /admin/inquiries/:id.
func (h *InquiryHandler) Delete(c *gin.Context) {
	if err := h.inquiryService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Inquiry deleted", nil)
}
