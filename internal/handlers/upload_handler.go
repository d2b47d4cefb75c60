package handlers

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/middleware"
	"apnajourney_backend/internal/services"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{BaseHandler: base, uploadService: uploadService}
}

// Upload handles POST /uploads: resumes and article images.
func (h *UploadHandler) Upload(c *gin.Context) {
	user := middleware.GetUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(c.Request.Context(), user.ID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, "File uploaded", result)
}

// Serve handles GET /files/*path.
func (h *UploadHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	rc, err := h.uploadService.Get(c.Request.Context(), path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Status(200)
	_, _ = io.Copy(c.Writer, rc)
}
