package routes

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/auth"
	"apnajourney_backend/internal/handlers"
	"apnajourney_backend/internal/middleware"
)

// registerAdminRoutes mounts the moderation panel. Everything here sits
// behind the admin gate; individual groups add permission checks on top.
func registerAdminRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, gates Gates) {
	admin := api.Group("/admin", gates.Admin)

	content := admin.Group("/content", middleware.RequirePermission(auth.PermContentModerate))
	{
		content.GET("/pending", h.ModerationHandler.Pending)
		content.PATCH("/approve", h.ModerationHandler.Moderate)
	}

	jobs := admin.Group("/jobs")
	{
		jobs.GET("", h.JobHandler.AdminList)
		jobs.GET("/:id/applications", h.ApplicationHandler.AdminListForJob)
		jobs.PATCH("/:id", middleware.RequirePermission(auth.PermContentWrite), h.JobHandler.AdminUpdate)
		jobs.DELETE("/:id", middleware.RequirePermission(auth.PermContentDelete), h.JobHandler.AdminDelete)
	}

	news := admin.Group("/news", middleware.RequirePermission(auth.PermContentWrite))
	{
		news.POST("", h.NewsHandler.CreateByAdmin)
		news.GET("", h.NewsHandler.AdminList)
		news.PUT("/:id", h.NewsHandler.UpdateByAdmin)
		news.DELETE("/:id", middleware.RequirePermission(auth.PermContentDelete), h.NewsHandler.DeleteByAdmin)
	}

	admin.PATCH("/applications/:id", h.ApplicationHandler.UpdateStatus)

	users := admin.Group("/users", middleware.RequirePermission(auth.PermUsersWrite))
	{
		users.GET("", h.UserHandler.List)
		users.POST("", h.UserHandler.Create)
		users.PATCH("", h.UserHandler.Update)
	}

	// Inquiry management lives on the shared /inquiries paths next to
	// the public POST, behind the admin gate.
	inquiries := api.Group("/inquiries", gates.Admin, middleware.RequirePermission(auth.PermInquiriesManage))
	{
		inquiries.GET("", h.InquiryHandler.List)
		inquiries.GET("/:id", h.InquiryHandler.Get)
		inquiries.PUT("/:id", h.InquiryHandler.Update)
		inquiries.DELETE("/:id", h.InquiryHandler.Delete)
	}

	// Per-section breakdowns are public under /stats; the dashboard
	// aggregate stays admin-only.
	admin.GET("/stats", middleware.RequirePermission(auth.PermStatsRead), h.StatsHandler.Dashboard)

	admin.GET("/export/:entity", middleware.RequirePermission(auth.PermExport), h.ExportHandler.Export)
}
