package routes

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/handlers"
)

// registerPublicRoutes mounts everything reachable without a token.
func registerPublicRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, gates Gates) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/register", h.AuthHandler.Register)
	}

	api.POST("/admin/auth/login", h.AuthHandler.AdminLogin)

	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.JobHandler.ListPublic)
		jobs.GET("/:slug", h.JobHandler.GetBySlug)
		jobs.GET("/:slug/related", h.JobHandler.Related)

		// Applying accepts an optional token: logged-in applicants are
		// de-duplicated per job, anonymous ones pass through.
		jobs.POST("/apply", gates.OptionalUser, h.ApplicationHandler.Apply)
	}

	news := api.Group("/news")
	{
		news.GET("", h.NewsHandler.ListPublic)
		news.GET("/:slug", h.NewsHandler.GetBySlug)
	}

	stats := api.Group("/stats")
	{
		stats.GET("", h.StatsHandler.Public)
		stats.GET("/jobs", h.StatsHandler.Jobs)
		stats.GET("/news", h.StatsHandler.News)
	}

	api.POST("/inquiries", h.InquiryHandler.Create)
	api.GET("/search", h.SearchHandler.Search)
	api.GET("/files/*path", h.UploadHandler.Serve)
}
