package routes

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/handlers"
)

// registerUserRoutes mounts the authenticated user surface.
func registerUserRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, gates Gates) {
	api.GET("/auth/me", gates.User, h.AuthHandler.Me)

	// Job postings are created and mutated on the shared /jobs paths;
	// the gin method trees keep these from colliding with the public
	// GET /jobs/:slug surface.
	api.POST("/jobs", gates.User, h.JobHandler.Create)
	api.GET("/jobs/my", gates.User, h.JobHandler.ListMine)
	api.PUT("/jobs/:id", gates.User, h.JobHandler.Update)
	api.DELETE("/jobs/:id", gates.User, h.JobHandler.Delete)

	api.POST("/uploads", gates.User, h.UploadHandler.Upload)

	user := api.Group("/user", gates.User)
	{
		user.GET("/profile", h.UserHandler.GetProfile)
		user.PUT("/profile", h.UserHandler.UpdateProfile)

		user.GET("/jobs/:id", h.JobHandler.GetMine)
		user.GET("/jobs/:id/applications", h.ApplicationHandler.ListForJob)

		user.GET("/applications", h.ApplicationHandler.ListMine)

		user.POST("/news", h.NewsHandler.CreateByUser)
		user.GET("/news", h.NewsHandler.ListMine)
		user.GET("/news/:id", h.NewsHandler.GetMine)
		user.PUT("/news/:id", h.NewsHandler.UpdateByUser)
		user.DELETE("/news/:id", h.NewsHandler.DeleteByUser)
		user.POST("/news/:id/submit", h.NewsHandler.SubmitDraft)
	}
}
