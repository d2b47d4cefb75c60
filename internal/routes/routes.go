package routes

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/handlers"
)

// Gates are the auth middlewares, built once in app wiring with the
// token issuers and credential stores behind them.
type Gates struct {
	User         gin.HandlerFunc
	OptionalUser gin.HandlerFunc
	Admin        gin.HandlerFunc
	SuperAdmin   gin.HandlerFunc
}

// RegisterRoutes mounts the whole HTTP surface under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, gates Gates) {
	api := router.Group("/api/v1")

	registerPublicRoutes(api, h, gates)
	registerUserRoutes(api, h, gates)
	registerAdminRoutes(api, h, gates)
}
