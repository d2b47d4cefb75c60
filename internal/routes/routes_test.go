package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"apnajourney_backend/internal/handlers"
	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/validator"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pass := func(c *gin.Context) { c.Next() }
	gates := Gates{User: pass, OptionalUser: pass, Admin: pass, SuperAdmin: pass}

	router := gin.New()
	RegisterRoutes(router, handlers.NewAppHandlers(validator.New(), &services.ServiceContainer{}), gates)

	got := make(map[string]bool)
	for _, r := range router.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	return got
}

func TestRegisterRoutes_Surface(t *testing.T) {
	got := registeredRoutes(t)

	want := []string{
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/register",
		"GET /api/v1/auth/me",
		"POST /api/v1/admin/auth/login",

		"GET /api/v1/jobs",
		"GET /api/v1/jobs/:slug",
		"GET /api/v1/jobs/:slug/related",
		"POST /api/v1/jobs/apply",
		"POST /api/v1/jobs",
		"PUT /api/v1/jobs/:id",
		"DELETE /api/v1/jobs/:id",

		"GET /api/v1/news",
		"GET /api/v1/news/:slug",

		"GET /api/v1/stats",
		"GET /api/v1/stats/jobs",
		"GET /api/v1/stats/news",
		"GET /api/v1/search",
		"POST /api/v1/inquiries",
		"GET /api/v1/files/*path",

		"GET /api/v1/admin/content/pending",
		"PATCH /api/v1/admin/content/approve",
		"GET /api/v1/admin/jobs",
		"PATCH /api/v1/admin/jobs/:id",
		"DELETE /api/v1/admin/jobs/:id",
		"GET /api/v1/admin/stats",
		"GET /api/v1/admin/export/:entity",
	}
	for _, route := range want {
		assert.True(t, got[route], "missing route %s", route)
	}
}
