package handlers

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/middleware"
	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

// GetProfile handles GET /user/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	user := middleware.GetUser(c)

	profile, err := h.userService.GetProfile(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

// UpdateProfile handles PUT /user/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := middleware.GetUser(c)

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Profile updated", profile)
}

// List handles GET /admin/users.
func (h *UserHandler) List(c *gin.Context) {
	var query dto.ListUsersQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	page, limit := ParsePagination(c)

	users, total, err := h.userService.ListUsers(&query, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKList(c, users, dto.NewPagination(page, limit, total))
}

// Create handles POST /admin/users: admin-provisioned accounts.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, "User created", user)
}

// Update handles PATCH /admin/users: status and role changes.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "User updated", user)
}
