package handlers

import (
	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/middleware"
	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	userService services.UserService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, userService services.UserService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		userService: userService,
	}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.UserLogin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Login successful", resp)
}

// Register handles POST /auth/register. Self-signup is closed; the
// endpoint stays mounted so clients get a clear refusal instead of 404.
// The body is never read, so a malformed payload gets the same answer
// as a valid one.
func (h *AuthHandler) Register(c *gin.Context) {
	user, err := h.userService.Register(nil)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, "Account created", user)
}

// Me handles GET /auth/me. Runs behind RequireUser, so the identity is
// already re-fetched and ban-checked.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		h.HandleServiceError(c, apperrors.ErrUnauthorized)
		return
	}

	profile, err := h.authService.CurrentUser(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

// AdminLogin handles POST /admin/auth/login.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.AdminLogin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKMessage(c, "Login successful", resp)
}
