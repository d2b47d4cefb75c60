package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/auth"
	"apnajourney_backend/internal/logger"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
)

// Context keys set by the auth gates and read by handlers.
const (
	CtxUserKey  = "currentUser"
	CtxAdminKey = "currentAdmin"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// RequireUser verifies a user-class token and re-fetches the account so
// a ban or deletion takes effect immediately, not at token expiry.
func RequireUser(issuer *auth.TokenIssuer, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		user, err := userRepo.FindByID(claims.Subject)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Account no longer exists"))
			return
		}
		if user.IsBanned() {
			apperrors.HandleError(c, apperrors.ErrUserBanned)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(CtxUserKey, user)
		c.Next()
	}
}

// RequireAdmin verifies an admin-class token, re-fetches the admin, and
// stamps lastLogin. The stamp is best-effort.
func RequireAdmin(issuer *auth.TokenIssuer, adminRepo repositories.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		admin, err := adminRepo.FindByID(claims.Subject)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Account no longer exists"))
			return
		}
		if admin.Status != models.AdminStatusActive {
			apperrors.HandleError(c, apperrors.ErrAdminInactive)
			return
		}

		if err := adminRepo.UpdateLastLogin(admin.ID, time.Now()); err != nil {
			logger.WithError(err).Warn("failed to stamp admin last login", "admin_id", admin.ID)
		}

		ctx := logger.WithUserID(c.Request.Context(), admin.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(CtxAdminKey, admin)
		c.Next()
	}
}

// OptionalUser resolves a user identity when a valid token is present
// but lets anonymous requests through. Used on the public application
// endpoint, where a logged-in applicant is de-duplicated.
func OptionalUser(issuer *auth.TokenIssuer, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := userRepo.FindByID(claims.Subject)
		if err != nil || user.IsBanned() {
			c.Next()
			return
		}

		c.Set(CtxUserKey, user)
		c.Next()
	}
}

// RequireSuperAdmin runs after RequireAdmin.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := GetAdmin(c)
		if admin == nil || !admin.IsSuperAdmin() {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequirePermission runs after RequireAdmin and gates on the admin
// role's permission set.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := GetAdmin(c)
		if admin == nil || !auth.HasPermission(string(admin.Role), permission) {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetUser returns the authenticated user, or nil outside RequireUser.
func GetUser(c *gin.Context) *models.User {
	val, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	user, _ := val.(*models.User)
	return user
}

// GetAdmin returns the authenticated admin, or nil outside RequireAdmin.
func GetAdmin(c *gin.Context) *models.Admin {
	val, ok := c.Get(CtxAdminKey)
	if !ok {
		return nil
	}
	admin, _ := val.(*models.Admin)
	return admin
}
