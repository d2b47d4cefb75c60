package dto

import (
	"time"

	"apnajourney_backend/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO is the user shape returned to clients; the password hash
// never leaves the service layer.
type UserDTO struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	ResumeURL string            `json:"resumeUrl,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

type AdminDTO struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Role      models.AdminRole   `json:"role"`
	Status    models.AdminStatus `json:"status"`
	LastLogin *time.Time         `json:"lastLogin,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

type UserLoginResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type AdminLoginResponse struct {
	Admin AdminDTO `json:"admin"`
	Token string   `json:"token"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		ResumeURL: u.ResumeURL,
		CreatedAt: u.CreatedAt,
	}
}

func NewAdminDTO(a *models.Admin) AdminDTO {
	return AdminDTO{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		Status:    a.Status,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}
