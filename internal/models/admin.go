package models

import "time"

// Admin is a moderator identity. Admins live in their own table and
// authenticate against a separate token secret; an admin token never
// authorizes user-only routes and vice versa.
type Admin struct {
	BaseModel
	Name         string      `gorm:"not null" json:"name"`
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Role         AdminRole   `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	Status       AdminStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	LastLogin    *time.Time  `json:"lastLogin,omitempty"`
}

func (Admin) TableName() string { return "admins" }

func (a *Admin) IsSuperAdmin() bool { return a.Role == AdminRoleSuperAdmin }
