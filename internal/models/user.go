package models

type User struct {
	BaseModel
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Phone        string     `json:"phone,omitempty"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	ResumeURL    string     `json:"resumeUrl,omitempty"`
}

func (User) TableName() string { return "users" }

func (u *User) IsBanned() bool { return u.Status == UserStatusBanned }
