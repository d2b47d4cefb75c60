package models

import "time"

// Inquiry is a contact-form submission. Created publicly, mutated only
// by admins.
type Inquiry struct {
	BaseModel
	Name       string          `gorm:"not null" json:"name"`
	Email      string          `gorm:"not null" json:"email"`
	Phone      string          `json:"phone,omitempty"`
	Subject    string          `gorm:"not null" json:"subject"`
	Message    string          `gorm:"type:text;not null" json:"message"`
	Type       string          `gorm:"type:varchar(20);not null;default:'general'" json:"type"`
	Status     InquiryStatus   `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	Priority   InquiryPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	AdminNotes string          `gorm:"type:text" json:"adminNotes,omitempty"`
	ResolvedAt *time.Time      `json:"resolvedAt,omitempty"`
}

func (Inquiry) TableName() string { return "inquiries" }
