package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	Title            string         `gorm:"not null" json:"title"`
	Slug             string         `gorm:"uniqueIndex;not null" json:"slug"`
	Company          string         `gorm:"not null" json:"company"`
	Description      string         `gorm:"type:text;not null" json:"description"`
	Category         string         `gorm:"type:varchar(40);not null;index" json:"category"`
	JobType          string         `gorm:"type:varchar(20);not null" json:"jobType"`
	Location         string         `gorm:"type:varchar(40);not null;index" json:"location"`
	Salary           string         `json:"salary,omitempty"`
	Requirements     datatypes.JSON `gorm:"type:jsonb" json:"requirements"`
	ContactEmail     string         `gorm:"not null" json:"contactEmail"`
	ContactPhone     string         `json:"contactPhone,omitempty"`
	PostedBy         string         `gorm:"type:uuid;not null;index" json:"postedBy"`
	Status           JobStatus      `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Views            int64          `gorm:"not null;default:0" json:"views"`
	ApplicationCount int64          `gorm:"not null;default:0" json:"applicationCount"`
	ExpiresAt        time.Time      `gorm:"not null;index" json:"expiresAt"`

	// Moderation audit, set only on the pending -> approved/rejected transition.
	ReviewedBy      string     `gorm:"type:uuid" json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

func (Job) TableName() string { return "jobs" }

// IsPubliclyVisible reports whether the job may appear on the public surface.
func (j *Job) IsPubliclyVisible(now time.Time) bool {
	return j.Status == JobStatusApproved && j.ExpiresAt.After(now)
}
