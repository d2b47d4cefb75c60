package dto

import (
	"time"

	"apnajourney_backend/internal/models"
)

type CreateJobRequest struct {
	Title        string    `json:"title" validate:"required,min=3,max=150"`
	Company      string    `json:"company" validate:"required,min=2,max=100"`
	Description  string    `json:"description" validate:"required,min=20,max=10000"`
	Category     string    `json:"category" validate:"required,job-category"`
	JobType      string    `json:"jobType" validate:"required,job-type"`
	Location     string    `json:"location" validate:"required,district"`
	Salary       string    `json:"salary" validate:"omitempty,max=60"`
	Requirements []string  `json:"requirements" validate:"required,min=1,dive,required,max=300"`
	ContactEmail string    `json:"contactEmail" validate:"required,email"`
	ContactPhone string    `json:"contactPhone" validate:"omitempty,indian-phone"`
	ExpiresAt    time.Time `json:"expiresAt" validate:"required,future"`
}

type UpdateJobRequest struct {
	Title        *string    `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Company      *string    `json:"company,omitempty" validate:"omitempty,min=2,max=100"`
	Description  *string    `json:"description,omitempty" validate:"omitempty,min=20,max=10000"`
	Category     *string    `json:"category,omitempty" validate:"omitempty,job-category"`
	JobType      *string    `json:"jobType,omitempty" validate:"omitempty,job-type"`
	Location     *string    `json:"location,omitempty" validate:"omitempty,district"`
	Salary       *string    `json:"salary,omitempty" validate:"omitempty,max=60"`
	Requirements []string   `json:"requirements,omitempty" validate:"omitempty,min=1,dive,required,max=300"`
	ContactEmail *string    `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContactPhone *string    `json:"contactPhone,omitempty" validate:"omitempty,indian-phone"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty" validate:"omitempty,future"`
}

type ListJobsQuery struct {
	Category string `form:"category" validate:"omitempty,job-category"`
	JobType  string `form:"jobType" validate:"omitempty,job-type"`
	Location string `form:"location" validate:"omitempty,district"`
	Search   string `form:"search"`
	// Status is honored only on the admin surface; the public listing
	// ignores it.
	Status string `form:"status" validate:"omitempty,oneof=pending approved rejected"`
}

type ApplyRequest struct {
	JobID         string `json:"jobId" validate:"required,uuid4"`
	ApplicantName string `json:"applicantName" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,indian-phone"`
	ResumeURL     string `json:"resumeUrl" validate:"omitempty,url"`
	CoverLetter   string `json:"coverLetter" validate:"omitempty,max=5000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=pending reviewed shortlisted rejected"`
}
