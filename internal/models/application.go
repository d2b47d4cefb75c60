package models

// Application is a job application. UserID is nullable: anonymous
// applications are allowed, de-duplication applies only when the
// applicant is authenticated (unique (job_id, user_id) partial index).
type Application struct {
	BaseModel
	JobID         string            `gorm:"type:uuid;not null;index:idx_app_job_user,unique,where:user_id IS NOT NULL" json:"jobId"`
	UserID        *string           `gorm:"type:uuid;index:idx_app_job_user,unique,where:user_id IS NOT NULL" json:"userId,omitempty"`
	ApplicantName string            `gorm:"not null" json:"applicantName"`
	Email         string            `gorm:"not null" json:"email"`
	Phone         string            `json:"phone,omitempty"`
	ResumeURL     string            `json:"resumeUrl,omitempty"`
	CoverLetter   string            `gorm:"type:text" json:"coverLetter,omitempty"`
	Status        ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

func (Application) TableName() string { return "applications" }
