package models

type UserRole string
type UserStatus string
type AdminRole string
type AdminStatus string
type JobStatus string
type NewsStatus string
type ApplicationStatus string
type InquiryStatus string
type InquiryPriority string
type AuthorKind string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	UserStatusActive UserStatus = "active"
	UserStatusBanned UserStatus = "banned"

	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super-admin"

	AdminStatusActive   AdminStatus = "active"
	AdminStatusInactive AdminStatus = "inactive"

	JobStatusPending  JobStatus = "pending"
	JobStatusApproved JobStatus = "approved"
	JobStatusRejected JobStatus = "rejected"

	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPending   NewsStatus = "pending"
	NewsStatusPublished NewsStatus = "published"
	NewsStatusRejected  NewsStatus = "rejected"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"

	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusInProgress InquiryStatus = "in-progress"
	InquiryStatusResolved   InquiryStatus = "resolved"
	InquiryStatusClosed     InquiryStatus = "closed"

	InquiryPriorityLow    InquiryPriority = "low"
	InquiryPriorityMedium InquiryPriority = "medium"
	InquiryPriorityHigh   InquiryPriority = "high"

	AuthorKindUser  AuthorKind = "user"
	AuthorKindAdmin AuthorKind = "admin"
)

// JobCategories is the closed set of job posting categories.
var JobCategories = []string{
	"it-software", "teaching", "healthcare", "banking-finance",
	"government", "construction", "retail", "hospitality",
	"agriculture", "transport", "media", "other",
}

// JobTypes is the closed set of employment types.
var JobTypes = []string{"full-time", "part-time", "contract", "internship"}

// Districts is the closed set of locations a job can be posted for.
var Districts = []string{
	"ranchi", "dhanbad", "jamshedpur", "bokaro", "hazaribagh", "giridih",
	"deoghar", "dumka", "palamu", "ramgarh", "chaibasa", "other",
}

// NewsCategories is the closed set of article categories.
var NewsCategories = []string{
	"politics", "sports", "education", "employment", "business",
	"entertainment", "health", "technology", "agriculture", "crime",
	"culture", "other",
}

// NewsLanguages holds the canonical language values. The user-facing
// surface also accepts the short forms "en"/"hi", normalized at the DTO
// boundary.
var NewsLanguages = []string{"english", "hindi"}

// InquiryTypes is the closed set of contact-form categories.
var InquiryTypes = []string{"general", "job", "news", "technical", "partnership", "other"}
