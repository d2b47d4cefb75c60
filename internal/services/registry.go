package services

import (
	"apnajourney_backend/internal/email"
)

// ServiceContainer holds every application service, wired once at
// startup and handed to the handler registry.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	JobService         JobService
	NewsService        NewsService
	ApplicationService ApplicationService
	ModerationService  ModerationService
	InquiryService     InquiryService
	StatsService       StatsService
	SearchService      SearchService
	ExportService      ExportService
	UploadService      UploadService
	EmailProvider      email.Provider
}
