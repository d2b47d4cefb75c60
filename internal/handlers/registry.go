package handlers

import (
	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/validator"
)

// AppHandlers holds every HTTP handler, wired once at startup.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	NewsHandler        *NewsHandler
	ApplicationHandler *ApplicationHandler
	ModerationHandler  *ModerationHandler
	InquiryHandler     *InquiryHandler
	StatsHandler       *StatsHandler
	SearchHandler      *SearchHandler
	ExportHandler      *ExportHandler
	UploadHandler      *UploadHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, svc.AuthService, svc.UserService),
		UserHandler:        NewUserHandler(base, svc.UserService),
		JobHandler:         NewJobHandler(base, svc.JobService),
		NewsHandler:        NewNewsHandler(base, svc.NewsService),
		ApplicationHandler: NewApplicationHandler(base, svc.ApplicationService),
		ModerationHandler:  NewModerationHandler(base, svc.ModerationService),
		InquiryHandler:     NewInquiryHandler(base, svc.InquiryService),
		StatsHandler:       NewStatsHandler(base, svc.StatsService),
		SearchHandler:      NewSearchHandler(base, svc.SearchService),
		ExportHandler:      NewExportHandler(base, svc.ExportService),
		UploadHandler:      NewUploadHandler(base, svc.UploadService),
	}
}
