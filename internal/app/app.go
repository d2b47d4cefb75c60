package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"apnajourney_backend/database"
	"apnajourney_backend/internal/auth"
	"apnajourney_backend/internal/config"
	"apnajourney_backend/internal/email"
	"apnajourney_backend/internal/handlers"
	"apnajourney_backend/internal/logger"
	"apnajourney_backend/internal/middleware"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
	"apnajourney_backend/internal/routes"
	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/storage"
	"apnajourney_backend/internal/validator"
	"apnajourney_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	worker := workers.NewMaintenanceWorker(gormDB)
	worker.Start(context.Background())

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers, and routes onto a
// gin engine. Split out of Run so tests can build the full surface
// without binding a port.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	userIssuer, err := auth.NewTokenIssuer(cfg.UserJWT.Secret, auth.AudienceUser, time.Duration(cfg.UserJWT.TTLHours)*time.Hour)
	if err != nil {
		logger.Fatal("Failed to build user token issuer", "error", err)
	}
	adminIssuer, err := auth.NewTokenIssuer(cfg.AdminJWT.Secret, auth.AudienceAdmin, time.Duration(cfg.AdminJWT.TTLHours)*time.Hour)
	if err != nil {
		logger.Fatal("Failed to build admin token issuer", "error", err)
	}

	userRepo := repositories.NewUserRepository(gormDB)
	adminRepo := repositories.NewAdminRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	newsRepo := repositories.NewNewsRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)
	inquiryRepo := repositories.NewInquiryRepository(gormDB)

	var mailer email.Provider
	if cfg.Email.SMTPHost != "" {
		mailer = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("SMTP is not configured, using the mock email provider")
		mailer = &email.MockProvider{}
	}

	svc := &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, adminRepo, userIssuer, adminIssuer),
		UserService:        services.NewUserService(userRepo),
		JobService:         services.NewJobService(jobRepo),
		NewsService:        services.NewNewsService(newsRepo),
		ApplicationService: services.NewApplicationService(appRepo, jobRepo),
		ModerationService:  services.NewModerationService(jobRepo, newsRepo, userRepo, mailer),
		InquiryService:     services.NewInquiryService(inquiryRepo),
		StatsService:       services.NewStatsService(userRepo, jobRepo, newsRepo, appRepo, inquiryRepo),
		SearchService:      services.NewSearchService(jobRepo, newsRepo),
		ExportService:      services.NewExportService(userRepo, jobRepo, newsRepo, appRepo, inquiryRepo),
		UploadService:      services.NewUploadService(store, cfg.Storage.MaxSize),
		EmailProvider:      mailer,
	}

	appHandlers := handlers.NewAppHandlers(validator.New(), svc)

	gates := routes.Gates{
		User:         middleware.RequireUser(userIssuer, userRepo),
		OptionalUser: middleware.OptionalUser(userIssuer, userRepo),
		Admin:        middleware.RequireAdmin(adminIssuer, adminRepo),
		SuperAdmin:   middleware.RequireSuperAdmin(),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	var origins []string
	if cfg.SiteURL != "" {
		origins = append(origins, cfg.SiteURL)
	}
	router.Use(middleware.CORSMiddleware(origins))

	routes.RegisterRoutes(router, appHandlers, gates)
	return router
}

// seedFirstAdmin guarantees one usable super-admin after a fresh
// deployment. Runs in a transaction so concurrent instances cannot
// create the account twice.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.Admin
		err := tx.Where("email = ?", cfg.FirstAdminEmail).First(&existing).Error
		if err == nil {
			logger.Info("First admin already exists, skipping seeding", "email", cfg.FirstAdminEmail)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check for first admin: %w", err)
		}

		hash, err := auth.HashPassword(cfg.FirstAdminPassword)
		if err != nil {
			return fmt.Errorf("hash first admin password: %w", err)
		}

		admin := &models.Admin{
			Name:         "Super Admin",
			Email:        cfg.FirstAdminEmail,
			PasswordHash: hash,
			Role:         models.AdminRoleSuperAdmin,
			Status:       models.AdminStatusActive,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("create first admin: %w", err)
		}

		logger.Info("First super-admin created", "email", cfg.FirstAdminEmail)
		return nil
	})
}
