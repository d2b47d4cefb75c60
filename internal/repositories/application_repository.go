package repositories

import (
	"errors"

	"gorm.io/gorm"

	"apnajourney_backend/internal/models"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

type ApplicationFilter struct {
	JobID    string
	UserID   string
	Status   models.ApplicationStatus
	Page     int
	PageSize int
}

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJobAndUser(jobID, userID string) (*models.Application, error)
	FindWithFilter(filter ApplicationFilter) ([]models.Application, int64, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	CountAll() (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts the application. For authenticated applicants the
// (job_id, user_id) pair is checked first; the partial unique index is
// the backstop against races.
func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	if app.UserID != nil {
		var existing models.Application
		err := r.db.Where("job_id = ? AND user_id = ?", app.JobID, *app.UserID).
			First(&existing).Error
		if err == nil {
			return ErrDuplicateApplication
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndUser(jobID, userID string) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("job_id = ? AND user_id = ?", jobID, userID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindWithFilter(filter ApplicationFilter) ([]models.Application, int64, error) {
	query := r.db.Model(&models.Application{})

	if filter.JobID != "" {
		query = query.Where("job_id = ?", filter.JobID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Application
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Count(&count).Error
	return count, err
}
