package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"apnajourney_backend/internal/models"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminAlreadyExists = errors.New("admin already exists")
)

type AdminRepository interface {
	FindByID(id string) (*models.Admin, error)
	FindByEmail(email string) (*models.Admin, error)
	Create(admin *models.Admin) error
	Update(admin *models.Admin) error
	UpdateLastLogin(adminID string, at time.Time) error
	FindAll(page, pageSize int) ([]models.Admin, int64, error)
}

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) FindByID(id string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) Create(admin *models.Admin) error {
	admin.Email = strings.ToLower(admin.Email)

	var existing models.Admin
	if err := r.db.Where("email = ?", admin.Email).First(&existing).Error; err == nil {
		return ErrAdminAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(admin).Error
}

func (r *AdminRepositoryImpl) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

// UpdateLastLogin stamps the admin's last authorized request time.
func (r *AdminRepositoryImpl) UpdateLastLogin(adminID string, at time.Time) error {
	return r.db.Model(&models.Admin{}).
		Where("id = ?", adminID).
		Update("last_login", at).Error
}

func (r *AdminRepositoryImpl) FindAll(page, pageSize int) ([]models.Admin, int64, error) {
	var total int64
	if err := r.db.Model(&models.Admin{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var admins []models.Admin
	err := r.db.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&admins).Error
	if err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}
