package repositories

import (
	"errors"

	"gorm.io/gorm"

	"apnajourney_backend/internal/models"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type InquiryFilter struct {
	Type     string
	Status   models.InquiryStatus
	Priority models.InquiryPriority
	Page     int
	PageSize int
}

type InquiryRepository interface {
	Create(inquiry *models.Inquiry) error
	FindByID(id string) (*models.Inquiry, error)
	Update(inquiry *models.Inquiry) error
	Delete(id string) error
	FindWithFilter(filter InquiryFilter) ([]models.Inquiry, int64, error)
	CountByStatus(status models.InquiryStatus) (int64, error)
}

type InquiryRepositoryImpl struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &InquiryRepositoryImpl{db: db}
}

func (r *InquiryRepositoryImpl) Create(inquiry *models.Inquiry) error {
	return r.db.Create(inquiry).Error
}

func (r *InquiryRepositoryImpl) FindByID(id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.First(&inquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepositoryImpl) Update(inquiry *models.Inquiry) error {
	return r.db.Save(inquiry).Error
}

func (r *InquiryRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Inquiry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return nil
}

func (r *InquiryRepositoryImpl) FindWithFilter(filter InquiryFilter) ([]models.Inquiry, int64, error) {
	query := r.db.Model(&models.Inquiry{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var inquiries []models.Inquiry
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&inquiries).Error
	if err != nil {
		return nil, 0, err
	}

	return inquiries, total, nil
}

func (r *InquiryRepositoryImpl) CountByStatus(status models.InquiryStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Inquiry{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
