package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"apnajourney_backend/internal/models"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrDuplicateJobSlug = errors.New("job slug already exists")
)

// JobFilter narrows job listings. PublicOnly forces the
// approved-and-unexpired constraint regardless of Status, so a caller
// cannot bypass moderation visibility through query parameters.
type JobFilter struct {
	Category   string
	JobType    string
	Location   string
	Status     models.JobStatus
	PostedBy   string
	Search     string
	PublicOnly bool
	Page       int
	PageSize   int
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	FindBySlug(slug string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	FindWithFilter(filter JobFilter) ([]models.Job, int64, error)
	IncrementViews(id string) error
	IncrementApplicationCount(id string) error
	CountByStatus(status models.JobStatus) (int64, error)
	SumViews() (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	var existing models.Job
	if err := r.db.Where("slug = ?", job.Slug).First(&existing).Error; err == nil {
		return ErrDuplicateJobSlug
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindBySlug(slug string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindWithFilter(filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{})

	if filter.PublicOnly {
		query = query.
			Where("status = ?", models.JobStatusApproved).
			Where("expires_at > ?", time.Now())
	} else if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.PostedBy != "" {
		query = query.Where("posted_by = ?", filter.PostedBy)
	}
	if filter.Search != "" {
		// Native full-text search over the indexed columns.
		query = query.Where(
			"to_tsvector('english', title || ' ' || company || ' ' || description) @@ plainto_tsquery('english', ?)",
			filter.Search,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// IncrementViews bumps the counter in a single UPDATE. Best-effort: the
// count backs informational widgets only.
func (r *JobRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *JobRepositoryImpl) IncrementApplicationCount(id string) error {
	return r.db.Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
}

func (r *JobRepositoryImpl) CountByStatus(status models.JobStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) SumViews() (int64, error) {
	var sum int64
	err := r.db.Model(&models.Job{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&sum).Error
	return sum, err
}
