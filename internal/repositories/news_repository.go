package repositories

import (
	"errors"

	"gorm.io/gorm"

	"apnajourney_backend/internal/models"
)

var (
	ErrNewsNotFound      = errors.New("article not found")
	ErrDuplicateNewsSlug = errors.New("article slug already exists")
)

// NewsFilter narrows article listings. PublishedOnly forces the public
// visibility constraint regardless of Status.
type NewsFilter struct {
	Category      string
	Language      string
	Status        models.NewsStatus
	AuthorID      string
	AuthorKind    models.AuthorKind
	Featured      *bool
	Search        string
	PublishedOnly bool
	Page          int
	PageSize      int
}

type NewsRepository interface {
	Create(article *models.News) error
	FindByID(id string) (*models.News, error)
	FindBySlug(slug string) (*models.News, error)
	Update(article *models.News) error
	Delete(id string) error
	FindWithFilter(filter NewsFilter) ([]models.News, int64, error)
	IncrementViews(id string) error
	CountByStatus(status models.NewsStatus) (int64, error)
	SumViews() (int64, error)
}

type NewsRepositoryImpl struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &NewsRepositoryImpl{db: db}
}

func (r *NewsRepositoryImpl) Create(article *models.News) error {
	var existing models.News
	if err := r.db.Where("slug = ?", article.Slug).First(&existing).Error; err == nil {
		return ErrDuplicateNewsSlug
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(article).Error
}

func (r *NewsRepositoryImpl) FindByID(id string) (*models.News, error) {
	var article models.News
	err := r.db.First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *NewsRepositoryImpl) FindBySlug(slug string) (*models.News, error) {
	var article models.News
	err := r.db.First(&article, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *NewsRepositoryImpl) Update(article *models.News) error {
	return r.db.Save(article).Error
}

func (r *NewsRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.News{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepositoryImpl) FindWithFilter(filter NewsFilter) ([]models.News, int64, error) {
	query := r.db.Model(&models.News{})

	if filter.PublishedOnly {
		query = query.Where("status = ?", models.NewsStatusPublished)
	} else if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
		if filter.AuthorKind != "" {
			query = query.Where("author_kind = ?", filter.AuthorKind)
		}
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		query = query.Where(
			"to_tsvector('english', title || ' ' || excerpt || ' ' || content) @@ plainto_tsquery('english', ?)",
			filter.Search,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.News
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *NewsRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.News{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *NewsRepositoryImpl) CountByStatus(status models.NewsStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.News{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *NewsRepositoryImpl) SumViews() (int64, error) {
	var sum int64
	err := r.db.Model(&models.News{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&sum).Error
	return sum, err
}
