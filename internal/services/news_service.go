package services

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/logger"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
	"apnajourney_backend/internal/services/dto"
)

// Identity is the resolved caller passed down from the authorization
// gate: who they are and which credential store they came from.
type Identity struct {
	ID         string
	Kind       models.AuthorKind
	SuperAdmin bool
}

type NewsService interface {
	CreateByAdmin(admin Identity, req *dto.CreateNewsRequest) (*models.News, error)
	CreateByUser(userID string, req *dto.CreateNewsRequest) (*models.News, error)
	GetPublicBySlug(slug string) (*models.News, error)
	Update(id string, caller Identity, req *dto.UpdateNewsRequest) (*models.News, error)
	Delete(id string, caller Identity) error
	SubmitDraft(id, userID string) (*models.News, error)
	ListPublic(query *dto.ListNewsQuery, page, limit int) ([]models.News, int64, error)
	ListByAuthor(caller Identity, query *dto.ListNewsQuery, page, limit int) ([]models.News, int64, error)
	ListAdmin(query *dto.ListNewsQuery, page, limit int) ([]models.News, int64, error)
	GetForAuthor(id string, caller Identity) (*models.News, error)
}

type NewsServiceImpl struct {
	newsRepo repositories.NewsRepository
}

func NewNewsService(newsRepo repositories.NewsRepository) NewsService {
	return &NewsServiceImpl{newsRepo: newsRepo}
}

// CreateByAdmin stores an admin-authored article. Draft saves without
// submitting; otherwise the article is published immediately, stamped
// at the moment of the transition.
func (s *NewsServiceImpl) CreateByAdmin(admin Identity, req *dto.CreateNewsRequest) (*models.News, error) {
	article, err := s.build(admin.ID, models.AuthorKindAdmin, req)
	if err != nil {
		return nil, err
	}

	if req.Draft {
		article.Status = models.NewsStatusDraft
	} else {
		now := time.Now()
		article.Status = models.NewsStatusPublished
		article.PublishedAt = &now
		article.ReviewedBy = admin.ID
		article.ReviewedAt = &now
	}

	if err := s.newsRepo.Create(article); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

// CreateByUser stores a user-authored article. It enters the moderation
// queue as pending, or stays a draft when the author saves without
// submitting. The short language forms of this surface are normalized
// to the canonical values.
func (s *NewsServiceImpl) CreateByUser(userID string, req *dto.CreateNewsRequest) (*models.News, error) {
	article, err := s.build(userID, models.AuthorKindUser, req)
	if err != nil {
		return nil, err
	}

	if req.Draft {
		article.Status = models.NewsStatusDraft
	} else {
		article.Status = models.NewsStatusPending
	}

	if err := s.newsRepo.Create(article); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

func (s *NewsServiceImpl) build(authorID string, kind models.AuthorKind, req *dto.CreateNewsRequest) (*models.News, error) {
	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &models.News{
		Title:          req.Title,
		Slug:           makeSlug(req.Title),
		Excerpt:        req.Excerpt,
		Content:        req.Content,
		FeaturedImage:  req.FeaturedImage,
		Category:       req.Category,
		Tags:           datatypes.JSON(tags),
		Language:       dto.NormalizeLanguage(req.Language),
		AuthorID:       authorID,
		AuthorKind:     kind,
		IsFeatured:     req.IsFeatured,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}, nil
}

// GetPublicBySlug resolves a published article and counts the view.
func (s *NewsServiceImpl) GetPublicBySlug(slug string) (*models.News, error) {
	article, err := s.newsRepo.FindBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNewsNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if article.Status != models.NewsStatusPublished {
		return nil, apperrors.ErrNewsNotFound
	}

	if err := s.newsRepo.IncrementViews(article.ID); err != nil {
		logger.WithError(err).Warn("failed to increment article views", "news_id", article.ID)
	} else {
		article.Views++
	}

	return article, nil
}

// Update edits an article under the ownership rules: drafts and pending
// articles are freely editable by their own author; a published article
// may only be touched by its owning admin or a super-admin.
func (s *NewsServiceImpl) Update(id string, caller Identity, req *dto.UpdateNewsRequest) (*models.News, error) {
	article, err := s.findEditable(id, caller)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Excerpt != nil {
		article.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.FeaturedImage != nil {
		article.FeaturedImage = *req.FeaturedImage
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Tags != nil {
		tags, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		article.Tags = datatypes.JSON(tags)
	}
	if req.Language != nil {
		article.Language = dto.NormalizeLanguage(*req.Language)
	}
	if req.IsFeatured != nil {
		article.IsFeatured = *req.IsFeatured
	}
	if req.SEOTitle != nil {
		article.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		article.SEODescription = *req.SEODescription
	}

	// A user edit of a rejected article re-enters the moderation queue.
	if caller.Kind == models.AuthorKindUser && article.Status == models.NewsStatusRejected {
		article.Status = models.NewsStatusPending
		article.ReviewedBy = ""
		article.ReviewedAt = nil
		article.RejectionReason = ""
	}

	if err := s.newsRepo.Update(article); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

func (s *NewsServiceImpl) Delete(id string, caller Identity) error {
	if _, err := s.findEditable(id, caller); err != nil {
		return err
	}
	if err := s.newsRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// SubmitDraft moves the author's draft into the moderation queue.
func (s *NewsServiceImpl) SubmitDraft(id, userID string) (*models.News, error) {
	article, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if !article.IsOwnedBy(userID, models.AuthorKindUser) {
		return nil, apperrors.ErrForbidden
	}
	if article.Status != models.NewsStatusDraft {
		return nil, apperrors.NewBadRequestError("Only drafts can be submitted")
	}

	article.Status = models.NewsStatusPending
	if err := s.newsRepo.Update(article); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

func (s *NewsServiceImpl) ListPublic(query *dto.ListNewsQuery, page, limit int) ([]models.News, int64, error) {
	return s.newsRepo.FindWithFilter(repositories.NewsFilter{
		Category:      query.Category,
		Language:      queryLanguage(query.Language),
		Featured:      query.Featured,
		Search:        query.Search,
		PublishedOnly: true,
		Page:          page,
		PageSize:      limit,
	})
}

func (s *NewsServiceImpl) ListByAuthor(caller Identity, query *dto.ListNewsQuery, page, limit int) ([]models.News, int64, error) {
	return s.newsRepo.FindWithFilter(repositories.NewsFilter{
		AuthorID:   caller.ID,
		AuthorKind: caller.Kind,
		Status:     models.NewsStatus(query.Status),
		Page:       page,
		PageSize:   limit,
	})
}

func (s *NewsServiceImpl) ListAdmin(query *dto.ListNewsQuery, page, limit int) ([]models.News, int64, error) {
	return s.newsRepo.FindWithFilter(repositories.NewsFilter{
		Category: query.Category,
		Language: queryLanguage(query.Language),
		Status:   models.NewsStatus(query.Status),
		Search:   query.Search,
		Page:     page,
		PageSize: limit,
	})
}

// GetForAuthor lets an author read their own article in any state,
// including the rejection reason.
func (s *NewsServiceImpl) GetForAuthor(id string, caller Identity) (*models.News, error) {
	article, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !article.IsOwnedBy(caller.ID, caller.Kind) && !caller.SuperAdmin {
		return nil, apperrors.ErrForbidden
	}
	return article, nil
}

// queryLanguage normalizes a language filter, keeping the empty value
// as "no filter".
func queryLanguage(lang string) string {
	if lang == "" {
		return ""
	}
	return dto.NormalizeLanguage(lang)
}

func (s *NewsServiceImpl) find(id string) (*models.News, error) {
	article, err := s.newsRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNewsNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

func (s *NewsServiceImpl) findEditable(id string, caller Identity) (*models.News, error) {
	article, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if article.Status == models.NewsStatusPublished {
		// Published content: owning admin or super-admin only.
		if caller.Kind != models.AuthorKindAdmin {
			return nil, apperrors.ErrForbidden
		}
		if !article.IsOwnedBy(caller.ID, models.AuthorKindAdmin) && !caller.SuperAdmin {
			return nil, apperrors.ErrForbidden
		}
		return article, nil
	}

	// Pre-publication: the owning author; admins may also edit
	// user-authored pending content.
	if article.IsOwnedBy(caller.ID, caller.Kind) {
		return article, nil
	}
	if caller.Kind == models.AuthorKindAdmin {
		return article, nil
	}
	return nil, apperrors.ErrForbidden
}
