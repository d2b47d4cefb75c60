package services

import (
	"fmt"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/email"
	"apnajourney_backend/internal/logger"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
	"apnajourney_backend/internal/services/dto"
)

type ModerationService interface {
	PendingContent(page, limit int) (*dto.PendingContent, error)
	Moderate(adminID string, req *dto.ModerateRequest) (interface{}, error)
}

// ModerationServiceImpl applies the pending -> approved/rejected
// transition. Two admins racing on the same item are not serialized;
// the last write wins.
type ModerationServiceImpl struct {
	jobRepo  repositories.JobRepository
	newsRepo repositories.NewsRepository
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewModerationService(
	jobRepo repositories.JobRepository,
	newsRepo repositories.NewsRepository,
	userRepo repositories.UserRepository,
	mailer email.Provider,
) ModerationService {
	return &ModerationServiceImpl{
		jobRepo:  jobRepo,
		newsRepo: newsRepo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

func (s *ModerationServiceImpl) PendingContent(page, limit int) (*dto.PendingContent, error) {
	jobs, _, err := s.jobRepo.FindWithFilter(repositories.JobFilter{
		Status:   models.JobStatusPending,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	news, _, err := s.newsRepo.FindWithFilter(repositories.NewsFilter{
		Status:   models.NewsStatusPending,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PendingContent{Jobs: jobs, News: news}, nil
}

func (s *ModerationServiceImpl) Moderate(adminID string, req *dto.ModerateRequest) (interface{}, error) {
	if req.Status == "rejected" && req.Reason == "" {
		return nil, apperrors.ErrReasonRequired
	}

	switch req.Type {
	case "job":
		return s.moderateJob(adminID, req)
	case "news":
		return s.moderateNews(adminID, req)
	default:
		return nil, apperrors.NewBadRequestError("Unknown content type")
	}
}

func (s *ModerationServiceImpl) moderateJob(adminID string, req *dto.ModerateRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(req.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.Status != models.JobStatusPending {
		return nil, apperrors.ErrAlreadyModerated
	}

	now := timeNow()
	job.ReviewedBy = adminID
	job.ReviewedAt = &now

	switch req.Status {
	case "approved", "published":
		job.Status = models.JobStatusApproved
	case "rejected":
		job.Status = models.JobStatusRejected
		job.RejectionReason = req.Reason
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if job.Status == models.JobStatusRejected {
		s.notifyJobRejection(job)
	}
	return job, nil
}

func (s *ModerationServiceImpl) moderateNews(adminID string, req *dto.ModerateRequest) (*models.News, error) {
	article, err := s.newsRepo.FindByID(req.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNewsNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if article.Status != models.NewsStatusPending {
		return nil, apperrors.ErrAlreadyModerated
	}

	now := timeNow()
	article.ReviewedBy = adminID
	article.ReviewedAt = &now

	switch req.Status {
	case "approved", "published":
		article.Status = models.NewsStatusPublished
		article.PublishedAt = &now
	case "rejected":
		article.Status = models.NewsStatusRejected
		article.RejectionReason = req.Reason
	}

	if err := s.newsRepo.Update(article); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if article.Status == models.NewsStatusRejected && article.AuthorKind == models.AuthorKindUser {
		s.notifyNewsRejection(article)
	}
	return article, nil
}

// Rejection notices are best-effort: a mail failure never fails the
// moderation call.
func (s *ModerationServiceImpl) notifyJobRejection(job *models.Job) {
	user, err := s.userRepo.FindByID(job.PostedBy)
	if err != nil {
		logger.WithError(err).Warn("rejection notice skipped, poster not found", "job_id", job.ID)
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your job posting <strong>%s</strong> was not approved.</p><p>Reason: %s</p><p>You can edit and resubmit it from your dashboard.</p>",
		user.Name, job.Title, job.RejectionReason,
	)
	if err := s.mailer.Send(user.Email, "Your job posting was not approved", body); err != nil {
		logger.WithError(err).Warn("failed to send rejection notice", "job_id", job.ID)
	}
}

func (s *ModerationServiceImpl) notifyNewsRejection(article *models.News) {
	user, err := s.userRepo.FindByID(article.AuthorID)
	if err != nil {
		logger.WithError(err).Warn("rejection notice skipped, author not found", "news_id", article.ID)
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your article <strong>%s</strong> was not approved.</p><p>Reason: %s</p>",
		user.Name, article.Title, article.RejectionReason,
	)
	if err := s.mailer.Send(user.Email, "Your article was not approved", body); err != nil {
		logger.WithError(err).Warn("failed to send rejection notice", "news_id", article.ID)
	}
}
