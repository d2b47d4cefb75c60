package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"apnajourney_backend/internal/algorithms"
	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/logger"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
	"apnajourney_backend/internal/services/dto"
)

type JobService interface {
	Create(userID string, req *dto.CreateJobRequest) (*models.Job, error)
	GetPublicBySlug(slug string) (*models.Job, error)
	Related(slug string, limit int) ([]models.Job, error)
	GetForOwner(id, userID string, isAdmin bool) (*models.Job, error)
	Update(id, userID string, isAdmin bool, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(id, userID string, isAdmin bool) error
	ListPublic(query *dto.ListJobsQuery, page, limit int) ([]models.Job, int64, error)
	ListByOwner(userID string, page, limit int) ([]models.Job, int64, error)
	ListAdmin(query *dto.ListJobsQuery, page, limit int) ([]models.Job, int64, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

// Create stores a new posting. Every new job starts pending regardless
// of who posts it; only moderation makes it public.
func (s *JobServiceImpl) Create(userID string, req *dto.CreateJobRequest) (*models.Job, error) {
	requirements, err := json.Marshal(req.Requirements)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		Title:        req.Title,
		Slug:         makeSlug(req.Title),
		Company:      req.Company,
		Description:  req.Description,
		Category:     req.Category,
		JobType:      req.JobType,
		Location:     req.Location,
		Salary:       req.Salary,
		Requirements: datatypes.JSON(requirements),
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		PostedBy:     userID,
		Status:       models.JobStatusPending,
		ExpiresAt:    req.ExpiresAt,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// GetPublicBySlug resolves an approved, unexpired job and counts the
// view. Anything else is a 404: the public surface must not reveal
// pending or rejected content.
func (s *JobServiceImpl) GetPublicBySlug(slug string) (*models.Job, error) {
	job, err := s.jobRepo.FindBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !job.IsPubliclyVisible(timeNow()) {
		return nil, apperrors.ErrJobNotFound
	}

	if err := s.jobRepo.IncrementViews(job.ID); err != nil {
		logger.WithError(err).Warn("failed to increment job views", "job_id", job.ID)
	} else {
		job.Views++
	}

	return job, nil
}

// Related returns other open jobs a reader of this posting is likely to
// want, ranked by category, district, type, and freshness.
func (s *JobServiceImpl) Related(slug string, limit int) ([]models.Job, error) {
	job, err := s.jobRepo.FindBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	now := timeNow()
	if !job.IsPubliclyVisible(now) {
		return nil, apperrors.ErrJobNotFound
	}

	candidates, _, err := s.jobRepo.FindWithFilter(repositories.JobFilter{
		Category:   job.Category,
		PublicOnly: true,
		Page:       1,
		PageSize:   50,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if limit <= 0 {
		limit = 5
	}
	return algorithms.RelatedJobs(job, candidates, limit, now), nil
}

func (s *JobServiceImpl) GetForOwner(id, userID string, isAdmin bool) (*models.Job, error) {
	job, err := s.findOwned(id, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// Update applies an owner or admin edit. Any edit resets the job to
// pending: a previously approved posting goes back through moderation.
func (s *JobServiceImpl) Update(id, userID string, isAdmin bool, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.findOwned(id, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Requirements != nil {
		requirements, err := json.Marshal(req.Requirements)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.Requirements = datatypes.JSON(requirements)
	}
	if req.ContactEmail != nil {
		job.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		job.ContactPhone = *req.ContactPhone
	}
	if req.ExpiresAt != nil {
		job.ExpiresAt = *req.ExpiresAt
	}

	job.Status = models.JobStatusPending
	job.ReviewedBy = ""
	job.ReviewedAt = nil
	job.RejectionReason = ""

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Delete(id, userID string, isAdmin bool) error {
	if _, err := s.findOwned(id, userID, isAdmin); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) ListPublic(query *dto.ListJobsQuery, page, limit int) ([]models.Job, int64, error) {
	return s.jobRepo.FindWithFilter(repositories.JobFilter{
		Category:   query.Category,
		JobType:    query.JobType,
		Location:   query.Location,
		Search:     query.Search,
		PublicOnly: true,
		Page:       page,
		PageSize:   limit,
	})
}

func (s *JobServiceImpl) ListByOwner(userID string, page, limit int) ([]models.Job, int64, error) {
	return s.jobRepo.FindWithFilter(repositories.JobFilter{
		PostedBy: userID,
		Page:     page,
		PageSize: limit,
	})
}

func (s *JobServiceImpl) ListAdmin(query *dto.ListJobsQuery, page, limit int) ([]models.Job, int64, error) {
	return s.jobRepo.FindWithFilter(repositories.JobFilter{
		Category: query.Category,
		JobType:  query.JobType,
		Location: query.Location,
		Search:   query.Search,
		Status:   models.JobStatus(query.Status),
		Page:     page,
		PageSize: limit,
	})
}

// findOwned resolves the job and checks mutation rights: the owning
// user or any admin.
func (s *JobServiceImpl) findOwned(id, userID string, isAdmin bool) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !isAdmin && job.PostedBy != userID {
		return nil, apperrors.ErrForbidden
	}
	return job, nil
}
