package services

import (
	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/logger"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
	"apnajourney_backend/internal/services/dto"
)

type ApplicationService interface {
	Apply(userID *string, req *dto.ApplyRequest) (*models.Application, error)
	ListForJob(jobID string, caller Identity, page, limit int) ([]models.Application, int64, error)
	ListMine(userID string, page, limit int) ([]models.Application, int64, error)
	UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{appRepo: appRepo, jobRepo: jobRepo}
}

// Apply records an application against a publicly open job. Anonymous
// applicants pass a nil userID; authenticated applicants are
// de-duplicated per job.
func (s *ApplicationServiceImpl) Apply(userID *string, req *dto.ApplyRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !job.IsPubliclyVisible(timeNow()) {
		return nil, apperrors.ErrJobNotOpen
	}

	// The unique index on (job_id, user_id) is the backstop; checking
	// first keeps the common repeat-click case off the error path.
	if userID != nil {
		if _, err := s.appRepo.FindByJobAndUser(job.ID, *userID); err == nil {
			return nil, apperrors.ErrDuplicateApplication
		} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.InternalError(err)
		}
	}

	app := &models.Application{
		JobID:         job.ID,
		UserID:        userID,
		ApplicantName: req.ApplicantName,
		Email:         req.Email,
		Phone:         req.Phone,
		ResumeURL:     req.ResumeURL,
		CoverLetter:   req.CoverLetter,
	}

	if err := s.appRepo.Create(app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	// Counter is advisory; the application itself is already stored.
	if err := s.jobRepo.IncrementApplicationCount(job.ID); err != nil {
		logger.WithError(err).Warn("failed to bump application count", "job_id", job.ID)
	}

	return app, nil
}

// ListForJob returns a job's applications to its owner or an admin.
func (s *ApplicationServiceImpl) ListForJob(jobID string, caller Identity, page, limit int) ([]models.Application, int64, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, 0, apperrors.ErrJobNotFound
		}
		return nil, 0, apperrors.InternalError(err)
	}

	if caller.Kind != models.AuthorKindAdmin && job.PostedBy != caller.ID {
		return nil, 0, apperrors.ErrForbidden
	}

	apps, total, err := s.appRepo.FindWithFilter(repositories.ApplicationFilter{
		JobID:    jobID,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return apps, total, nil
}

func (s *ApplicationServiceImpl) ListMine(userID string, page, limit int) ([]models.Application, int64, error) {
	apps, total, err := s.appRepo.FindWithFilter(repositories.ApplicationFilter{
		UserID:   userID,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return apps, total, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error) {
	if err := s.appRepo.UpdateStatus(id, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NotFound("Application")
		}
		return nil, apperrors.InternalError(err)
	}

	app, err := s.appRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}
