package services

import (
	"golang.org/x/sync/errgroup"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
	"apnajourney_backend/internal/services/dto"
)

type StatsService interface {
	Dashboard() (*dto.DashboardStats, error)
	Public() (*dto.PublicStats, error)
	Jobs() (*dto.JobStats, error)
	News() (*dto.NewsStats, error)
}

// StatsServiceImpl aggregates counters. Each widget is an independent
// query, so the fan-out runs them concurrently; the first failure
// cancels the group.
type StatsServiceImpl struct {
	userRepo    repositories.UserRepository
	jobRepo     repositories.JobRepository
	newsRepo    repositories.NewsRepository
	appRepo     repositories.ApplicationRepository
	inquiryRepo repositories.InquiryRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	newsRepo repositories.NewsRepository,
	appRepo repositories.ApplicationRepository,
	inquiryRepo repositories.InquiryRepository,
) StatsService {
	return &StatsServiceImpl{
		userRepo:    userRepo,
		jobRepo:     jobRepo,
		newsRepo:    newsRepo,
		appRepo:     appRepo,
		inquiryRepo: inquiryRepo,
	}
}

func (s *StatsServiceImpl) Dashboard() (*dto.DashboardStats, error) {
	var stats dto.DashboardStats
	var g errgroup.Group

	g.Go(func() (err error) { stats.TotalUsers, err = s.userRepo.CountAll(); return })
	g.Go(func() (err error) { stats.PendingJobs, err = s.jobRepo.CountByStatus(models.JobStatusPending); return })
	g.Go(func() (err error) { stats.ApprovedJobs, err = s.jobRepo.CountByStatus(models.JobStatusApproved); return })
	g.Go(func() (err error) { stats.RejectedJobs, err = s.jobRepo.CountByStatus(models.JobStatusRejected); return })
	g.Go(func() (err error) { stats.PendingNews, err = s.newsRepo.CountByStatus(models.NewsStatusPending); return })
	g.Go(func() (err error) { stats.PublishedNews, err = s.newsRepo.CountByStatus(models.NewsStatusPublished); return })
	g.Go(func() (err error) { stats.TotalApplications, err = s.appRepo.CountAll(); return })
	g.Go(func() (err error) { stats.NewInquiries, err = s.inquiryRepo.CountByStatus(models.InquiryStatusNew); return })
	g.Go(func() (err error) { stats.TotalJobViews, err = s.jobRepo.SumViews(); return })
	g.Go(func() (err error) { stats.TotalNewsViews, err = s.newsRepo.SumViews(); return })

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats.TotalJobs = stats.PendingJobs + stats.ApprovedJobs + stats.RejectedJobs
	draft, err := s.newsRepo.CountByStatus(models.NewsStatusDraft)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rejected, err := s.newsRepo.CountByStatus(models.NewsStatusRejected)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.TotalNews = stats.PendingNews + stats.PublishedNews + draft + rejected

	return &stats, nil
}

func (s *StatsServiceImpl) Public() (*dto.PublicStats, error) {
	var stats dto.PublicStats
	var g errgroup.Group

	g.Go(func() (err error) { stats.ActiveJobs, err = s.jobRepo.CountByStatus(models.JobStatusApproved); return })
	g.Go(func() (err error) { stats.PublishedNews, err = s.newsRepo.CountByStatus(models.NewsStatusPublished); return })
	g.Go(func() (err error) { stats.TotalJobViews, err = s.jobRepo.SumViews(); return })
	g.Go(func() (err error) { stats.TotalNewsViews, err = s.newsRepo.SumViews(); return })

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &stats, nil
}

func (s *StatsServiceImpl) Jobs() (*dto.JobStats, error) {
	var stats dto.JobStats
	var g errgroup.Group

	g.Go(func() (err error) { stats.Approved, err = s.jobRepo.CountByStatus(models.JobStatusApproved); return })
	g.Go(func() (err error) { stats.Pending, err = s.jobRepo.CountByStatus(models.JobStatusPending); return })
	g.Go(func() (err error) { stats.Rejected, err = s.jobRepo.CountByStatus(models.JobStatusRejected); return })
	g.Go(func() (err error) { stats.TotalViews, err = s.jobRepo.SumViews(); return })

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &stats, nil
}

func (s *StatsServiceImpl) News() (*dto.NewsStats, error) {
	var stats dto.NewsStats
	var g errgroup.Group

	g.Go(func() (err error) { stats.Published, err = s.newsRepo.CountByStatus(models.NewsStatusPublished); return })
	g.Go(func() (err error) { stats.Pending, err = s.newsRepo.CountByStatus(models.NewsStatusPending); return })
	g.Go(func() (err error) { stats.Draft, err = s.newsRepo.CountByStatus(models.NewsStatusDraft); return })
	g.Go(func() (err error) { stats.Rejected, err = s.newsRepo.CountByStatus(models.NewsStatusRejected); return })
	g.Go(func() (err error) { stats.TotalViews, err = s.newsRepo.SumViews(); return })

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &stats, nil
}
