package services

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
	"apnajourney_backend/internal/services/dto"
)

const defaultSearchLimit = 10

type SearchService interface {
	Search(query *dto.SearchQuery) (*dto.SearchResults, error)
}

type SearchServiceImpl struct {
	jobRepo  repositories.JobRepository
	newsRepo repositories.NewsRepository
}

func NewSearchService(jobRepo repositories.JobRepository, newsRepo repositories.NewsRepository) SearchService {
	return &SearchServiceImpl{jobRepo: jobRepo, newsRepo: newsRepo}
}

// Search runs full-text search over the public surfaces. Queries under
// two characters return empty result sets without touching the store.
func (s *SearchServiceImpl) Search(query *dto.SearchQuery) (*dto.SearchResults, error) {
	q := strings.TrimSpace(query.Q)
	results := &dto.SearchResults{
		Jobs: []models.Job{},
		News: []models.News{},
	}
	if len(q) < 2 {
		return results, nil
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	searchJobs := query.Type == "" || query.Type == "jobs" || query.Type == "all"
	searchNews := query.Type == "" || query.Type == "news" || query.Type == "all"

	var g errgroup.Group

	if searchJobs {
		g.Go(func() error {
			jobs, _, err := s.jobRepo.FindWithFilter(repositories.JobFilter{
				Search:     q,
				PublicOnly: true,
				Page:       1,
				PageSize:   limit,
			})
			if err != nil {
				return err
			}
			results.Jobs = jobs
			return nil
		})
	}

	if searchNews {
		g.Go(func() error {
			news, _, err := s.newsRepo.FindWithFilter(repositories.NewsFilter{
				Search:        q,
				PublishedOnly: true,
				Page:          1,
				PageSize:      limit,
			})
			if err != nil {
				return err
			}
			results.News = news
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return results, nil
}
