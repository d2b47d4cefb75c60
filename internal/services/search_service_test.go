package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/services/dto"
)

type searchFixture struct {
	jobRepo  *fakeJobRepo
	newsRepo *fakeNewsRepo
	svc      SearchService
}

func newSearchFixture(t *testing.T) *searchFixture {
	t.Helper()
	f := &searchFixture{
		jobRepo:  newFakeJobRepo(),
		newsRepo: newFakeNewsRepo(),
	}
	f.svc = NewSearchService(f.jobRepo, f.newsRepo)

	// One open job and one published article, both mentioning "driver".
	job, err := NewJobService(f.jobRepo).Create("employer-1", createJobRequest())
	require.NoError(t, err)
	job.Title = "Delivery Driver"
	job.Status = models.JobStatusApproved
	require.NoError(t, f.jobRepo.Update(job))

	newsSvc := NewNewsService(f.newsRepo)
	req := createNewsRequest()
	req.Title = "Driver training centre opens in Bokaro"
	_, err = newsSvc.CreateByAdmin(Identity{ID: "admin-1", Kind: models.AuthorKindAdmin}, req)
	require.NoError(t, err)
	return f
}

func TestSearchService_ShortQueryReturnsEmpty(t *testing.T) {
	f := newSearchFixture(t)

	for _, q := range []string{"", "d", "  d  "} {
		results, err := f.svc.Search(&dto.SearchQuery{Q: q})
		require.NoError(t, err)
		assert.Empty(t, results.Jobs)
		assert.Empty(t, results.News)
	}
}

func TestSearchService_SearchesBothSurfaces(t *testing.T) {
	f := newSearchFixture(t)

	results, err := f.svc.Search(&dto.SearchQuery{Q: "driver"})
	require.NoError(t, err)

	jobs, ok := results.Jobs.([]models.Job)
	require.True(t, ok)
	assert.Len(t, jobs, 1)

	news, ok := results.News.([]models.News)
	require.True(t, ok)
	assert.Len(t, news, 1)
}

func TestSearchService_TypeGating(t *testing.T) {
	f := newSearchFixture(t)

	results, err := f.svc.Search(&dto.SearchQuery{Q: "driver", Type: "jobs"})
	require.NoError(t, err)
	assert.Len(t, results.Jobs, 1)
	assert.Empty(t, results.News)

	results, err = f.svc.Search(&dto.SearchQuery{Q: "driver", Type: "news"})
	require.NoError(t, err)
	assert.Empty(t, results.Jobs)
	assert.Len(t, results.News, 1)
}

func TestSearchService_OnlyPublicContent(t *testing.T) {
	f := newSearchFixture(t)

	// A pending job with a matching title is never surfaced.
	pending, err := NewJobService(f.jobRepo).Create("employer-2", createJobRequest())
	require.NoError(t, err)
	pending.Title = "Night Driver"
	require.NoError(t, f.jobRepo.Update(pending))

	results, err := f.svc.Search(&dto.SearchQuery{Q: "driver", Type: "jobs"})
	require.NoError(t, err)
	assert.Len(t, results.Jobs, 1)
}
