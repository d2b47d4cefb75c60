package algorithms

import (
	"sort"
	"time"

	"apnajourney_backend/internal/models"
)

// scoredJob pairs a candidate with its relevance to the target job.
type scoredJob struct {
	job   *models.Job
	score float64
}

// scoreRelated rates how relevant a candidate is to the job a visitor
// is reading (0-100).
func scoreRelated(target, candidate *models.Job, now time.Time) float64 {
	score := 0.0

	// Same category is the strongest signal (40 points).
	if candidate.Category == target.Category {
		score += 40
	}

	// Same district matters for a regional board (30 points).
	if candidate.Location == target.Location {
		score += 30
	}

	// Same employment type (15 points).
	if candidate.JobType == target.JobType {
		score += 15
	}

	// Freshness (up to 15 points, fading over 30 days).
	age := now.Sub(candidate.CreatedAt)
	if age < 0 {
		age = 0
	}
	if days := age.Hours() / 24; days < 30 {
		score += 15 * (1 - days/30)
	}

	return score
}

// RelatedJobs picks the best matches for the target from candidates,
// most relevant first. The target itself is skipped.
func RelatedJobs(target *models.Job, candidates []models.Job, limit int, now time.Time) []models.Job {
	scored := make([]scoredJob, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		if c.ID == target.ID {
			continue
		}
		if s := scoreRelated(target, c, now); s > 0 {
			scored = append(scored, scoredJob{job: c, score: s})
		}
	}

	sort.SliceStable(scored, func(a, b int) bool { return scored[a].score > scored[b].score })

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	result := make([]models.Job, 0, len(scored))
	for _, s := range scored {
		result = append(result, *s.job)
	}
	return result
}
