package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/repositories"
)

// exportBatchSize is the page size used when streaming rows out of the
// store during an export.
const exportBatchSize = 500

type ExportService interface {
	ExportCSV(w io.Writer, entity string) error
}

// ExportServiceImpl streams admin CSV exports. Rows are fetched in
// batches so an export never loads a whole table at once.
type ExportServiceImpl struct {
	userRepo    repositories.UserRepository
	jobRepo     repositories.JobRepository
	newsRepo    repositories.NewsRepository
	appRepo     repositories.ApplicationRepository
	inquiryRepo repositories.InquiryRepository
}

func NewExportService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	newsRepo repositories.NewsRepository,
	appRepo repositories.ApplicationRepository,
	inquiryRepo repositories.InquiryRepository,
) ExportService {
	return &ExportServiceImpl{
		userRepo:    userRepo,
		jobRepo:     jobRepo,
		newsRepo:    newsRepo,
		appRepo:     appRepo,
		inquiryRepo: inquiryRepo,
	}
}

func (s *ExportServiceImpl) ExportCSV(w io.Writer, entity string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	var err error
	switch entity {
	case "jobs":
		err = s.exportJobs(cw)
	case "news":
		err = s.exportNews(cw)
	case "applications":
		err = s.exportApplications(cw)
	case "inquiries":
		err = s.exportInquiries(cw)
	case "users":
		err = s.exportUsers(cw)
	default:
		return apperrors.NewBadRequestError("Unknown export entity")
	}
	if err != nil {
		return err
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ExportServiceImpl) exportJobs(cw *csv.Writer) error {
	header := []string{"id", "title", "company", "category", "jobType", "location", "salary", "status", "views", "applications", "postedBy", "expiresAt", "createdAt"}
	if err := cw.Write(header); err != nil {
		return apperrors.InternalError(err)
	}

	for page := 1; ; page++ {
		jobs, total, err := s.jobRepo.FindWithFilter(repositories.JobFilter{
			Page:     page,
			PageSize: exportBatchSize,
		})
		if err != nil {
			return apperrors.InternalError(err)
		}
		for i := range jobs {
			j := &jobs[i]
			row := []string{
				j.ID, j.Title, j.Company, j.Category, j.JobType, j.Location, j.Salary,
				string(j.Status),
				strconv.FormatInt(j.Views, 10),
				strconv.FormatInt(j.ApplicationCount, 10),
				j.PostedBy,
				j.ExpiresAt.Format(time.RFC3339),
				j.CreatedAt.Format(time.RFC3339),
			}
			if err := cw.Write(row); err != nil {
				return apperrors.InternalError(err)
			}
		}
		if int64(page*exportBatchSize) >= total {
			return nil
		}
	}
}

func (s *ExportServiceImpl) exportNews(cw *csv.Writer) error {
	header := []string{"id", "title", "category", "language", "status", "authorId", "authorKind", "tags", "views", "publishedAt", "createdAt"}
	if err := cw.Write(header); err != nil {
		return apperrors.InternalError(err)
	}

	for page := 1; ; page++ {
		articles, total, err := s.newsRepo.FindWithFilter(repositories.NewsFilter{
			Page:     page,
			PageSize: exportBatchSize,
		})
		if err != nil {
			return apperrors.InternalError(err)
		}
		for i := range articles {
			a := &articles[i]
			row := []string{
				a.ID, a.Title, a.Category, a.Language,
				string(a.Status),
				a.AuthorID, string(a.AuthorKind),
				joinJSONTags(a.Tags),
				strconv.FormatInt(a.Views, 10),
				formatTimePtr(a.PublishedAt),
				a.CreatedAt.Format(time.RFC3339),
			}
			if err := cw.Write(row); err != nil {
				return apperrors.InternalError(err)
			}
		}
		if int64(page*exportBatchSize) >= total {
			return nil
		}
	}
}

func (s *ExportServiceImpl) exportApplications(cw *csv.Writer) error {
	header := []string{"id", "jobId", "userId", "applicantName", "email", "phone", "status", "createdAt"}
	if err := cw.Write(header); err != nil {
		return apperrors.InternalError(err)
	}

	for page := 1; ; page++ {
		apps, total, err := s.appRepo.FindWithFilter(repositories.ApplicationFilter{
			Page:     page,
			PageSize: exportBatchSize,
		})
		if err != nil {
			return apperrors.InternalError(err)
		}
		for i := range apps {
			a := &apps[i]
			userID := ""
			if a.UserID != nil {
				userID = *a.UserID
			}
			row := []string{
				a.ID, a.JobID, userID, a.ApplicantName, a.Email, a.Phone,
				string(a.Status),
				a.CreatedAt.Format(time.RFC3339),
			}
			if err := cw.Write(row); err != nil {
				return apperrors.InternalError(err)
			}
		}
		if int64(page*exportBatchSize) >= total {
			return nil
		}
	}
}

func (s *ExportServiceImpl) exportInquiries(cw *csv.Writer) error {
	header := []string{"id", "name", "email", "subject", "type", "status", "priority", "resolvedAt", "createdAt"}
	if err := cw.Write(header); err != nil {
		return apperrors.InternalError(err)
	}

	for page := 1; ; page++ {
		inquiries, total, err := s.inquiryRepo.FindWithFilter(repositories.InquiryFilter{
			Page:     page,
			PageSize: exportBatchSize,
		})
		if err != nil {
			return apperrors.InternalError(err)
		}
		for i := range inquiries {
			q := &inquiries[i]
			row := []string{
				q.ID, q.Name, q.Email, q.Subject, q.Type,
				string(q.Status), string(q.Priority),
				formatTimePtr(q.ResolvedAt),
				q.CreatedAt.Format(time.RFC3339),
			}
			if err := cw.Write(row); err != nil {
				return apperrors.InternalError(err)
			}
		}
		if int64(page*exportBatchSize) >= total {
			return nil
		}
	}
}

func (s *ExportServiceImpl) exportUsers(cw *csv.Writer) error {
	header := []string{"id", "name", "email", "phone", "role", "status", "createdAt"}
	if err := cw.Write(header); err != nil {
		return apperrors.InternalError(err)
	}

	for page := 1; ; page++ {
		users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
			Page:     page,
			PageSize: exportBatchSize,
		})
		if err != nil {
			return apperrors.InternalError(err)
		}
		for i := range users {
			u := &users[i]
			row := []string{
				u.ID, u.Name, u.Email, u.Phone,
				string(u.Role), string(u.Status),
				u.CreatedAt.Format(time.RFC3339),
			}
			if err := cw.Write(row); err != nil {
				return apperrors.InternalError(err)
			}
		}
		if int64(page*exportBatchSize) >= total {
			return nil
		}
	}
}

// ExportFilename names the download after the entity and the export day.
func ExportFilename(entity string) string {
	return fmt.Sprintf("%s-%s.csv", entity, timeNow().Format("2006-01-02"))
}

func joinJSONTags(raw []byte) string {
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return ""
	}
	return strings.Join(tags, ";")
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
