package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
)

// In-memory repository fakes. They implement only as much filter logic
// as the services under test rely on.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == strings.ToLower(email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Email = strings.ToLower(user.Email)
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateStatus(userID string, status models.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Status = status
	return nil
}

func (r *fakeUserRepo) FindWithFilter(filter repositories.UserFilter) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, user := range r.users {
		if filter.Role != "" && user.Role != filter.Role {
			continue
		}
		if filter.Status != "" && user.Status != filter.Status {
			continue
		}
		out = append(out, *user)
	}
	return paginate(out, filter.Page, filter.PageSize)
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*models.Admin
	stamps map[string]time.Time
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		admins: make(map[string]*models.Admin),
		stamps: make(map[string]time.Time),
	}
}

func (r *fakeAdminRepo) FindByID(id string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return nil, repositories.ErrAdminNotFound
	}
	clone := *admin
	return &clone, nil
}

func (r *fakeAdminRepo) FindByEmail(email string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Email == strings.ToLower(email) {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

func (r *fakeAdminRepo) Create(admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	admin.Email = strings.ToLower(admin.Email)
	clone := *admin
	r.admins[admin.ID] = &clone
	return nil
}

func (r *fakeAdminRepo) Update(admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *admin
	r.admins[admin.ID] = &clone
	return nil
}

func (r *fakeAdminRepo) UpdateLastLogin(adminID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stamps[adminID] = at
	if admin, ok := r.admins[adminID]; ok {
		admin.LastLogin = &at
	}
	return nil
}

func (r *fakeAdminRepo) FindAll(page, pageSize int) ([]models.Admin, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Admin
	for _, admin := range r.admins {
		out = append(out, *admin)
	}
	return paginate(out, page, pageSize)
}

type fakeJobRepo struct {
	mu       sync.Mutex
	jobs     map[string]*models.Job
	failures map[string]error
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:     make(map[string]*models.Job),
		failures: make(map[string]error),
	}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.jobs {
		if existing.Slug == job.Slug {
			return repositories.ErrDuplicateJobSlug
		}
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	clone := *job
	return &clone, nil
}

func (r *fakeJobRepo) FindBySlug(slug string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, job := range r.jobs {
		if job.Slug == slug {
			clone := *job
			return &clone, nil
		}
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) FindWithFilter(filter repositories.JobFilter) ([]models.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failures["FindWithFilter"]; err != nil {
		return nil, 0, err
	}
	now := time.Now()
	var out []models.Job
	for _, job := range r.jobs {
		if filter.PublicOnly {
			if job.Status != models.JobStatusApproved || !job.ExpiresAt.After(now) {
				continue
			}
		} else if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		if filter.Category != "" && job.Category != filter.Category {
			continue
		}
		if filter.JobType != "" && job.JobType != filter.JobType {
			continue
		}
		if filter.Location != "" && job.Location != filter.Location {
			continue
		}
		if filter.PostedBy != "" && job.PostedBy != filter.PostedBy {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(job.Title+" "+job.Company+" "+job.Description), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *job)
	}
	return paginate(out, filter.Page, filter.PageSize)
}

func (r *fakeJobRepo) IncrementViews(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		job.Views++
	}
	return nil
}

func (r *fakeJobRepo) IncrementApplicationCount(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failures["IncrementApplicationCount"]; err != nil {
		return err
	}
	if job, ok := r.jobs[id]; ok {
		job.ApplicationCount++
	}
	return nil
}

func (r *fakeJobRepo) CountByStatus(status models.JobStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, job := range r.jobs {
		if job.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepo) SumViews() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, job := range r.jobs {
		n += job.Views
	}
	return n, nil
}

type fakeNewsRepo struct {
	mu       sync.Mutex
	articles map[string]*models.News
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{articles: make(map[string]*models.News)}
}

func (r *fakeNewsRepo) Create(article *models.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}
	clone := *article
	r.articles[article.ID] = &clone
	return nil
}

func (r *fakeNewsRepo) FindByID(id string) (*models.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	article, ok := r.articles[id]
	if !ok {
		return nil, repositories.ErrNewsNotFound
	}
	clone := *article
	return &clone, nil
}

func (r *fakeNewsRepo) FindBySlug(slug string) (*models.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, article := range r.articles {
		if article.Slug == slug {
			clone := *article
			return &clone, nil
		}
	}
	return nil, repositories.ErrNewsNotFound
}

func (r *fakeNewsRepo) Update(article *models.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *article
	r.articles[article.ID] = &clone
	return nil
}

func (r *fakeNewsRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.articles, id)
	return nil
}

func (r *fakeNewsRepo) FindWithFilter(filter repositories.NewsFilter) ([]models.News, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.News
	for _, article := range r.articles {
		if filter.PublishedOnly {
			if article.Status != models.NewsStatusPublished {
				continue
			}
		} else if filter.Status != "" && article.Status != filter.Status {
			continue
		}
		if filter.Category != "" && article.Category != filter.Category {
			continue
		}
		if filter.Language != "" && article.Language != filter.Language {
			continue
		}
		if filter.AuthorID != "" && article.AuthorID != filter.AuthorID {
			continue
		}
		if filter.AuthorKind != "" && article.AuthorKind != filter.AuthorKind {
			continue
		}
		if filter.Featured != nil && article.IsFeatured != *filter.Featured {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(article.Title+" "+article.Excerpt+" "+article.Content), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *article)
	}
	return paginate(out, filter.Page, filter.PageSize)
}

func (r *fakeNewsRepo) IncrementViews(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if article, ok := r.articles[id]; ok {
		article.Views++
	}
	return nil
}

func (r *fakeNewsRepo) CountByStatus(status models.NewsStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, article := range r.articles {
		if article.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeNewsRepo) SumViews() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, article := range r.articles {
		n += article.Views
	}
	return n, nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*models.Application)}
}

func (r *fakeApplicationRepo) Create(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if app.UserID != nil {
		for _, existing := range r.apps {
			if existing.JobID == app.JobID && existing.UserID != nil && *existing.UserID == *app.UserID {
				return repositories.ErrDuplicateApplication
			}
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	clone := *app
	r.apps[app.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	clone := *app
	return &clone, nil
}

func (r *fakeApplicationRepo) FindByJobAndUser(jobID, userID string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.apps {
		if app.JobID == jobID && app.UserID != nil && *app.UserID == userID {
			clone := *app
			return &clone, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindWithFilter(filter repositories.ApplicationFilter) ([]models.Application, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, app := range r.apps {
		if filter.JobID != "" && app.JobID != filter.JobID {
			continue
		}
		if filter.UserID != "" && (app.UserID == nil || *app.UserID != filter.UserID) {
			continue
		}
		if filter.Status != "" && app.Status != filter.Status {
			continue
		}
		out = append(out, *app)
	}
	return paginate(out, filter.Page, filter.PageSize)
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

func (r *fakeApplicationRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.apps)), nil
}

type fakeInquiryRepo struct {
	mu        sync.Mutex
	inquiries map[string]*models.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: make(map[string]*models.Inquiry)}
}

func (r *fakeInquiryRepo) Create(inquiry *models.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inquiry.ID == "" {
		inquiry.ID = uuid.NewString()
	}
	// Column defaults the database would apply.
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}
	if inquiry.Priority == "" {
		inquiry.Priority = models.InquiryPriorityMedium
	}
	clone := *inquiry
	r.inquiries[inquiry.ID] = &clone
	return nil
}

func (r *fakeInquiryRepo) FindByID(id string) (*models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inquiry, ok := r.inquiries[id]
	if !ok {
		return nil, repositories.ErrInquiryNotFound
	}
	clone := *inquiry
	return &clone, nil
}

func (r *fakeInquiryRepo) Update(inquiry *models.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *inquiry
	r.inquiries[inquiry.ID] = &clone
	return nil
}

func (r *fakeInquiryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inquiries, id)
	return nil
}

func (r *fakeInquiryRepo) FindWithFilter(filter repositories.InquiryFilter) ([]models.Inquiry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Inquiry
	for _, inquiry := range r.inquiries {
		if filter.Type != "" && inquiry.Type != filter.Type {
			continue
		}
		if filter.Status != "" && inquiry.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && inquiry.Priority != filter.Priority {
			continue
		}
		out = append(out, *inquiry)
	}
	return paginate(out, filter.Page, filter.PageSize)
}

func (r *fakeInquiryRepo) CountByStatus(status models.InquiryStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, inquiry := range r.inquiries {
		if inquiry.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeMailer records sent mail for assertions.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func paginate[T any](items []T, page, pageSize int) ([]T, int64, error) {
	total := int64(len(items))
	if pageSize <= 0 {
		return items, total, nil
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}, total, nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, nil
}
