package dto

// DashboardStats backs the admin dashboard widgets.
type DashboardStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalJobs         int64 `json:"totalJobs"`
	PendingJobs       int64 `json:"pendingJobs"`
	ApprovedJobs      int64 `json:"approvedJobs"`
	RejectedJobs      int64 `json:"rejectedJobs"`
	TotalNews         int64 `json:"totalNews"`
	PendingNews       int64 `json:"pendingNews"`
	PublishedNews     int64 `json:"publishedNews"`
	TotalApplications int64 `json:"totalApplications"`
	NewInquiries      int64 `json:"newInquiries"`
	TotalJobViews     int64 `json:"totalJobViews"`
	TotalNewsViews    int64 `json:"totalNewsViews"`
}

// PublicStats backs the public landing-page counters.
type PublicStats struct {
	ActiveJobs     int64 `json:"activeJobs"`
	PublishedNews  int64 `json:"publishedNews"`
	TotalJobViews  int64 `json:"totalJobViews"`
	TotalNewsViews int64 `json:"totalNewsViews"`
}

type JobStats struct {
	Approved   int64 `json:"approved"`
	Pending    int64 `json:"pending"`
	Rejected   int64 `json:"rejected"`
	TotalViews int64 `json:"totalViews"`
}

type NewsStats struct {
	Published  int64 `json:"published"`
	Pending    int64 `json:"pending"`
	Draft      int64 `json:"draft"`
	Rejected   int64 `json:"rejected"`
	TotalViews int64 `json:"totalViews"`
}
