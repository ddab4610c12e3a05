package models

import "time"

// ApplicationStatus represents the employer-side review state of an application.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// Application links one job seeker to one job posting with a review status.
// Job and company names are denormalized so listings render without joins.
// A user may hold at most one application per job.
type Application struct {
	ID          string            `gorm:"primaryKey" json:"id"`
	JobID       string            `gorm:"uniqueIndex:idx_applications_job_user" json:"jobId"`
	JobTitle    string            `json:"jobTitle"`
	CompanyID   string            `gorm:"index" json:"companyId"`
	CompanyName string            `json:"companyName"`
	UserID      string            `gorm:"uniqueIndex:idx_applications_job_user" json:"userId"`
	UserName    string            `json:"userName"`
	UserEmail   string            `json:"userEmail"`
	CVURL       string            `json:"cvUrl,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
	ViewedAt    *time.Time        `json:"viewedAt,omitempty"`
}

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalJobs         int64 `json:"totalJobs"`
	PendingJobs       int64 `json:"pendingJobs"`
	TotalEmployers    int64 `json:"totalEmployers"`
	VerifiedEmployers int64 `json:"verifiedEmployers"`
	TotalApplications int64 `json:"totalApplications"`
	TotalJobSeekers   int64 `json:"totalJobSeekers"`
}
