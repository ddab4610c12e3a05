// Package models defines the core domain models for the job board:
// jobs, companies, applications, users, and job-seeker profiles.
package models

import (
	"regexp"
	"strings"
	"time"
)

// JobStatus represents the moderation lifecycle of a job posting.
type JobStatus string

const (
	// JobPending is the initial status of every posted job.
	JobPending  JobStatus = "pending"
	JobApproved JobStatus = "approved"
	JobRejected JobStatus = "rejected"
	JobClosed   JobStatus = "closed"
)

// JobType represents the employment type of a posting.
type JobType string

const (
	FullTime   JobType = "full-time"
	PartTime   JobType = "part-time"
	Contract   JobType = "contract"
	Internship JobType = "internship"
)

// ExperienceLevel represents the seniority a posting targets.
type ExperienceLevel string

const (
	Entry     ExperienceLevel = "entry"
	Mid       ExperienceLevel = "mid"
	Senior    ExperienceLevel = "senior"
	Executive ExperienceLevel = "executive"
)

// Location is a country/city pair.
type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// SalaryRange is a monthly salary band in the given currency.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Job defines the domain model for a job posting.
// Status starts at "pending" and is advanced only by an admin action;
// Views never decreases; Slug is unique across jobs.
type Job struct {
	ID           string          `gorm:"primaryKey" json:"id"`
	Slug         string          `gorm:"uniqueIndex" json:"slug"`
	Title        string          `json:"title"`
	CompanyID    string          `gorm:"index" json:"companyId"`
	CompanyName  string          `json:"companyName"`
	CompanyLogo  string          `json:"companyLogo,omitempty"`
	Location     Location        `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Category     string          `json:"category"`
	Type         JobType         `json:"type"`
	Experience   ExperienceLevel `json:"experience"`
	Salary       SalaryRange     `gorm:"embedded;embeddedPrefix:salary_" json:"salary"`
	Description  string          `json:"description"`
	Requirements []string        `gorm:"serializer:json" json:"requirements"`
	Benefits     []string        `gorm:"serializer:json" json:"benefits"`
	Status       JobStatus       `gorm:"index" json:"status"`
	PostedAt     time.Time       `json:"postedAt"`
	ExpiresAt    *time.Time      `json:"expiresAt,omitempty"`
	Applicants   []string        `gorm:"serializer:json" json:"applicants"`
	Views        int             `json:"views"`
}

// JobUpdate represents the fields that can be updated on a Job.
// Pointer types are used to allow partial updates.
type JobUpdate struct {
	ID             string
	Title          *string
	Category       *string
	Type           *JobType
	Experience     *ExperienceLevel
	SalaryMin      *int    `gorm:"column:salary_min"`
	SalaryMax      *int    `gorm:"column:salary_max"`
	SalaryCurrency *string `gorm:"column:salary_currency"`
	Description    *string
	Requirements   *[]string `gorm:"serializer:json"`
	Benefits       *[]string `gorm:"serializer:json"`
	Status         *JobStatus
	ExpiresAt      *time.Time
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// JobSlug derives the URL-safe slug for a posting from its title and city,
// e.g. ("Senior Software Engineer", "Dubai") -> "senior-software-engineer-dubai".
func JobSlug(title, city string) string {
	return slugify(title) + "-" + slugify(city)
}

func slugify(s string) string {
	s = slugSeparators.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}
