// Package search implements the job filter engine: a pure, single-pass
// filter over an in-memory job list.
package search

import (
	"strings"

	"github.com/ykhalil/gulfboard/internal/board/models"
)

// Criteria holds the optional filter fields accepted from the search
// surface. Zero values (empty string, 0) impose no constraint.
type Criteria struct {
	Keyword    string                 `form:"keyword" json:"keyword,omitempty"`
	Country    string                 `form:"country" json:"country,omitempty"`
	City       string                 `form:"city" json:"city,omitempty"`
	Category   string                 `form:"category" json:"category,omitempty"`
	Experience models.ExperienceLevel `form:"experience" json:"experience,omitempty"`
	JobType    models.JobType         `form:"jobType" json:"jobType,omitempty"`
	SalaryMin  int                    `form:"salaryMin" json:"salaryMin,omitempty"`
	SalaryMax  int                    `form:"salaryMax" json:"salaryMax,omitempty"`
}

// Filter returns the subsequence of jobs satisfying every provided
// criterion, preserving input order. Empty criteria return the input
// unchanged. The keyword matches case-insensitively against title,
// description, company name, or any requirement line; the other string
// fields match by exact equality; salary bounds overlap the job's band
// (SalaryMin admits jobs whose upper band reaches it, SalaryMax admits
// jobs whose lower band does not exceed it).
func Filter(jobs []models.Job, c Criteria) []models.Job {
	matched := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if matches(&job, &c) {
			matched = append(matched, job)
		}
	}
	return matched
}

func matches(job *models.Job, c *Criteria) bool {
	if c.Keyword != "" && !matchesKeyword(job, c.Keyword) {
		return false
	}
	if c.Country != "" && job.Location.Country != c.Country {
		return false
	}
	if c.City != "" && job.Location.City != c.City {
		return false
	}
	if c.Category != "" && job.Category != c.Category {
		return false
	}
	if c.Experience != "" && job.Experience != c.Experience {
		return false
	}
	if c.JobType != "" && job.Type != c.JobType {
		return false
	}
	if c.SalaryMin != 0 && job.Salary.Max < c.SalaryMin {
		return false
	}
	if c.SalaryMax != 0 && job.Salary.Min > c.SalaryMax {
		return false
	}
	return true
}

func matchesKeyword(job *models.Job, keyword string) bool {
	kw := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(job.Title), kw) ||
		strings.Contains(strings.ToLower(job.Description), kw) ||
		strings.Contains(strings.ToLower(job.CompanyName), kw) {
		return true
	}
	for _, req := range job.Requirements {
		if strings.Contains(strings.ToLower(req), kw) {
			return true
		}
	}
	return false
}
