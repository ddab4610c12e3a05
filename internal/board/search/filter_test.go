package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ykhalil/gulfboard/internal/board/models"
)

func sampleJobs() []models.Job {
	return []models.Job{
		{
			ID:          "job-1",
			Title:       "Senior Software Engineer",
			CompanyName: "Emirates Tech Solutions",
			Location:    models.Location{Country: "UAE", City: "Dubai"},
			Category:    "Technology",
			Type:        models.FullTime,
			Experience:  models.Senior,
			Salary:      models.SalaryRange{Min: 25000, Max: 35000, Currency: "AED"},
			Description: "Build scalable backend services",
			Requirements: []string{
				"5+ years of experience",
				"Strong knowledge of Go and Kubernetes",
			},
		},
		{
			ID:          "job-2",
			Title:       "Marketing Manager",
			CompanyName: "Gulf Retail Group",
			Location:    models.Location{Country: "Saudi Arabia", City: "Riyadh"},
			Category:    "Marketing",
			Type:        models.FullTime,
			Experience:  models.Mid,
			Salary:      models.SalaryRange{Min: 15000, Max: 22000, Currency: "SAR"},
			Description: "Lead regional campaigns",
		},
		{
			ID:          "job-3",
			Title:       "Junior Accountant",
			CompanyName: "Doha Finance House",
			Location:    models.Location{Country: "Qatar", City: "Doha"},
			Category:    "Finance",
			Type:        models.PartTime,
			Experience:  models.Entry,
			Salary:      models.SalaryRange{Min: 8000, Max: 12000, Currency: "QAR"},
			Description: "Assist with monthly closing",
		},
	}
}

func jobIDs(jobs []models.Job) []string {
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	return ids
}

func TestFilterEmptyCriteria(t *testing.T) {
	jobs := sampleJobs()
	result := Filter(jobs, Criteria{})
	assert.Equal(t, jobIDs(jobs), jobIDs(result), "empty criteria should return all jobs in order")
}

func TestFilterPreservesOrder(t *testing.T) {
	jobs := sampleJobs()
	result := Filter(jobs, Criteria{JobType: models.FullTime})
	assert.Equal(t, []string{"job-1", "job-2"}, jobIDs(result), "matches should keep input order")
}

func TestFilterKeyword(t *testing.T) {
	jobs := sampleJobs()

	t.Run("matches title case-insensitively", func(t *testing.T) {
		result := Filter(jobs, Criteria{Keyword: "ENGINEER"})
		assert.Equal(t, []string{"job-1"}, jobIDs(result))
	})

	t.Run("matches company name", func(t *testing.T) {
		result := Filter(jobs, Criteria{Keyword: "gulf retail"})
		assert.Equal(t, []string{"job-2"}, jobIDs(result))
	})

	t.Run("matches description", func(t *testing.T) {
		result := Filter(jobs, Criteria{Keyword: "monthly closing"})
		assert.Equal(t, []string{"job-3"}, jobIDs(result))
	})

	t.Run("matches requirement lines", func(t *testing.T) {
		result := Filter(jobs, Criteria{Keyword: "kubernetes"})
		assert.Equal(t, []string{"job-1"}, jobIDs(result))
	})

	t.Run("no match", func(t *testing.T) {
		result := Filter(jobs, Criteria{Keyword: "astronaut"})
		assert.Empty(t, result)
	})
}

func TestFilterLocation(t *testing.T) {
	jobs := sampleJobs()

	result := Filter(jobs, Criteria{Country: "UAE"})
	assert.Equal(t, []string{"job-1"}, jobIDs(result))

	result = Filter(jobs, Criteria{City: "Riyadh"})
	assert.Equal(t, []string{"job-2"}, jobIDs(result))

	// Country and city must both hold.
	result = Filter(jobs, Criteria{Country: "UAE", City: "Riyadh"})
	assert.Empty(t, result)
}

func TestFilterSalaryBounds(t *testing.T) {
	jobs := sampleJobs()

	t.Run("min admits overlapping bands", func(t *testing.T) {
		// job-2's band tops out at 22000, which reaches 15000.
		result := Filter(jobs, Criteria{SalaryMin: 15000})
		assert.Equal(t, []string{"job-1", "job-2"}, jobIDs(result))
	})

	t.Run("max admits bands starting below it", func(t *testing.T) {
		result := Filter(jobs, Criteria{SalaryMax: 20000})
		assert.Equal(t, []string{"job-2", "job-3"}, jobIDs(result))
	})

	t.Run("band window", func(t *testing.T) {
		result := Filter(jobs, Criteria{SalaryMin: 15000, SalaryMax: 25000})
		assert.Equal(t, []string{"job-1", "job-2"}, jobIDs(result))
	})

	t.Run("zero means unset", func(t *testing.T) {
		result := Filter(jobs, Criteria{SalaryMin: 0, SalaryMax: 0})
		assert.Len(t, result, 3)
	})
}

func TestFilterCombinedCriteria(t *testing.T) {
	jobs := sampleJobs()
	result := Filter(jobs, Criteria{
		Keyword:    "engineer",
		Country:    "UAE",
		Category:   "Technology",
		Experience: models.Senior,
		JobType:    models.FullTime,
		SalaryMin:  20000,
	})
	assert.Equal(t, []string{"job-1"}, jobIDs(result))
}

func TestFilterEmptyInput(t *testing.T) {
	result := Filter(nil, Criteria{Keyword: "anything"})
	assert.Empty(t, result)
}
