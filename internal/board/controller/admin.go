package controller

import (
	"context"
	"errors"
	"fmt"

	e "github.com/ykhalil/gulfboard/internal/board/errors"
	"github.com/ykhalil/gulfboard/internal/board/events"
	"github.com/ykhalil/gulfboard/internal/board/models"
	"github.com/ykhalil/gulfboard/internal/pkg/utils"
)

// ApproveJob advances a pending posting to approved.
func (s *BoardService) ApproveJob(ctx context.Context, jobID string) (*models.Job, error) {
	return s.moderateJob(ctx, jobID, models.JobApproved, events.JobApproved)
}

// RejectJob marks a posting rejected.
func (s *BoardService) RejectJob(ctx context.Context, jobID string) (*models.Job, error) {
	return s.moderateJob(ctx, jobID, models.JobRejected, events.JobRejected)
}

// CloseJob marks a posting closed.
func (s *BoardService) CloseJob(ctx context.Context, jobID string) (*models.Job, error) {
	return s.moderateJob(ctx, jobID, models.JobClosed, events.JobClosed)
}

func (s *BoardService) moderateJob(ctx context.Context, jobID string, status models.JobStatus, event events.EventType) (*models.Job, error) {
	job, err := s.store.GetJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	update := &models.JobUpdate{ID: jobID, Status: &status}
	if err := s.store.UpdateJob(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}
	job.Status = status
	go func() {
		s.producer.Produce(event, events.Ref{JobID: job.ID, CompanyID: job.CompanyID})
	}()
	return job, nil
}

// JobsByStatus lists all jobs, optionally narrowed to one lifecycle
// status, for the admin review queue.
func (s *BoardService) JobsByStatus(ctx context.Context, status models.JobStatus) ([]models.Job, error) {
	jobs, err := s.store.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	if status == "" {
		return jobs, nil
	}
	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Status == status {
			filtered = append(filtered, job)
		}
	}
	return filtered, nil
}

// VerifyCompany sets the company's trust badge and marks its employer
// accounts verified.
func (s *BoardService) VerifyCompany(ctx context.Context, companyID string) (*models.Company, error) {
	company, err := s.store.GetCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	update := &models.CompanyUpdate{ID: companyID, Verified: utils.Ptr(true)}
	if err := s.store.UpdateCompany(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}
	if err := s.store.VerifyEmployersByCompany(ctx, companyID); err != nil {
		return nil, fmt.Errorf("failed to verify employer accounts: %w", err)
	}
	company.Verified = true
	go func() {
		s.producer.Produce(events.CompanyVerified, events.Ref{CompanyID: companyID})
	}()
	return company, nil
}

// DashboardStats aggregates the admin dashboard counters.
func (s *BoardService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	var err error
	if stats.TotalJobs, err = s.store.CountJobs(ctx); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}
	if stats.PendingJobs, err = s.store.CountJobsByStatus(ctx, models.JobPending); err != nil {
		return nil, fmt.Errorf("failed to count pending jobs: %w", err)
	}
	if stats.TotalEmployers, err = s.store.CountUsersByRole(ctx, models.RoleEmployer); err != nil {
		return nil, fmt.Errorf("failed to count employers: %w", err)
	}
	if stats.VerifiedEmployers, err = s.store.CountVerifiedEmployers(ctx); err != nil {
		return nil, fmt.Errorf("failed to count verified employers: %w", err)
	}
	if stats.TotalApplications, err = s.store.CountApplications(ctx); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	if stats.TotalJobSeekers, err = s.store.CountUsersByRole(ctx, models.RoleJobSeeker); err != nil {
		return nil, fmt.Errorf("failed to count job seekers: %w", err)
	}
	return stats, nil
}
