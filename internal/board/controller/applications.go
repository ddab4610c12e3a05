package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ykhalil/gulfboard/internal/board/db"
	e "github.com/ykhalil/gulfboard/internal/board/errors"
	"github.com/ykhalil/gulfboard/internal/board/events"
	"github.com/ykhalil/gulfboard/internal/board/models"
	"go.uber.org/zap"
)

// Apply submits an application for the seeker to the given job. Inserting
// the application record and appending the seeker to the job's applicants
// list happen in one transaction; a second application to the same job is
// rejected with ErrDuplicateApplication. The seeker's applied-job ids in
// the key-value store are refreshed afterwards.
func (s *BoardService) Apply(ctx context.Context, seekerID, jobID, cvURL string) (*models.Application, error) {
	user, err := s.store.GetUserByID(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}
	if !user.IsJobSeeker() {
		return nil, fmt.Errorf("%w: only job seekers can apply", e.ErrForbidden)
	}

	job, err := s.store.GetJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	app := &models.Application{
		ID:          "app-" + uuid.NewString(),
		JobID:       job.ID,
		JobTitle:    job.Title,
		CompanyID:   job.CompanyID,
		CompanyName: job.CompanyName,
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		CVURL:       cvURL,
		Status:      models.ApplicationPending,
		AppliedAt:   time.Now().UTC(),
	}

	err = s.store.WithTransaction(ctx, func(repo *db.Repository) error {
		exists, err := repo.ApplicationExists(ctx, job.ID, user.ID)
		if err != nil {
			return err
		}
		if exists {
			return e.ErrDuplicateApplication
		}
		if err := repo.CreateApplication(ctx, app); err != nil {
			return err
		}
		return repo.AppendApplicant(ctx, job.ID, user.ID)
	})
	if err != nil {
		if errors.Is(err, e.ErrDuplicateApplication) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	if err := s.appendAppliedJob(ctx, user.ID, job.ID); err != nil {
		s.logger.Warn("failed to record applied job id",
			zap.Error(err),
			zap.String("user_id", user.ID),
		)
	}
	go func() {
		s.producer.Produce(events.ApplicationSubmitted, events.Ref{
			JobID:         job.ID,
			ApplicationID: app.ID,
			UserID:        user.ID,
		})
	}()
	return app, nil
}

// ApplicationsByJob lists a job's applications in applied order, guarding
// that the job belongs to the requesting employer's company.
func (s *BoardService) ApplicationsByJob(ctx context.Context, employerID, jobID string) ([]models.Application, error) {
	user, err := s.store.GetUserByID(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}
	acct, ok := user.AsEmployer()
	if !ok {
		return nil, fmt.Errorf("%w: not an employer account", e.ErrForbidden)
	}
	job, err := s.store.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != acct.CompanyID {
		return nil, fmt.Errorf("%w: job belongs to another company", e.ErrForbidden)
	}
	return s.store.ApplicationsByJob(ctx, jobID)
}

// ApplicationsByUser lists the seeker's own applications in applied order.
func (s *BoardService) ApplicationsByUser(ctx context.Context, userID string) ([]models.Application, error) {
	return s.store.ApplicationsByUser(ctx, userID)
}

// employerApplication loads an application and guards that it belongs to
// the requesting employer's company.
func (s *BoardService) employerApplication(ctx context.Context, employerID, id string) (*models.Application, error) {
	user, err := s.store.GetUserByID(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}
	acct, ok := user.AsEmployer()
	if !ok {
		return nil, fmt.Errorf("%w: not an employer account", e.ErrForbidden)
	}
	app, err := s.store.GetApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app.CompanyID != acct.CompanyID {
		return nil, fmt.Errorf("%w: application belongs to another company", e.ErrForbidden)
	}
	return app, nil
}

// ReviewApplication moves an application to a new review status on behalf
// of the employer, guarding that the application belongs to the employer's
// company. The viewed timestamp is stamped once, on the first transition
// away from pending.
func (s *BoardService) ReviewApplication(ctx context.Context, employerID, id string, status models.ApplicationStatus) (*models.Application, error) {
	app, err := s.employerApplication(ctx, employerID, id)
	if err != nil {
		return nil, err
	}

	var viewedAt *time.Time
	if app.ViewedAt == nil && status != models.ApplicationPending {
		now := time.Now().UTC()
		viewedAt = &now
	}
	if err := s.store.UpdateApplicationStatus(ctx, id, status, viewedAt); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	app.Status = status
	if viewedAt != nil {
		app.ViewedAt = viewedAt
	}
	go func() {
		s.producer.Produce(events.ApplicationReviewed, events.Ref{
			JobID:         app.JobID,
			ApplicationID: app.ID,
			UserID:        app.UserID,
		})
	}()
	return app, nil
}

// RecordCVView increments the per-application CV view counter kept in the
// key-value store and returns the new count. Only the employer whose
// company holds the application may bump it.
func (s *BoardService) RecordCVView(ctx context.Context, employerID, applicationID string) (int, error) {
	if _, err := s.employerApplication(ctx, employerID, applicationID); err != nil {
		return 0, err
	}
	views := map[string]int{}
	if _, err := s.kv.GetJSON(ctx, db.CVViewsKey, &views); err != nil {
		return 0, fmt.Errorf("failed to read cv views: %w", err)
	}
	views[applicationID]++
	if err := s.kv.SetJSON(ctx, db.CVViewsKey, views); err != nil {
		return 0, fmt.Errorf("failed to write cv views: %w", err)
	}
	return views[applicationID], nil
}

// CVViews returns the CV view counter map (application id to count).
func (s *BoardService) CVViews(ctx context.Context) (map[string]int, error) {
	views := map[string]int{}
	if _, err := s.kv.GetJSON(ctx, db.CVViewsKey, &views); err != nil {
		return nil, fmt.Errorf("failed to read cv views: %w", err)
	}
	return views, nil
}

func (s *BoardService) appendAppliedJob(ctx context.Context, userID, jobID string) error {
	var applied []string
	if _, err := s.kv.GetJSON(ctx, db.AppliedJobsKey(userID), &applied); err != nil {
		return err
	}
	for _, id := range applied {
		if id == jobID {
			return nil
		}
	}
	applied = append(applied, jobID)
	return s.kv.SetJSON(ctx, db.AppliedJobsKey(userID), applied)
}
