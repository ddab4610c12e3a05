// Package controller implements the business logic (service layer) of the
// job board: job search and lifecycle, applications, seeker features,
// admin moderation, and the simulated authentication, orchestrating
// repository operations and sending relevant events.
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
	"github.com/ykhalil/gulfboard/internal/board/search"
	"go.uber.org/zap"
)

type EventProducer interface {
	Produce(eventType events.EventType, ref events.Ref)
}

// Store defines the entity-store interface for the board. The single
// production implementation is db.Repository; the contract keeps mutation
// through one injected object (there is no other writer).
type Store interface {
	GetJobByID(ctx context.Context, id string) (*models.Job, error)
	GetJobBySlug(ctx context.Context, slug string) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListJobsByCompany(ctx context.Context, companyID string) ([]models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) error
	UpdateJob(ctx context.Context, update *models.JobUpdate) error
	IncrementJobViews(ctx context.Context, id string) error
	JobSlugExists(ctx context.Context, slug string) (bool, error)

	GetCompanyByID(ctx context.Context, id string) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, update *models.CompanyUpdate) error
	IncrementJobsPosted(ctx context.Context, id string) error

	GetApplicationByID(ctx context.Context, id string) (*models.Application, error)
	ApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error)
	ApplicationsByUser(ctx context.Context, userID string) ([]models.Application, error)
	ApplicationExists(ctx context.Context, jobID, userID string) (bool, error)
	UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus, viewedAt *time.Time) error

	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	VerifyEmployersByCompany(ctx context.Context, companyID string) error

	CountJobs(ctx context.Context) (int64, error)
	CountJobsByStatus(ctx context.Context, status models.JobStatus) (int64, error)
	CountApplications(ctx context.Context) (int64, error)
	CountUsersByRole(ctx context.Context, role models.UserRole) (int64, error)
	CountVerifiedEmployers(ctx context.Context) (int64, error)

	WithTransaction(ctx context.Context, fn func(repo *db.Repository) error) error
	Close() error
}

// KV is the injected key-value persistence interface carrying per-user
// scoped data (saved jobs, applied job ids, profiles, CV view counters).
type KV interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	DeleteKey(ctx context.Context, key string) error
}

// BoardService provides the board's job, company, application, and
// moderation operations over the injected store.
type BoardService struct {
	store    Store
	kv       KV
	producer EventProducer
	logger   *zap.Logger
}

// NewBoardService constructs a BoardService with a store, the key-value
// side store, an event producer, and a logger.
func NewBoardService(store Store, kv KV, producer EventProducer, logger *zap.Logger) *BoardService {
	return &BoardService{
		store:    store,
		kv:       kv,
		producer: producer,
		logger:   logger.Named("board_service"),
	}
}

// SearchJobs returns the jobs matching the criteria, in posting order.
func (s *BoardService) SearchJobs(ctx context.Context, criteria search.Criteria) ([]models.Job, error) {
	jobs, err := s.store.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return search.Filter(jobs, criteria), nil
}

// GetJobByID retrieves a job, returning ErrNotFound if absent.
func (s *BoardService) GetJobByID(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.store.GetJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ViewJob resolves a job by slug for a detail-page visit and increments
// its view counter.
func (s *BoardService) ViewJob(ctx context.Context, slug string) (*models.Job, error) {
	job, err := s.store.GetJobBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if err := s.store.IncrementJobViews(ctx, job.ID); err != nil {
		// The visit still succeeds; the counter is best-effort.
		s.logger.Warn("failed to increment job views",
			zap.Error(err),
			zap.String("job_id", job.ID),
		)
	} else {
		job.Views++
	}
	return job, nil
}

// PostJob creates a job on behalf of an employer. The slug is derived from
// title and city (uniquified when taken), the status forced to pending,
// and the company's posted-jobs counter advanced.
func (s *BoardService) PostJob(ctx context.Context, employerID string, job *models.Job) (*models.Job, error) {
	if job.Title == "" || job.Location.City == "" {
		return nil, fmt.Errorf("%w: title and city are required", e.ErrInvalidInput)
	}

	user, err := s.store.GetUserByID(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}
	acct, ok := user.AsEmployer()
	if !ok {
		return nil, fmt.Errorf("%w: only employers can post jobs", e.ErrForbidden)
	}

	job.ID = "job-" + uuid.NewString()
	job.CompanyID = acct.CompanyID
	job.CompanyName = acct.CompanyName
	if company, err := s.store.GetCompanyByID(ctx, acct.CompanyID); err == nil {
		job.CompanyName = company.Name
		job.CompanyLogo = company.Logo
	}

	slug := models.JobSlug(job.Title, job.Location.City)
	taken, err := s.store.JobSlugExists(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		slug = slug + "-" + job.ID[len(job.ID)-8:]
	}
	job.Slug = slug
	job.Status = models.JobPending
	job.PostedAt = time.Now().UTC()
	job.Applicants = []string{}
	job.Views = 0

	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	if err := s.store.IncrementJobsPosted(ctx, job.CompanyID); err != nil {
		s.logger.Warn("failed to increment company job counter",
			zap.Error(err),
			zap.String("company_id", job.CompanyID),
		)
	}
	go func() {
		s.producer.Produce(events.JobCreated, events.Ref{JobID: job.ID, CompanyID: job.CompanyID})
	}()
	return job, nil
}

// UpdateJob shallow-merges the provided fields onto the matching job.
// A missing id is a silent no-op, never an error.
func (s *BoardService) UpdateJob(ctx context.Context, update *models.JobUpdate) error {
	if update.ID == "" {
		return fmt.Errorf("%w: job id required", e.ErrInvalidInput)
	}
	if err := s.store.UpdateJob(ctx, update); err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	go func() {
		s.producer.Produce(events.JobUpdated, events.Ref{JobID: update.ID})
	}()
	return nil
}

// Companies lists all companies.
func (s *BoardService) Companies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.store.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// GetCompanyByID retrieves a company, returning ErrNotFound if absent.
func (s *BoardService) GetCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	company, err := s.store.GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// EmployerJobs lists the postings belonging to the employer's company.
func (s *BoardService) EmployerJobs(ctx context.Context, employerID string) ([]models.Job, error) {
	user, err := s.store.GetUserByID(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}
	acct, ok := user.AsEmployer()
	if !ok {
		return nil, fmt.Errorf("%w: not an employer account", e.ErrForbidden)
	}
	return s.store.ListJobsByCompany(ctx, acct.CompanyID)
}
