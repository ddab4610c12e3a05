// Package db implements the persistent entity store for the job board on
// top of gorm: postgres for real deployments, in-memory SQLite for the
// demo/seed mode and tests.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	e "github.com/ykhalil/gulfboard/internal/board/errors"
	"github.com/ykhalil/gulfboard/internal/board/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	// Driver selects the backend: "postgres" or "sqlite".
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	// Path is the SQLite database path; ":memory:" for the demo mode.
	Path string
}

func NewRepository(cfg *Config) (*Repository, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	case "postgres", "":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: unknown db driver %q", e.ErrInvalidInput, cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Discard, TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Job{},
		&models.Company{},
		&models.Application{},
		&models.User{},
		&KVEntry{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

// Jobs

func (r *Repository) CreateJob(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *Repository) GetJobByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	result := r.db.WithContext(ctx).First(&job, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &job, nil
}

func (r *Repository) GetJobBySlug(ctx context.Context, slug string) (*models.Job, error) {
	var job models.Job
	result := r.db.WithContext(ctx).First(&job, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &job, nil
}

// ListJobs returns all jobs in posting order (oldest first).
func (r *Repository) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	result := r.db.WithContext(ctx).Order("posted_at, id").Find(&jobs)
	return jobs, result.Error
}

func (r *Repository) ListJobsByCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	var jobs []models.Job
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("posted_at, id").
		Find(&jobs)
	return jobs, result.Error
}

// UpdateJob shallow-merges the non-nil fields of update onto the matching
// job. A missing id is a silent no-op, not an error.
func (r *Repository) UpdateJob(ctx context.Context, update *models.JobUpdate) error {
	return r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", update.ID).
		Updates(update).Error
}

// IncrementJobViews bumps the view counter for one detail-page visit.
// The counter never decreases.
func (r *Repository) IncrementJobViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *Repository) JobSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("slug = ?", slug).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

// Companies

func (r *Repository) CreateCompany(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *Repository) GetCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	result := r.db.WithContext(ctx).First(&company, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &company, nil
}

func (r *Repository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	result := r.db.WithContext(ctx).Order("created_at, id").Find(&companies)
	return companies, result.Error
}

func (r *Repository) UpdateCompany(ctx context.Context, update *models.CompanyUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", update.ID).
		Updates(update)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// IncrementJobsPosted bumps a company's posted-jobs counter.
func (r *Repository) IncrementJobsPosted(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", id).
		UpdateColumn("jobs_posted", gorm.Expr("jobs_posted + 1")).Error
}

// Applications

func (r *Repository) CreateApplication(ctx context.Context, app *models.Application) error {
	result := r.db.WithContext(ctx).Create(app)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicateApplication
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetApplicationByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	result := r.db.WithContext(ctx).First(&app, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &app, nil
}

func (r *Repository) ApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	var apps []models.Application
	result := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_at, id").
		Find(&apps)
	return apps, result.Error
}

func (r *Repository) ApplicationsByUser(ctx context.Context, userID string) ([]models.Application, error) {
	var apps []models.Application
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at, id").
		Find(&apps)
	return apps, result.Error
}

func (r *Repository) ApplicationExists(ctx context.Context, jobID, userID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

// AppendApplicant adds the user to the job's denormalized applicants list.
// Callers pair it with CreateApplication inside WithTransaction.
func (r *Repository) AppendApplicant(ctx context.Context, jobID, userID string) error {
	job, err := r.GetJobByID(ctx, jobID)
	if err != nil {
		return err
	}
	// UpdateColumn bypasses the field serializer, so the list is
	// marshaled explicitly before it hits the column.
	raw, err := json.Marshal(append(job.Applicants, userID))
	if err != nil {
		return fmt.Errorf("failed to encode applicants: %w", err)
	}
	return r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", jobID).
		UpdateColumn("applicants", raw).Error
}

// UpdateApplicationStatus moves an application through the review pipeline.
// ViewedAt is stamped once, on the first status change away from pending.
func (r *Repository) UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus, viewedAt *time.Time) error {
	updates := map[string]any{"status": status}
	if viewedAt != nil {
		updates["viewed_at"] = viewedAt
	}
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// Users

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicateEmail
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// VerifyEmployersByCompany marks every employer account of the company as
// verified, keeping the user records in step with the company's badge.
func (r *Repository) VerifyEmployersByCompany(ctx context.Context, companyID string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ? AND company_id = ?", models.RoleEmployer, companyID).
		UpdateColumn("verified", true).Error
}

func (r *Repository) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

// Counters for the admin dashboard.

func (r *Repository) CountJobs(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Job{}).Count(&count)
	return count, result.Error
}

func (r *Repository) CountJobsByStatus(ctx context.Context, status models.JobStatus) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("status = ?", status).
		Count(&count)
	return count, result.Error
}

func (r *Repository) CountApplications(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Application{}).Count(&count)
	return count, result.Error
}

func (r *Repository) CountUsersByRole(ctx context.Context, role models.UserRole) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", role).
		Count(&count)
	return count, result.Error
}

func (r *Repository) CountVerifiedEmployers(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ? AND verified = ?", models.RoleEmployer, true).
		Count(&count)
	return count, result.Error
}

func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Close() error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
