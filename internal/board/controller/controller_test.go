package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ykhalil/gulfboard/internal/board/db"
	e "github.com/ykhalil/gulfboard/internal/board/errors"
	"github.com/ykhalil/gulfboard/internal/board/events"
	"github.com/ykhalil/gulfboard/internal/board/models"
	"github.com/ykhalil/gulfboard/internal/board/search"
	"github.com/ykhalil/gulfboard/internal/pkg/utils"
	"go.uber.org/zap/zaptest"
)

// setupBoard wires a BoardService over an in-memory repository with the
// standard fixture: one company, one approved job, a seeker and an
// employer account.
func setupBoard(t *testing.T) (*BoardService, *db.Repository) {
	repo, err := db.NewRepository(&db.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.CreateCompany(ctx, &models.Company{
		ID:       "company-1",
		Slug:     "emirates-tech-solutions",
		Name:     "Emirates Tech Solutions",
		Logo:     "/logos/ets.png",
		Industry: "Technology",
		Size:     "201-500",
		Location: models.Location{Country: "UAE", City: "Dubai"},
	}))
	require.NoError(t, repo.CreateJob(ctx, &models.Job{
		ID:          "job-1",
		Slug:        "backend-engineer-dubai",
		Title:       "Backend Engineer",
		CompanyID:   "company-1",
		CompanyName: "Emirates Tech Solutions",
		Location:    models.Location{Country: "UAE", City: "Dubai"},
		Category:    "Technology",
		Type:        models.FullTime,
		Experience:  models.Mid,
		Salary:      models.SalaryRange{Min: 15000, Max: 25000, Currency: "AED"},
		Status:      models.JobApproved,
		PostedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Applicants:  []string{},
	}))
	require.NoError(t, repo.CreateUser(ctx, &models.User{
		ID:    "user-1",
		Email: "seeker@example.com",
		Name:  "Ahmed Hassan",
		Role:  models.RoleJobSeeker,
	}))
	require.NoError(t, repo.CreateUser(ctx, &models.User{
		ID:          "user-2",
		Email:       "employer@example.com",
		Name:        "Sara Al-Mansouri",
		Role:        models.RoleEmployer,
		CompanyID:   utils.Ptr("company-1"),
		CompanyName: utils.Ptr("Emirates Tech Solutions"),
		Verified:    utils.Ptr(false),
	}))

	svc := NewBoardService(repo, repo, events.Discard{}, zaptest.NewLogger(t))
	return svc, repo
}

func TestSearchJobs(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	jobs, err := svc.SearchJobs(ctx, search.Criteria{})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	jobs, err = svc.SearchJobs(ctx, search.Criteria{Keyword: "backend"})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	jobs, err = svc.SearchJobs(ctx, search.Criteria{Country: "Qatar"})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestViewJobIncrementsViews(t *testing.T) {
	svc, repo := setupBoard(t)
	ctx := context.Background()

	job, err := svc.ViewJob(ctx, "backend-engineer-dubai")
	require.NoError(t, err)
	assert.Equal(t, 1, job.Views)

	stored, err := repo.GetJobByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Views)

	_, err = svc.ViewJob(ctx, "no-such-slug")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestPostJob(t *testing.T) {
	svc, repo := setupBoard(t)
	ctx := context.Background()

	posted, err := svc.PostJob(ctx, "user-2", &models.Job{
		Title:    "DevOps Engineer",
		Location: models.Location{Country: "UAE", City: "Abu Dhabi"},
		Category: "Technology",
		Type:     models.FullTime,
		Status:   models.JobApproved, // must be ignored
	})
	require.NoError(t, err)

	assert.Equal(t, models.JobPending, posted.Status, "new postings always start pending")
	assert.Equal(t, "devops-engineer-abu-dhabi", posted.Slug)
	assert.Equal(t, "company-1", posted.CompanyID)
	assert.Equal(t, "Emirates Tech Solutions", posted.CompanyName)
	assert.Equal(t, "/logos/ets.png", posted.CompanyLogo)
	assert.NotEmpty(t, posted.ID)

	company, err := repo.GetCompanyByID(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, 1, company.JobsPosted)
}

func TestPostJobSlugCollision(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	// A job with the slug backend-engineer-dubai already exists.
	posted, err := svc.PostJob(ctx, "user-2", &models.Job{
		Title:    "Backend Engineer",
		Location: models.Location{Country: "UAE", City: "Dubai"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, "backend-engineer-dubai", posted.Slug)
	assert.Contains(t, posted.Slug, "backend-engineer-dubai-")
}

func TestPostJobValidation(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	_, err := svc.PostJob(ctx, "user-2", &models.Job{Title: "No City"})
	assert.ErrorIs(t, err, e.ErrInvalidInput)

	_, err = svc.PostJob(ctx, "user-1", &models.Job{
		Title:    "Seeker Posting",
		Location: models.Location{City: "Dubai"},
	})
	assert.ErrorIs(t, err, e.ErrForbidden, "seekers cannot post jobs")
}

func TestApply(t *testing.T) {
	svc, repo := setupBoard(t)
	ctx := context.Background()

	app, err := svc.Apply(ctx, "user-1", "job-1", "https://cv.example.com/ahmed.pdf")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Equal(t, "Backend Engineer", app.JobTitle)
	assert.Equal(t, "Ahmed Hassan", app.UserName)
	assert.Nil(t, app.ViewedAt)

	job, err := repo.GetJobByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, job.Applicants)

	applied, err := svc.AppliedJobIDs(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"job-1"}, applied)
}

func TestApplyDuplicate(t *testing.T) {
	svc, repo := setupBoard(t)
	ctx := context.Background()

	_, err := svc.Apply(ctx, "user-1", "job-1", "")
	require.NoError(t, err)

	_, err = svc.Apply(ctx, "user-1", "job-1", "")
	assert.ErrorIs(t, err, e.ErrDuplicateApplication)

	apps, err := repo.ApplicationsByJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Len(t, apps, 1, "the duplicate must not be stored")

	job, err := repo.GetJobByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, job.Applicants, "the applicant list stays single")
}

func TestApplyGuards(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	_, err := svc.Apply(ctx, "user-2", "job-1", "")
	assert.ErrorIs(t, err, e.ErrForbidden, "employers cannot apply")

	_, err = svc.Apply(ctx, "user-1", "job-missing", "")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestApplicationsByJobOwnership(t *testing.T) {
	svc, repo := setupBoard(t)
	ctx := context.Background()

	_, err := svc.Apply(ctx, "user-1", "job-1", "")
	require.NoError(t, err)

	apps, err := svc.ApplicationsByJob(ctx, "user-2", "job-1")
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	// An employer from another company is rejected.
	require.NoError(t, repo.CreateUser(ctx, &models.User{
		ID:        "user-3",
		Email:     "rival@example.com",
		Role:      models.RoleEmployer,
		CompanyID: utils.Ptr("company-2"),
	}))
	_, err = svc.ApplicationsByJob(ctx, "user-3", "job-1")
	assert.ErrorIs(t, err, e.ErrForbidden)
}

func TestReviewApplicationStampsViewedOnce(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	app, err := svc.Apply(ctx, "user-1", "job-1", "")
	require.NoError(t, err)

	reviewed, err := svc.ReviewApplication(ctx, "user-2", app.ID, models.ApplicationReviewed)
	require.NoError(t, err)
	require.NotNil(t, reviewed.ViewedAt)
	firstViewed := *reviewed.ViewedAt

	time.Sleep(10 * time.Millisecond)
	shortlisted, err := svc.ReviewApplication(ctx, "user-2", app.ID, models.ApplicationShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationShortlisted, shortlisted.Status)
	require.NotNil(t, shortlisted.ViewedAt)
	assert.Equal(t, firstViewed, *shortlisted.ViewedAt, "viewed timestamp is stamped once")
}

func TestRecordCVView(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	app, err := svc.Apply(ctx, "user-1", "job-1", "")
	require.NoError(t, err)

	views, err := svc.RecordCVView(ctx, "user-2", app.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, views)

	views, err = svc.RecordCVView(ctx, "user-2", app.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, views)

	all, err := svc.CVViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{app.ID: 2}, all)
}

func TestApplicationReviewOwnership(t *testing.T) {
	svc, repo := setupBoard(t)
	ctx := context.Background()

	app, err := svc.Apply(ctx, "user-1", "job-1", "")
	require.NoError(t, err)

	// An employer from another company can neither review the application
	// nor bump its CV views.
	require.NoError(t, repo.CreateUser(ctx, &models.User{
		ID:        "user-3",
		Email:     "rival@example.com",
		Role:      models.RoleEmployer,
		CompanyID: utils.Ptr("company-2"),
	}))
	_, err = svc.ReviewApplication(ctx, "user-3", app.ID, models.ApplicationReviewed)
	assert.ErrorIs(t, err, e.ErrForbidden)
	_, err = svc.RecordCVView(ctx, "user-3", app.ID)
	assert.ErrorIs(t, err, e.ErrForbidden)

	// Seekers cannot review at all.
	_, err = svc.ReviewApplication(ctx, "user-1", app.ID, models.ApplicationReviewed)
	assert.ErrorIs(t, err, e.ErrForbidden)

	// The rejected attempts leave the application untouched.
	got, err := repo.GetApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, got.Status)
	assert.Nil(t, got.ViewedAt)
}

func TestSaveAndUnsaveJob(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveJob(ctx, "user-1", "job-1"))
	require.NoError(t, svc.SaveJob(ctx, "user-1", "job-1"), "saving twice is a no-op")

	saved, err := svc.SavedJobs(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"job-1"}, saved)

	assert.ErrorIs(t, svc.SaveJob(ctx, "user-1", "job-missing"), e.ErrNotFound)

	require.NoError(t, svc.UnsaveJob(ctx, "user-1", "job-1"))
	saved, err = svc.SavedJobs(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestProfileDefaultsWhenUnsaved(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	p, err := svc.Profile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "+971", p.PersonalDetails.PhoneCountryCode)
	assert.Equal(t, models.NoVisa, p.VisaAndAvailability.VisaStatus)
}

func TestSaveProfileRecomputesCompleteness(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	p := &models.JobSeekerProfile{
		PersonalDetails: models.PersonalDetails{
			Name:  "Ahmed Hassan",
			Email: "seeker@example.com",
		},
		ProfileCompleteness: 99, // client value is ignored
	}
	saved, err := svc.SaveProfile(ctx, "user-1", p)
	require.NoError(t, err)
	assert.Equal(t, 10, saved.ProfileCompleteness)
	assert.NotEmpty(t, saved.ProfileCreatedAt)
	assert.NotEmpty(t, saved.LastUpdated)

	// The creation timestamp survives later saves.
	created := saved.ProfileCreatedAt
	again, err := svc.SaveProfile(ctx, "user-1", &models.JobSeekerProfile{
		PersonalDetails: models.PersonalDetails{Name: "Ahmed Hassan"},
	})
	require.NoError(t, err)
	assert.Equal(t, created, again.ProfileCreatedAt)
}

func TestSkipProfile(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	skipped, err := svc.ProfileSkipped(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, skipped)

	require.NoError(t, svc.SkipProfile(ctx, "user-1"))
	skipped, err = svc.ProfileSkipped(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, skipped)
}

func TestEmployerCompanyProfileFallback(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	// Nothing saved yet: the company record backs the profile.
	p, err := svc.EmployerCompanyProfile(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "Emirates Tech Solutions", p.Name)
	assert.Equal(t, "Technology", p.Industry)

	edited := &models.CompanyProfile{
		Name:        "Emirates Tech Solutions",
		Description: "We build things",
		Industry:    "Technology",
		Size:        "501-1000",
	}
	require.NoError(t, svc.SaveEmployerCompanyProfile(ctx, "user-2", edited))

	p, err = svc.EmployerCompanyProfile(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "501-1000", p.Size)
	assert.Equal(t, "We build things", p.Description)
}

func TestEmployerJobs(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	jobs, err := svc.EmployerJobs(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	_, err = svc.EmployerJobs(ctx, "user-1")
	assert.ErrorIs(t, err, e.ErrForbidden)
}

func TestJobModeration(t *testing.T) {
	svc, repo := setupBoard(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateJob(ctx, &models.Job{
		ID:        "job-2",
		Slug:      "pending-job-dubai",
		Title:     "Pending Job",
		CompanyID: "company-1",
		Location:  models.Location{Country: "UAE", City: "Dubai"},
		Status:    models.JobPending,
		PostedAt:  time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
	}))

	approved, err := svc.ApproveJob(ctx, "job-2")
	require.NoError(t, err)
	assert.Equal(t, models.JobApproved, approved.Status)

	rejected, err := svc.RejectJob(ctx, "job-2")
	require.NoError(t, err)
	assert.Equal(t, models.JobRejected, rejected.Status)

	closed, err := svc.CloseJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobClosed, closed.Status)

	_, err = svc.ApproveJob(ctx, "job-missing")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestJobsByStatus(t *testing.T) {
	svc, repo := setupBoard(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateJob(ctx, &models.Job{
		ID:       "job-2",
		Slug:     "pending-job-dubai",
		Title:    "Pending Job",
		Location: models.Location{Country: "UAE", City: "Dubai"},
		Status:   models.JobPending,
		PostedAt: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
	}))

	all, err := svc.JobsByStatus(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.JobsByStatus(ctx, models.JobPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "job-2", pending[0].ID)
}

func TestVerifyCompany(t *testing.T) {
	svc, repo := setupBoard(t)
	ctx := context.Background()

	company, err := svc.VerifyCompany(ctx, "company-1")
	require.NoError(t, err)
	assert.True(t, company.Verified)

	employer, err := repo.GetUserByID(ctx, "user-2")
	require.NoError(t, err)
	require.NotNil(t, employer.Verified)
	assert.True(t, *employer.Verified, "employer accounts follow their company")

	_, err = svc.VerifyCompany(ctx, "company-missing")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestDashboardStats(t *testing.T) {
	svc, _ := setupBoard(t)
	ctx := context.Background()

	_, err := svc.Apply(ctx, "user-1", "job-1", "")
	require.NoError(t, err)
	_, err = svc.VerifyCompany(ctx, "company-1")
	require.NoError(t, err)

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalJobs)
	assert.EqualValues(t, 0, stats.PendingJobs)
	assert.EqualValues(t, 1, stats.TotalEmployers)
	assert.EqualValues(t, 1, stats.VerifiedEmployers)
	assert.EqualValues(t, 1, stats.TotalApplications)
	assert.EqualValues(t, 1, stats.TotalJobSeekers)
}
