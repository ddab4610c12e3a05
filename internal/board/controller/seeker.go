package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ykhalil/gulfboard/internal/board/db"
	e "github.com/ykhalil/gulfboard/internal/board/errors"
	"github.com/ykhalil/gulfboard/internal/board/models"
	"github.com/ykhalil/gulfboard/internal/board/profile"
)

// SavedJobs returns the seeker's saved job ids in save order.
func (s *BoardService) SavedJobs(ctx context.Context, userID string) ([]string, error) {
	var saved []string
	if _, err := s.kv.GetJSON(ctx, db.SavedJobsKey(userID), &saved); err != nil {
		return nil, fmt.Errorf("failed to read saved jobs: %w", err)
	}
	if saved == nil {
		saved = []string{}
	}
	return saved, nil
}

// SaveJob adds the job to the seeker's saved list. Saving an already saved
// job is a no-op; saving a missing job is ErrNotFound.
func (s *BoardService) SaveJob(ctx context.Context, userID, jobID string) error {
	if _, err := s.store.GetJobByID(ctx, jobID); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get job: %w", err)
	}
	saved, err := s.SavedJobs(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range saved {
		if id == jobID {
			return nil
		}
	}
	saved = append(saved, jobID)
	return s.kv.SetJSON(ctx, db.SavedJobsKey(userID), saved)
}

// UnsaveJob removes the job from the seeker's saved list; absent entries
// are a no-op.
func (s *BoardService) UnsaveJob(ctx context.Context, userID, jobID string) error {
	saved, err := s.SavedJobs(ctx, userID)
	if err != nil {
		return err
	}
	kept := saved[:0]
	for _, id := range saved {
		if id != jobID {
			kept = append(kept, id)
		}
	}
	return s.kv.SetJSON(ctx, db.SavedJobsKey(userID), kept)
}

// AppliedJobIDs returns the seeker's applied job ids in apply order.
func (s *BoardService) AppliedJobIDs(ctx context.Context, userID string) ([]string, error) {
	var applied []string
	if _, err := s.kv.GetJSON(ctx, db.AppliedJobsKey(userID), &applied); err != nil {
		return nil, fmt.Errorf("failed to read applied jobs: %w", err)
	}
	if applied == nil {
		applied = []string{}
	}
	return applied, nil
}

// Profile returns the seeker's stored profile, or the empty-profile
// defaults when none has been saved yet.
func (s *BoardService) Profile(ctx context.Context, userID string) (*models.JobSeekerProfile, error) {
	var p models.JobSeekerProfile
	found, err := s.kv.GetJSON(ctx, db.ProfileKey(userID), &p)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if !found {
		return profile.Default(time.Now()), nil
	}
	return &p, nil
}

// SaveProfile persists the seeker's profile, recomputing the completeness
// score and the updated timestamp. The creation timestamp survives saves.
func (s *BoardService) SaveProfile(ctx context.Context, userID string, p *models.JobSeekerProfile) (*models.JobSeekerProfile, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: profile required", e.ErrInvalidInput)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if p.ProfileCreatedAt == "" {
		var previous models.JobSeekerProfile
		if found, err := s.kv.GetJSON(ctx, db.ProfileKey(userID), &previous); err == nil && found {
			p.ProfileCreatedAt = previous.ProfileCreatedAt
		}
		if p.ProfileCreatedAt == "" {
			p.ProfileCreatedAt = now
		}
	}
	p.ProfileCompleteness = profile.Completeness(p)
	p.LastUpdated = now
	if err := s.kv.SetJSON(ctx, db.ProfileKey(userID), p); err != nil {
		return nil, fmt.Errorf("failed to write profile: %w", err)
	}
	return p, nil
}

// SkipProfile records that the seeker dismissed the profile wizard.
func (s *BoardService) SkipProfile(ctx context.Context, userID string) error {
	return s.kv.SetJSON(ctx, db.ProfileSkippedKey(userID), "true")
}

// ProfileSkipped reports whether the seeker dismissed the profile wizard.
func (s *BoardService) ProfileSkipped(ctx context.Context, userID string) (bool, error) {
	var sentinel string
	found, err := s.kv.GetJSON(ctx, db.ProfileSkippedKey(userID), &sentinel)
	if err != nil {
		return false, fmt.Errorf("failed to read profile-skipped flag: %w", err)
	}
	return found && sentinel == "true", nil
}

// EmployerCompanyProfile returns the employer-editable company profile,
// falling back to the company record when nothing has been saved.
func (s *BoardService) EmployerCompanyProfile(ctx context.Context, employerID string) (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	found, err := s.kv.GetJSON(ctx, db.EmployerProfileKey(employerID), &p)
	if err != nil {
		return nil, fmt.Errorf("failed to read employer profile: %w", err)
	}
	if found {
		return &p, nil
	}

	user, err := s.store.GetUserByID(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}
	acct, ok := user.AsEmployer()
	if !ok {
		return nil, fmt.Errorf("%w: not an employer account", e.ErrForbidden)
	}
	company, err := s.store.GetCompanyByID(ctx, acct.CompanyID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return &models.CompanyProfile{Name: acct.CompanyName}, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &models.CompanyProfile{
		Name:        company.Name,
		Logo:        company.Logo,
		Description: company.Description,
		Website:     company.Website,
		Industry:    company.Industry,
		Size:        company.Size,
		Location:    company.Location,
	}, nil
}

// SaveEmployerCompanyProfile persists the employer's edited company
// profile to the key-value store.
func (s *BoardService) SaveEmployerCompanyProfile(ctx context.Context, employerID string, p *models.CompanyProfile) error {
	if p == nil {
		return fmt.Errorf("%w: profile required", e.ErrInvalidInput)
	}
	return s.kv.SetJSON(ctx, db.EmployerProfileKey(employerID), p)
}
