// Package seed loads the fixed demo dataset into an empty store. The
// records mirror the board's reference dataset: six Gulf employers, a
// spread of postings across countries and categories, one account per
// role, and one submitted application.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/ykhalil/gulfboard/internal/board/db"
	"github.com/ykhalil/gulfboard/internal/board/models"
	"github.com/ykhalil/gulfboard/internal/pkg/utils"
	"go.uber.org/zap"
)

// Load populates the repository with the demo dataset. It is idempotent:
// a store that already holds jobs is left untouched.
func Load(ctx context.Context, repo *db.Repository, logger *zap.Logger) error {
	count, err := repo.CountJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to check store: %w", err)
	}
	if count > 0 {
		logger.Info("store already seeded, skipping")
		return nil
	}

	for i := range Companies {
		if err := repo.CreateCompany(ctx, &Companies[i]); err != nil {
			return fmt.Errorf("failed to seed company %s: %w", Companies[i].ID, err)
		}
	}
	for i := range Jobs {
		if err := repo.CreateJob(ctx, &Jobs[i]); err != nil {
			return fmt.Errorf("failed to seed job %s: %w", Jobs[i].ID, err)
		}
	}
	for i := range Users {
		if err := repo.CreateUser(ctx, &Users[i]); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", Users[i].ID, err)
		}
	}
	err = repo.WithTransaction(ctx, func(tx *db.Repository) error {
		for i := range Applications {
			app := &Applications[i]
			if err := tx.CreateApplication(ctx, app); err != nil {
				return err
			}
			if err := tx.AppendApplicant(ctx, app.JobID, app.UserID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed applications: %w", err)
	}

	logger.Info("seeded demo dataset",
		zap.Int("companies", len(Companies)),
		zap.Int("jobs", len(Jobs)),
		zap.Int("users", len(Users)),
		zap.Int("applications", len(Applications)),
	)
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Companies is the demo employer set.
var Companies = []models.Company{
	{
		ID: "comp-1", Name: "Chalhoub Group", Slug: "chalhoub-group",
		Logo:        "/logos/chalhoub.png",
		Description: "Leading luxury retail group in the Middle East",
		Website:     "https://chalhoub-group.com",
		Industry:    "Retail", Size: "5000+",
		Location: models.Location{Country: "UAE", City: "Dubai"},
		Verified: true, JobsPosted: 12, CreatedAt: day(2020, 1, 15),
	},
	{
		ID: "comp-2", Name: "Alshaya Group", Slug: "alshaya-group",
		Logo:        "/logos/alshaya.png",
		Description: "International retail franchise operator",
		Website:     "https://alshaya.com",
		Industry:    "Retail", Size: "10000+",
		Location: models.Location{Country: "Kuwait", City: "Kuwait City"},
		Verified: true, JobsPosted: 8, CreatedAt: day(2019, 5, 20),
	},
	{
		ID: "comp-3", Name: "Accor Hotels", Slug: "accor-hotels",
		Logo:        "/logos/accor.png",
		Description: "World-leading hospitality group",
		Website:     "https://accor.com",
		Industry:    "Hospitality", Size: "5000+",
		Location: models.Location{Country: "UAE", City: "Dubai"},
		Verified: true, JobsPosted: 15, CreatedAt: day(2018, 3, 10),
	},
	{
		ID: "comp-4", Name: "Deloitte", Slug: "deloitte",
		Logo:        "/logos/deloitte.png",
		Description: "Global professional services network",
		Website:     "https://deloitte.com",
		Industry:    "Consulting", Size: "10000+",
		Location: models.Location{Country: "UAE", City: "Dubai"},
		Verified: true, JobsPosted: 20, CreatedAt: day(2017, 8, 12),
	},
	{
		ID: "comp-5", Name: "Alpha Projects & Logistics", Slug: "alpha-projects-logistics",
		Logo:        "/logos/alpha.png",
		Description: "Leading logistics and project management company",
		Website:     "https://alpha.com",
		Industry:    "Logistics", Size: "1000-5000",
		Location: models.Location{Country: "Saudi Arabia", City: "Riyadh"},
		Verified: true, JobsPosted: 5, CreatedAt: day(2021, 2, 28),
	},
	{
		ID: "comp-6", Name: "Alfanar", Slug: "alfanar",
		Logo:        "/logos/alfanar.png",
		Description: "Engineering and construction services",
		Website:     "https://alfanar.com",
		Industry:    "Construction", Size: "5000+",
		Location: models.Location{Country: "Saudi Arabia", City: "Riyadh"},
		Verified: true, JobsPosted: 10, CreatedAt: day(2019, 11, 5),
	},
}

// Jobs is the demo posting set.
var Jobs = []models.Job{
	{
		ID: "job-1", Slug: "senior-software-engineer-dubai",
		Title:     "Senior Software Engineer",
		CompanyID: "comp-1", CompanyName: "Chalhoub Group", CompanyLogo: "/logos/chalhoub.png",
		Location: models.Location{Country: "UAE", City: "Dubai"},
		Category: "IT & Software", Type: models.FullTime, Experience: models.Senior,
		Salary:      models.SalaryRange{Min: 15000, Max: 25000, Currency: "AED"},
		Description: "We are looking for an experienced Senior Software Engineer to join our technology team. You will be responsible for designing and developing scalable web applications, leading technical initiatives, and mentoring junior developers.",
		Requirements: []string{
			"Bachelor's degree in Computer Science or related field",
			"5+ years of experience in software development",
			"Strong proficiency in React, Node.js, and TypeScript",
			"Experience with cloud platforms (AWS, Azure)",
			"Excellent problem-solving and communication skills",
		},
		Benefits: []string{
			"Competitive salary package",
			"Health insurance",
			"Annual flight tickets",
			"Professional development opportunities",
			"Flexible working hours",
		},
		Status:   models.JobApproved,
		PostedAt: day(2024, 1, 15), ExpiresAt: utils.Ptr(day(2024, 3, 15)),
		Applicants: []string{}, Views: 234,
	},
	{
		ID: "job-2", Slug: "finance-manager-riyadh",
		Title:     "Finance Manager",
		CompanyID: "comp-2", CompanyName: "Alshaya Group", CompanyLogo: "/logos/alshaya.png",
		Location: models.Location{Country: "Saudi Arabia", City: "Riyadh"},
		Category: "Finance & Accounting", Type: models.FullTime, Experience: models.Senior,
		Salary:      models.SalaryRange{Min: 18000, Max: 28000, Currency: "SAR"},
		Description: "We are seeking a Finance Manager to oversee financial operations, budgeting, and financial reporting. The ideal candidate will have strong analytical skills and experience in retail finance.",
		Requirements: []string{
			"MBA or CPA qualification",
			"8+ years of experience in finance",
			"Experience in retail or FMCG industry",
			"Strong Excel and financial modeling skills",
			"Excellent leadership abilities",
		},
		Benefits: []string{
			"Attractive salary package",
			"Medical insurance",
			"Performance bonus",
			"Career growth opportunities",
		},
		Status:   models.JobApproved,
		PostedAt: day(2024, 1, 20), ExpiresAt: utils.Ptr(day(2024, 3, 20)),
		Applicants: []string{}, Views: 189,
	},
	{
		ID: "job-3", Slug: "marketing-specialist-doha",
		Title:     "Digital Marketing Specialist",
		CompanyID: "comp-3", CompanyName: "Accor Hotels", CompanyLogo: "/logos/accor.png",
		Location: models.Location{Country: "Qatar", City: "Doha"},
		Category: "Sales & Marketing", Type: models.FullTime, Experience: models.Mid,
		Salary:      models.SalaryRange{Min: 12000, Max: 18000, Currency: "QAR"},
		Description: "Join our marketing team to drive digital marketing campaigns, manage social media presence, and enhance brand visibility across digital channels.",
		Requirements: []string{
			"Bachelor's degree in Marketing or related field",
			"3+ years of digital marketing experience",
			"Proficiency in Google Ads and social media platforms",
			"Strong content creation skills",
		},
		Benefits: []string{
			"Competitive salary",
			"Health insurance",
			"Annual leave tickets",
			"Training opportunities",
		},
		Status:   models.JobApproved,
		PostedAt: day(2024, 1, 22), ExpiresAt: utils.Ptr(day(2024, 3, 22)),
		Applicants: []string{}, Views: 156,
	},
	{
		ID: "job-4", Slug: "hr-business-partner-dubai",
		Title:     "HR Business Partner",
		CompanyID: "comp-4", CompanyName: "Deloitte", CompanyLogo: "/logos/deloitte.png",
		Location: models.Location{Country: "UAE", City: "Dubai"},
		Category: "Human Resources", Type: models.FullTime, Experience: models.Senior,
		Salary:      models.SalaryRange{Min: 20000, Max: 30000, Currency: "AED"},
		Description: "Partner with business leaders to deliver people strategy, drive talent programs, and support organizational change across the region.",
		Requirements: []string{
			"Bachelor's degree in HR or Business Administration",
			"7+ years of HR experience",
			"Experience in professional services",
			"Strong stakeholder management skills",
		},
		Benefits: []string{
			"Competitive package",
			"Medical coverage for family",
			"Wellness programs",
			"Hybrid working",
		},
		Status:   models.JobApproved,
		PostedAt: day(2024, 1, 25), ExpiresAt: utils.Ptr(day(2024, 3, 25)),
		Applicants: []string{}, Views: 142,
	},
	{
		ID: "job-5", Slug: "logistics-coordinator-riyadh",
		Title:     "Logistics Coordinator",
		CompanyID: "comp-5", CompanyName: "Alpha Projects & Logistics", CompanyLogo: "/logos/alpha.png",
		Location: models.Location{Country: "Saudi Arabia", City: "Riyadh"},
		Category: "Engineering", Type: models.Contract, Experience: models.Entry,
		Salary:      models.SalaryRange{Min: 8000, Max: 12000, Currency: "SAR"},
		Description: "Coordinate shipments, track deliveries, and liaise with carriers and customs to keep project cargo moving on schedule.",
		Requirements: []string{
			"Diploma or degree in logistics or supply chain",
			"1+ years of coordination experience",
			"Working knowledge of customs documentation",
			"Good English communication skills",
		},
		Benefits: []string{
			"Transport allowance",
			"Medical insurance",
			"Overtime pay",
		},
		Status:   models.JobApproved,
		PostedAt: day(2024, 1, 26), ExpiresAt: utils.Ptr(day(2024, 3, 26)),
		Applicants: []string{}, Views: 77,
	},
	{
		ID: "job-6", Slug: "site-engineer-riyadh",
		Title:     "Site Engineer",
		CompanyID: "comp-6", CompanyName: "Alfanar", CompanyLogo: "/logos/alfanar.png",
		Location: models.Location{Country: "Saudi Arabia", City: "Riyadh"},
		Category: "Construction", Type: models.FullTime, Experience: models.Mid,
		Salary:      models.SalaryRange{Min: 10000, Max: 16000, Currency: "SAR"},
		Description: "Supervise on-site construction activities, ensure quality and safety compliance, and coordinate subcontractors for substation projects.",
		Requirements: []string{
			"Bachelor's degree in Civil or Electrical Engineering",
			"4+ years of site experience",
			"Knowledge of Saudi building codes",
			"Ability to read technical drawings",
		},
		Benefits: []string{
			"Housing allowance",
			"Health insurance",
			"Annual bonuses",
		},
		Status:   models.JobApproved,
		PostedAt: day(2024, 1, 28), ExpiresAt: utils.Ptr(day(2024, 3, 28)),
		Applicants: []string{}, Views: 98,
	},
	{
		ID: "job-7", Slug: "restaurant-supervisor-kuwait-city",
		Title:     "Restaurant Supervisor",
		CompanyID: "comp-2", CompanyName: "Alshaya Group", CompanyLogo: "/logos/alshaya.png",
		Location: models.Location{Country: "Kuwait", City: "Kuwait City"},
		Category: "Hospitality", Type: models.FullTime, Experience: models.Mid,
		Salary:      models.SalaryRange{Min: 450, Max: 650, Currency: "KWD"},
		Description: "Lead the daily service of a flagship restaurant, manage shift teams, and uphold brand and food-safety standards.",
		Requirements: []string{
			"3+ years of restaurant experience",
			"Prior supervisory responsibility",
			"Strong customer service orientation",
		},
		Benefits: []string{
			"Shared accommodation",
			"Meals on duty",
			"Annual flight ticket",
		},
		Status:   models.JobPending,
		PostedAt: day(2024, 2, 1),
		Applicants: []string{}, Views: 12,
	},
}

// Users is the demo account set: one job seeker, one employer, one admin.
var Users = []models.User{
	{
		ID: "user-1", Email: "seeker@demo.com", Name: "Ahmed Hassan",
		Role: models.RoleJobSeeker, CreatedAt: day(2023, 6, 15),
	},
	{
		ID: "user-2", Email: "employer@demo.com", Name: "Sarah Al-Mansoori",
		Role:      models.RoleEmployer,
		CompanyID: utils.Ptr("comp-1"), CompanyName: utils.Ptr("Chalhoub Group"),
		Verified: utils.Ptr(true), CreatedAt: day(2023, 1, 10),
	},
	{
		ID: "user-3", Email: "admin@demo.com", Name: "Admin User",
		Role: models.RoleAdmin, CreatedAt: day(2023, 1, 1),
	},
}

// Applications is the demo application set.
var Applications = []models.Application{
	{
		ID: "app-1", JobID: "job-1", JobTitle: "Senior Software Engineer",
		CompanyID: "comp-1", CompanyName: "Chalhoub Group",
		UserID: "user-1", UserName: "Ahmed Hassan", UserEmail: "seeker@demo.com",
		CVURL:  "/cvs/ahmed-hassan.pdf",
		Status: models.ApplicationPending, AppliedAt: day(2024, 1, 20),
	},
}
