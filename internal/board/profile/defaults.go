package profile

import (
	"time"

	"github.com/ykhalil/gulfboard/internal/pkg/utils"

	"github.com/ykhalil/gulfboard/internal/board/models"
)

// Default returns the all-empty profile created on a seeker's first login.
// Note the defaults are not score-zero: experience years and the visa and
// availability defaults already count as answered, so a fresh profile
// scores 25.
func Default(now time.Time) *models.JobSeekerProfile {
	stamp := now.UTC().Format(time.RFC3339)
	return &models.JobSeekerProfile{
		PersonalDetails: models.PersonalDetails{
			PhoneCountryCode: "+971",
		},
		JobDetails: models.JobDetails{
			ExperienceYears: utils.Ptr(0),
			Skills:          []string{},
		},
		VisaAndAvailability: models.VisaAvailability{
			VisaStatus:        models.NoVisa,
			NoticePeriod:      models.OneMonth,
			CurrentlyEmployed: utils.Ptr(false),
		},
		JobPreferences: models.JobPreferences{
			PreferredRoles:     []string{},
			PreferredCountries: []string{},
			PreferredJobTypes:  []models.JobType{},
		},
		Documents: models.Documents{
			CVVisibility: models.VisibilityEmployersOnly,
		},
		Privacy: models.Privacy{
			ProfileVisibility:  models.VisibilityEmployersOnly,
			ShowCurrentCompany: true,
		},
		ProfileCreatedAt: stamp,
		LastUpdated:      stamp,
	}
}
