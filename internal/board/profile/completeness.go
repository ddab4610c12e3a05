// Package profile holds the pure functions over job-seeker profiles:
// the weighted completeness score, the wizard step validator, and the
// empty-profile defaults.
package profile

import (
	"math"

	"github.com/ykhalil/gulfboard/internal/board/models"
)

// Completeness maps a possibly partial profile to an integer 0-100.
//
// The point budget is fixed: personal details 40 (5 each for name, email,
// phone+country code together, nationality, country, city, date of birth,
// gender), job details 30 (5 current role, 5 current company, 10 experience
// years answered, 10 for at least three skills), visa & availability 20
// (5 visa status, 5 validity date, 5 notice period, 5 for the
// currently-employed question being answered either way), preferences 5
// (2 roles, 2 countries, 1 salary expectation), CV 5. The validity-date
// points are unreachable while the status is no_visa; they are not
// redistributed, so such profiles cap at 95.
func Completeness(p *models.JobSeekerProfile) int {
	if p == nil {
		return 0
	}
	completed := 0
	const total = 100

	// Personal details (40 points)
	pd := &p.PersonalDetails
	if pd.Name != "" {
		completed += 5
	}
	if pd.Email != "" {
		completed += 5
	}
	if pd.Phone != "" && pd.PhoneCountryCode != "" {
		completed += 5
	}
	if pd.Nationality != "" {
		completed += 5
	}
	if pd.CurrentLocation.Country != "" {
		completed += 5
	}
	if pd.CurrentLocation.City != "" {
		completed += 5
	}
	if pd.DateOfBirth != "" {
		completed += 5
	}
	if pd.Gender != "" {
		completed += 5
	}

	// Job details (30 points)
	jd := &p.JobDetails
	if jd.CurrentRole != "" {
		completed += 5
	}
	if jd.CurrentCompany != "" {
		completed += 5
	}
	if jd.ExperienceYears != nil && *jd.ExperienceYears >= 0 {
		completed += 10
	}
	if len(jd.Skills) >= 3 {
		completed += 10
	}

	// Visa & availability (20 points)
	va := &p.VisaAndAvailability
	if va.VisaStatus != "" {
		completed += 5
	}
	if va.VisaStatus != models.NoVisa && va.VisaValidityDate != "" {
		completed += 5
	}
	if va.NoticePeriod != "" {
		completed += 5
	}
	if va.CurrentlyEmployed != nil {
		completed += 5
	}

	// Job preferences (5 points)
	jp := &p.JobPreferences
	if len(jp.PreferredRoles) > 0 {
		completed += 2
	}
	if len(jp.PreferredCountries) > 0 {
		completed += 2
	}
	if jp.SalaryExpectation != nil {
		completed += 1
	}

	// CV upload (5 points)
	if p.Documents.CVURL != "" {
		completed += 5
	}

	return int(math.Round(float64(completed) / total * 100))
}
