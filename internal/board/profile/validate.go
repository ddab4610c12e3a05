package profile

import (
	"strings"

	"github.com/ykhalil/gulfboard/internal/board/models"
)

// StepResult is the outcome of validating one wizard step. Errors keep the
// fixed field order of the wizard. Validation never fails with an error
// value of its own; violations are ordinary data.
type StepResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateStep checks the required fields of one wizard step (1-4) against
// the current, possibly partial, profile. The wizard must not advance past
// a step while Valid is false. Step 4 (CV upload) is optional and always
// validates, as does any out-of-range step.
func ValidateStep(step int, p *models.JobSeekerProfile) StepResult {
	var errs []string
	if p == nil {
		p = &models.JobSeekerProfile{}
	}

	switch step {
	case 1: // personal details
		pd := &p.PersonalDetails
		if strings.TrimSpace(pd.Name) == "" {
			errs = append(errs, "Name is required")
		}
		if strings.TrimSpace(pd.Email) == "" {
			errs = append(errs, "Email is required")
		}
		if strings.TrimSpace(pd.Phone) == "" {
			errs = append(errs, "Phone number is required")
		}
		if pd.PhoneCountryCode == "" {
			errs = append(errs, "Phone country code is required")
		}
		if pd.Nationality == "" {
			errs = append(errs, "Nationality is required")
		}
		if pd.CurrentLocation.Country == "" {
			errs = append(errs, "Current country is required")
		}
		if pd.CurrentLocation.City == "" {
			errs = append(errs, "Current city is required")
		}

	case 2: // job details
		jd := &p.JobDetails
		if jd.ExperienceYears == nil || *jd.ExperienceYears < 0 {
			errs = append(errs, "Years of experience is required")
		}
		if len(jd.Skills) < 3 {
			errs = append(errs, "At least 3 skills are required")
		}

	case 3: // visa & availability
		va := &p.VisaAndAvailability
		if va.VisaStatus == "" {
			errs = append(errs, "Visa status is required")
		}
		if va.VisaStatus != models.NoVisa && va.VisaValidityDate == "" {
			errs = append(errs, "Visa validity date is required")
		}
		if va.NoticePeriod == "" {
			errs = append(errs, "Notice period is required")
		}
		if va.CurrentlyEmployed == nil {
			errs = append(errs, "Please specify if you are currently employed")
		}
	}

	return StepResult{Valid: len(errs) == 0, Errors: errs}
}
