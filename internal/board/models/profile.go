package models

// VisaStatus enumerates a candidate's legal work eligibility in the Gulf.
type VisaStatus string

const (
	NoVisa         VisaStatus = "no_visa"
	VisitVisa      VisaStatus = "visit_visa"
	EmploymentVisa VisaStatus = "employment_visa"
	FamilyVisa     VisaStatus = "family_visa"
	ResidenceVisa  VisaStatus = "residence_visa"
	SponsorVisa    VisaStatus = "sponsor_visa"
)

// NoticePeriod enumerates how soon a candidate can start.
type NoticePeriod string

const (
	Immediate       NoticePeriod = "immediate"
	OneWeek         NoticePeriod = "1_week"
	TwoWeeks        NoticePeriod = "2_weeks"
	OneMonth        NoticePeriod = "1_month"
	TwoMonths       NoticePeriod = "2_months"
	ThreeMonths     NoticePeriod = "3_months"
	MoreThanQuarter NoticePeriod = "more_than_3_months"
)

// ProfileVisibility controls who can see a seeker's profile.
type ProfileVisibility string

const (
	VisibilityPublic        ProfileVisibility = "public"
	VisibilityEmployersOnly ProfileVisibility = "employers_only"
	VisibilityPrivate       ProfileVisibility = "private"
)

// CVVisibility controls who can see a seeker's CV.
type CVVisibility = ProfileVisibility

// PersonalDetails is the first profile section. Dates are ISO-8601 strings,
// matching the persisted JSON contract.
type PersonalDetails struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	PhoneCountryCode string   `json:"phoneCountryCode"`
	Nationality      string   `json:"nationality"`
	CurrentLocation  Location `json:"currentLocation"`
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	Gender           string   `json:"gender,omitempty"`
}

// Education is one entry of a seeker's education history.
type Education struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Institution    string `json:"institution"`
	GraduationYear int    `json:"graduationYear,omitempty"`
}

// JobDetails is the second profile section. ExperienceYears is a pointer so
// "not provided" and zero years stay distinguishable.
type JobDetails struct {
	CurrentRole     string      `json:"currentRole,omitempty"`
	CurrentCompany  string      `json:"currentCompany,omitempty"`
	ExperienceYears *int        `json:"experienceYears,omitempty"`
	Skills          []string    `json:"skills"`
	Education       []Education `json:"education,omitempty"`
}

// VisaAvailability is the third profile section. VisaValidityDate is
// mandatory only when VisaStatus != NoVisa. CurrentlyEmployed is a pointer
// so an explicit false counts as answered.
type VisaAvailability struct {
	VisaStatus        VisaStatus   `json:"visaStatus"`
	VisaValidityDate  string       `json:"visaValidityDate,omitempty"`
	NoticePeriod      NoticePeriod `json:"noticePeriod"`
	AvailableFrom     string       `json:"availableFrom,omitempty"`
	CurrentlyEmployed *bool        `json:"currentlyEmployed,omitempty"`
}

// JobPreferences is the fourth profile section.
type JobPreferences struct {
	PreferredRoles     []string     `json:"preferredRoles,omitempty"`
	PreferredCountries []string     `json:"preferredCountries,omitempty"`
	PreferredCities    []string     `json:"preferredCities,omitempty"`
	PreferredJobTypes  []JobType    `json:"preferredJobTypes,omitempty"`
	SalaryExpectation  *SalaryRange `json:"salaryExpectation,omitempty"`
	WillingToRelocate  bool         `json:"willingToRelocate"`
}

// OtherDocument is a non-CV attachment.
type OtherDocument struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Documents is the CV section of the profile.
type Documents struct {
	CVURL          string          `json:"cvUrl,omitempty"`
	CVFileName     string          `json:"cvFileName,omitempty"`
	CVUploadedAt   string          `json:"cvUploadedAt,omitempty"`
	CVVisibility   CVVisibility    `json:"cvVisibility"`
	OtherDocuments []OtherDocument `json:"otherDocuments,omitempty"`
}

// Privacy holds profile-level and field-level visibility toggles.
type Privacy struct {
	ProfileVisibility  ProfileVisibility `json:"profileVisibility"`
	ShowPhone          bool              `json:"showPhone"`
	ShowEmail          bool              `json:"showEmail"`
	ShowCurrentCompany bool              `json:"showCurrentCompany"`
}

// JobSeekerProfile is the five-section rich profile a seeker fills in
// through the wizard. ProfileCompleteness is derived, 0-100, recomputed on
// every save. It is persisted per user as a JSON key-value entry, never a
// relational row.
type JobSeekerProfile struct {
	PersonalDetails     PersonalDetails  `json:"personalDetails"`
	JobDetails          JobDetails       `json:"jobDetails"`
	VisaAndAvailability VisaAvailability `json:"visaAndAvailability"`
	JobPreferences      JobPreferences   `json:"jobPreferences"`
	Documents           Documents        `json:"documents"`
	Privacy             Privacy          `json:"privacy"`
	ProfileCompleteness int              `json:"profileCompleteness"`
	LastUpdated         string           `json:"lastUpdated"`
	ProfileCreatedAt    string           `json:"profileCreatedAt"`
}
