package models

import "time"

// UserRole discriminates the user union: job seeker, employer, or admin.
// Role is immutable after creation.
type UserRole string

const (
	RoleJobSeeker UserRole = "job_seeker"
	RoleEmployer  UserRole = "employer"
	RoleAdmin     UserRole = "admin"
)

// User is the account record shared by all roles. Employer-specific fields
// are nullable columns, nil for every other role; access them through
// AsEmployer so role narrowing stays explicit at call sites.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `gorm:"index" json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	CompanyID   *string `json:"companyId,omitempty"`
	CompanyName *string `json:"companyName,omitempty"`
	Verified    *bool   `json:"verified,omitempty"`
}

// EmployerAccount is the narrowed view of a User with the employer role.
type EmployerAccount struct {
	CompanyID   string
	CompanyName string
	Verified    bool
}

// AsEmployer narrows the user to its employer fields. The second return
// value is false for non-employers and for malformed employer records.
func (u *User) AsEmployer() (EmployerAccount, bool) {
	if u.Role != RoleEmployer || u.CompanyID == nil {
		return EmployerAccount{}, false
	}
	acct := EmployerAccount{CompanyID: *u.CompanyID}
	if u.CompanyName != nil {
		acct.CompanyName = *u.CompanyName
	}
	if u.Verified != nil {
		acct.Verified = *u.Verified
	}
	return acct, true
}

// IsJobSeeker reports whether the user holds the job seeker role.
func (u *User) IsJobSeeker() bool { return u.Role == RoleJobSeeker }

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
