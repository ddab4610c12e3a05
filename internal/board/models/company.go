package models

import "time"

// Company defines the domain model for an employer's company.
// Verified is set by an admin only; verified companies display a trust badge.
type Company struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Name        string    `json:"name"`
	Logo        string    `json:"logo,omitempty"`
	Description string    `json:"description"`
	Website     string    `json:"website,omitempty"`
	Industry    string    `json:"industry"`
	Size        string    `json:"size"`
	Location    Location  `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Verified    bool      `json:"verified"`
	JobsPosted  int       `json:"jobsPosted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CompanyUpdate represents the fields that can be updated on a Company.
type CompanyUpdate struct {
	ID          string
	Name        *string
	Logo        *string
	Description *string
	Website     *string
	Industry    *string
	Size        *string
	Verified    *bool
}

// CompanyProfile is the employer-editable subset of a company record,
// persisted per employer in the key-value store.
type CompanyProfile struct {
	Name        string   `json:"name"`
	Logo        string   `json:"logo,omitempty"`
	Description string   `json:"description"`
	Website     string   `json:"website,omitempty"`
	Industry    string   `json:"industry"`
	Size        string   `json:"size"`
	Location    Location `json:"location"`
}
