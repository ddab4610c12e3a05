package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobSlug(t *testing.T) {
	tests := []struct {
		title string
		city  string
		want  string
	}{
		{"Senior Software Engineer", "Dubai", "senior-software-engineer-dubai"},
		{"Finance Manager", "Riyadh", "finance-manager-riyadh"},
		{"Restaurant Supervisor", "Kuwait City", "restaurant-supervisor-kuwait-city"},
		{"HR & Admin Officer", "Abu Dhabi", "hr-admin-officer-abu-dhabi"},
		{"  Spaced  Title  ", "Doha", "spaced-title-doha"},
		{"C++ Developer (Senior)", "Sharjah", "c-developer-senior-sharjah"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JobSlug(tt.title, tt.city), "JobSlug(%q, %q)", tt.title, tt.city)
	}
}
