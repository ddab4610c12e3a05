// Package refdata holds the static reference data of the board: the
// country-to-cities map, the job category list, and the role list used for
// search autocomplete.
package refdata

import "strings"

// Countries is the fixed country order used for listings and suggestions.
var Countries = []string{
	"UAE",
	"Saudi Arabia",
	"Qatar",
	"Kuwait",
	"Oman",
	"Bahrain",
	"Pakistan",
	"India",
}

// Cities maps each country to its selectable cities.
var Cities = map[string][]string{
	"UAE":          {"Dubai", "Abu Dhabi", "Sharjah", "Ajman"},
	"Saudi Arabia": {"Riyadh", "Jeddah", "Dammam", "Mecca"},
	"Qatar":        {"Doha", "Al Rayyan", "Al Wakrah"},
	"Kuwait":       {"Kuwait City", "Al Ahmadi", "Hawalli"},
	"Oman":         {"Muscat", "Salalah", "Sohar"},
	"Bahrain":      {"Manama", "Riffa", "Muharraq"},
	"Pakistan":     {"Karachi", "Lahore", "Islamabad", "Rawalpindi"},
	"India":        {"Mumbai", "Delhi", "Bangalore", "Hyderabad"},
}

// Categories is the flat job category list.
var Categories = []string{
	"Engineering",
	"Finance & Accounting",
	"Sales & Marketing",
	"Human Resources",
	"IT & Software",
	"Healthcare",
	"Education",
	"Hospitality",
	"Construction",
	"Retail",
	"Manufacturing",
	"Consulting",
}

// JobRoles backs the role autocomplete.
var JobRoles = []string{
	"Software Engineer",
	"Finance Manager",
	"Marketing Manager",
	"HR Manager",
	"Accountant",
	"Sales Executive",
	"Project Manager",
	"Business Analyst",
	"Data Analyst",
	"Graphic Designer",
	"Architect",
	"Civil Engineer",
	"Mechanical Engineer",
	"Electrical Engineer",
	"Nurse",
	"Teacher",
	"Chef",
	"Operations Manager",
	"Customer Service",
	"Administrator",
}

const maxSuggestions = 5

// LocationSuggestion is one autocomplete hit; Display is "City, Country",
// or just the country for country-level hits.
type LocationSuggestion struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Display string `json:"display"`
}

// JobRoleSuggestions returns up to five roles containing the query,
// case-insensitively. An empty query returns nothing.
func JobRoleSuggestions(query string) []string {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []string
	for _, role := range JobRoles {
		if strings.Contains(strings.ToLower(role), q) {
			out = append(out, role)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// LocationSuggestions returns up to five location hits for the query:
// matching cities first, then matching countries not already represented.
func LocationSuggestions(query string) []LocationSuggestion {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []LocationSuggestion
	for _, country := range Countries {
		for _, city := range Cities[country] {
			if strings.Contains(strings.ToLower(city), q) {
				out = append(out, LocationSuggestion{
					City:    city,
					Country: country,
					Display: city + ", " + country,
				})
			}
		}
	}
	for _, country := range Countries {
		if !strings.Contains(strings.ToLower(country), q) {
			continue
		}
		seen := false
		for _, s := range out {
			if s.Country == country {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, LocationSuggestion{Country: country, Display: country})
		}
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
