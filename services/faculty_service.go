package services

import (
	"strconv"
	"strings"

	"github.com/mzohaibtariq/fyp_portal/models"
)

// DefaultDomain is assigned to proposals whose supervisor cannot be resolved.
const DefaultDomain = "General"

var Domains = []string{
	"AI",
	"Cybersecurity",
	"Data Science",
	"Networks",
	"Web Development",
	"Machine Learning",
	"Cloud Computing",
	"Software Engineering",
	"IoT",
}

func IsValidDomain(domain string) bool {
	for _, d := range Domains {
		if d == domain {
			return true
		}
	}
	return false
}

// SeedFacultyDefaults returns the roster the portal ships with. These are
// inserted once at boot, never merged at read time.
func SeedFacultyDefaults() []models.FacultyMember {
	return []models.FacultyMember{
		{Name: "Salman Irfan", Email: "salman.irfan@example.com", Domain: "AI", Slots: 3, OfficeHours: "Mon 10-12, Wed 2-4"},
		{Name: "Faizan Shaukat", Email: "faizan.shaukat@example.com", Domain: "Data Science", Slots: 2, OfficeHours: "Tue 11-1, Thu 3-5"},
		{Name: "Ahmad", Email: "ahmad@example.com", Domain: "Cybersecurity", Slots: 4, OfficeHours: "Mon 9-11, Fri 1-3"},
		{Name: "Ali Hassan", Email: "ali.hassan@example.com", Domain: "Web Development", Slots: 2, OfficeHours: "Wed 10-12, Thu 2-4"},
		{Name: "Sara Khan", Email: "sara.khan@example.com", Domain: "Machine Learning", Slots: 3, OfficeHours: "Tue 9-11, Fri 10-12"},
		{Name: "Umar Farooq", Email: "umar.farooq@example.com", Domain: "Cloud Computing", Slots: 1, OfficeHours: "Mon 3-5"},
	}
}

// MissingSeedFaculty returns the seed members whose email is not already
// taken by an existing record. Email is the dedup key.
func MissingSeedFaculty(existing []models.FacultyMember) []models.FacultyMember {
	taken := make(map[string]bool, len(existing))
	for _, f := range existing {
		taken[strings.ToLower(f.Email)] = true
	}

	var missing []models.FacultyMember
	for _, seed := range SeedFacultyDefaults() {
		if !taken[strings.ToLower(seed.Email)] {
			missing = append(missing, seed)
		}
	}
	return missing
}

// FilterFaculty keeps members whose name or domain contains the term,
// case-insensitively. An empty term keeps everyone. Ordering is preserved.
func FilterFaculty(list []models.FacultyMember, term string) []models.FacultyMember {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}

	var matched []models.FacultyMember
	for _, f := range list {
		if strings.Contains(strings.ToLower(f.Name), term) || strings.Contains(strings.ToLower(f.Domain), term) {
			matched = append(matched, f)
		}
	}
	return matched
}

// FilterByOfficeHours keeps members whose office hours mention the term,
// case-insensitively. An empty term keeps everyone.
func FilterByOfficeHours(list []models.FacultyMember, term string) []models.FacultyMember {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}

	var matched []models.FacultyMember
	for _, f := range list {
		if strings.Contains(strings.ToLower(f.OfficeHours), term) {
			matched = append(matched, f)
		}
	}
	return matched
}

// FilterByMinSlots keeps members with at least min remaining slots. An empty
// or unparsable value keeps everyone.
func FilterByMinSlots(list []models.FacultyMember, min string) []models.FacultyMember {
	n, err := strconv.Atoi(strings.TrimSpace(min))
	if err != nil {
		return list
	}

	var matched []models.FacultyMember
	for _, f := range list {
		if f.Slots >= n {
			matched = append(matched, f)
		}
	}
	return matched
}

// FilterByDomain keeps members with exactly the given domain. "all" (or an
// empty string) is a passthrough.
func FilterByDomain(list []models.FacultyMember, domain string) []models.FacultyMember {
	if domain == "" || domain == "all" {
		return list
	}

	var matched []models.FacultyMember
	for _, f := range list {
		if f.Domain == domain {
			matched = append(matched, f)
		}
	}
	return matched
}

// CoerceSlots parses a supervision-capacity value that may arrive as a
// string from form input. Negative values are rejected.
func CoerceSlots(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
