package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzohaibtariq/fyp_portal/models"
)

func TestMissingSeedFaculty_EmptyDirectory(t *testing.T) {
	missing := MissingSeedFaculty(nil)

	assert.Len(t, missing, 6, "an empty directory should receive every default")
}

func TestMissingSeedFaculty_SkipsExistingEmails(t *testing.T) {
	existing := []models.FacultyMember{
		{Name: "Dr. Salman Irfan", Email: "salman.irfan@example.com", Domain: "AI"},
		{Name: "Someone Else", Email: "someone@university.edu", Domain: "Networks"},
	}

	missing := MissingSeedFaculty(existing)

	assert.Len(t, missing, 5)
	for _, m := range missing {
		assert.NotEqual(t, "salman.irfan@example.com", m.Email)
	}
}

func TestMissingSeedFaculty_EmailMatchIsCaseInsensitive(t *testing.T) {
	existing := []models.FacultyMember{
		{Name: "Salman Irfan", Email: "Salman.Irfan@Example.com", Domain: "AI"},
	}

	missing := MissingSeedFaculty(existing)

	assert.Len(t, missing, 5)
}

func TestMissingSeedFaculty_NoDuplicateEmails(t *testing.T) {
	existing := []models.FacultyMember{
		{Name: "Ahmad", Email: "ahmad@example.com", Domain: "Cybersecurity"},
	}

	all := append(existing, MissingSeedFaculty(existing)...)

	seen := make(map[string]bool)
	for _, f := range all {
		require.False(t, seen[f.Email], "duplicate email %s in merged directory", f.Email)
		seen[f.Email] = true
	}
}

func TestFilterFaculty_MatchesDomainCaseInsensitively(t *testing.T) {
	list := []models.FacultyMember{
		{Name: "Salman Irfan", Domain: "AI"},
		{Name: "Ali Hassan", Domain: "Web Development"},
	}

	matched := FilterFaculty(list, "ai")

	require.Len(t, matched, 1)
	assert.Equal(t, "Salman Irfan", matched[0].Name)
}

func TestFilterFaculty_MatchesNameSubstring(t *testing.T) {
	list := []models.FacultyMember{
		{Name: "Sara Khan", Domain: "Machine Learning"},
		{Name: "Umar Farooq", Domain: "Cloud Computing"},
	}

	matched := FilterFaculty(list, "khan")

	require.Len(t, matched, 1)
	assert.Equal(t, "Sara Khan", matched[0].Name)
}

func TestFilterFaculty_EmptyTermKeepsEveryone(t *testing.T) {
	list := []models.FacultyMember{
		{Name: "Sara Khan", Domain: "Machine Learning"},
		{Name: "Umar Farooq", Domain: "Cloud Computing"},
	}

	assert.Equal(t, list, FilterFaculty(list, ""))
	assert.Equal(t, list, FilterFaculty(list, "   "))
}

func TestFilterFaculty_PreservesOrdering(t *testing.T) {
	list := []models.FacultyMember{
		{Name: "Ahmad", Domain: "Cybersecurity"},
		{Name: "Sara Khan", Domain: "Machine Learning"},
		{Name: "Salman Irfan", Domain: "AI"},
	}

	matched := FilterFaculty(list, "a")

	require.Len(t, matched, 3)
	assert.Equal(t, "Ahmad", matched[0].Name)
	assert.Equal(t, "Sara Khan", matched[1].Name)
	assert.Equal(t, "Salman Irfan", matched[2].Name)
}

func TestFilterByDomain(t *testing.T) {
	list := []models.FacultyMember{
		{Name: "Salman Irfan", Domain: "AI"},
		{Name: "Ali Hassan", Domain: "Web Development"},
	}

	t.Run("exact match", func(t *testing.T) {
		matched := FilterByDomain(list, "AI")
		require.Len(t, matched, 1)
		assert.Equal(t, "Salman Irfan", matched[0].Name)
	})

	t.Run("all sentinel passes through", func(t *testing.T) {
		assert.Equal(t, list, FilterByDomain(list, "all"))
	})

	t.Run("empty passes through", func(t *testing.T) {
		assert.Equal(t, list, FilterByDomain(list, ""))
	})

	t.Run("no partial match", func(t *testing.T) {
		assert.Empty(t, FilterByDomain(list, "Web"))
	})
}

func TestFilterByOfficeHours(t *testing.T) {
	list := []models.FacultyMember{
		{Name: "Salman Irfan", OfficeHours: "Mon 10-12, Wed 2-4"},
		{Name: "Sara Khan", OfficeHours: "Tue 9-11, Fri 10-12"},
	}

	t.Run("case-insensitive substring", func(t *testing.T) {
		matched := FilterByOfficeHours(list, "mon")
		require.Len(t, matched, 1)
		assert.Equal(t, "Salman Irfan", matched[0].Name)
	})

	t.Run("empty term keeps everyone", func(t *testing.T) {
		assert.Equal(t, list, FilterByOfficeHours(list, ""))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterByOfficeHours(list, "sunday"))
	})
}

func TestFilterByMinSlots(t *testing.T) {
	list := []models.FacultyMember{
		{Name: "Umar Farooq", Slots: 1},
		{Name: "Ahmad", Slots: 4},
	}

	t.Run("keeps members at or above the minimum", func(t *testing.T) {
		matched := FilterByMinSlots(list, "2")
		require.Len(t, matched, 1)
		assert.Equal(t, "Ahmad", matched[0].Name)
	})

	t.Run("zero keeps everyone", func(t *testing.T) {
		assert.Len(t, FilterByMinSlots(list, "0"), 2)
	})

	t.Run("empty keeps everyone", func(t *testing.T) {
		assert.Equal(t, list, FilterByMinSlots(list, ""))
	})

	t.Run("unparsable keeps everyone", func(t *testing.T) {
		assert.Equal(t, list, FilterByMinSlots(list, "many"))
	})
}

func TestCoerceSlots(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"0", 0, false},
		{" 4 ", 4, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"3.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := CoerceSlots(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestIsValidDomain(t *testing.T) {
	assert.True(t, IsValidDomain("AI"))
	assert.True(t, IsValidDomain("Cloud Computing"))
	assert.False(t, IsValidDomain("ai"))
	assert.False(t, IsValidDomain("Astrology"))
	assert.False(t, IsValidDomain(""))
}
