package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzohaibtariq/fyp_portal/models"
)

func TestSlotsOwnedBy(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	slots := []models.EvaluationSlot{
		{ID: uuid.New(), FacultyID: owner, Date: "2026-09-01", Time: "10:00"},
		{ID: uuid.New(), FacultyID: other, Date: "2026-09-01", Time: "11:00"},
		{ID: uuid.New(), FacultyID: owner, Date: "2026-09-02", Time: "14:00"},
	}

	owned := SlotsOwnedBy(slots, owner)

	require.Len(t, owned, 2)
	for _, s := range owned {
		assert.Equal(t, owner, s.FacultyID)
	}
}

func TestSlotsOwnedBy_NoneForUnknownFaculty(t *testing.T) {
	slots := []models.EvaluationSlot{
		{ID: uuid.New(), FacultyID: uuid.New(), Date: "2026-09-01", Time: "10:00"},
	}

	assert.Empty(t, SlotsOwnedBy(slots, uuid.New()))
}

// Deleting a member who owns two slots must release both; slots belonging to
// other members survive untouched.
func TestCascadeRemovesEveryOwnedSlot(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	slots := []models.EvaluationSlot{
		{ID: uuid.New(), FacultyID: owner, Date: "2026-09-01", Time: "10:00"},
		{ID: uuid.New(), FacultyID: owner, Date: "2026-09-02", Time: "14:00"},
		{ID: uuid.New(), FacultyID: other, Date: "2026-09-03", Time: "09:00"},
	}

	require.Len(t, SlotsOwnedBy(slots, owner), 2)

	remaining := SlotsWithoutFaculty(slots, owner)

	require.Len(t, remaining, 1)
	assert.Equal(t, other, remaining[0].FacultyID)
	assert.Empty(t, SlotsOwnedBy(remaining, owner))
}

func TestSlotsWithoutFaculty_PartitionsCompletely(t *testing.T) {
	owner := uuid.New()
	slots := []models.EvaluationSlot{
		{ID: uuid.New(), FacultyID: owner, Date: "2026-09-01", Time: "10:00"},
		{ID: uuid.New(), FacultyID: uuid.New(), Date: "2026-09-01", Time: "11:00"},
	}

	owned := SlotsOwnedBy(slots, owner)
	remaining := SlotsWithoutFaculty(slots, owner)

	assert.Equal(t, len(slots), len(owned)+len(remaining))
}
