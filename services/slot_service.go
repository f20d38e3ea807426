package services

import (
	"github.com/google/uuid"

	"github.com/mzohaibtariq/fyp_portal/models"
)

// SlotsOwnedBy returns the evaluation slots referencing the given faculty
// member. Removing a member must delete exactly this set.
func SlotsOwnedBy(slots []models.EvaluationSlot, facultyID uuid.UUID) []models.EvaluationSlot {
	var owned []models.EvaluationSlot
	for _, s := range slots {
		if s.FacultyID == facultyID {
			owned = append(owned, s)
		}
	}
	return owned
}

// SlotsWithoutFaculty returns the slots left after a member's cascade delete.
func SlotsWithoutFaculty(slots []models.EvaluationSlot, facultyID uuid.UUID) []models.EvaluationSlot {
	var remaining []models.EvaluationSlot
	for _, s := range slots {
		if s.FacultyID != facultyID {
			remaining = append(remaining, s)
		}
	}
	return remaining
}
