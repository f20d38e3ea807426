package services

import (
	"log"

	"github.com/mzohaibtariq/fyp_portal/database"
	"github.com/mzohaibtariq/fyp_portal/models"
)

// SeedFaculty inserts the default faculty roster once at boot. Only members
// whose email is not already in the directory are created, so reruns are
// harmless and edits to seeded records survive restarts.
func SeedFaculty() {
	var existing []models.FacultyMember
	if err := database.DB.Find(&existing).Error; err != nil {
		log.Fatalf("🔥 Failed to load faculty directory for seeding: %v", err)
		return
	}

	missing := MissingSeedFaculty(existing)
	if len(missing) == 0 {
		log.Println("Faculty defaults already present.")
		return
	}

	if err := database.DB.Create(&missing).Error; err != nil {
		log.Fatalf("🔥 Failed to seed faculty defaults: %v", err)
		return
	}

	log.Printf("✅ Seeded %d default faculty members", len(missing))
}
