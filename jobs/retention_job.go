package jobs

import (
	"log"
	"strconv"
	"time"

	config "github.com/mzohaibtariq/fyp_portal/configs"
	"github.com/mzohaibtariq/fyp_portal/database"
	"github.com/mzohaibtariq/fyp_portal/models"
)

const defaultRetentionDays = 30

// PruneActivityLog deletes activity-log entries and notifications older than
// the retention window so the append-only collections stay bounded.
func PruneActivityLog() {
	log.Println("Running job: PruneActivityLog...")

	days, err := strconv.Atoi(config.ConfigDefault("ACTIVITY_RETENTION_DAYS", "30"))
	if err != nil || days <= 0 {
		days = defaultRetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	result := database.DB.Where("created_at < ?", cutoff).Delete(&models.ActivityLogEntry{})
	if result.Error != nil {
		log.Printf("Error pruning activity log: %v", result.Error)
		return
	}
	pruned := result.RowsAffected

	result = database.DB.Where("created_at < ?", cutoff).Delete(&models.Notification{})
	if result.Error != nil {
		log.Printf("Error pruning notifications: %v", result.Error)
		return
	}

	if pruned+result.RowsAffected > 0 {
		log.Printf("Pruned %d activity entries and %d notifications older than %d days", pruned, result.RowsAffected, days)
	}
}
