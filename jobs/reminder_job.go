package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mzohaibtariq/fyp_portal/database"
	"github.com/mzohaibtariq/fyp_portal/models"
	"github.com/mzohaibtariq/fyp_portal/notifications"
)

// SendSlotReminders emails every faculty member who has an evaluation slot
// scheduled for tomorrow.
func SendSlotReminders() {
	log.Println("Running job: SendSlotReminders...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var upcomingSlots []models.EvaluationSlot
	err := database.DB.
		Preload("Faculty").
		Where("date = ?", tomorrow).
		Find(&upcomingSlots).Error
	if err != nil {
		log.Printf("Error checking for upcoming evaluation slots: %v", err)
		return
	}

	if len(upcomingSlots) == 0 {
		return
	}

	for _, slot := range upcomingSlots {
		log.Printf("Sending reminder for evaluation slot ID: %s", slot.ID)

		emailSubject := "Reminder: Evaluation Slot Tomorrow"
		emailBody := fmt.Sprintf(
			"<h1>Evaluation Reminder</h1><p>Hi %s,</p><p>This is a reminder that you have an evaluation slot scheduled tomorrow (%s) at %s.</p>",
			slot.Faculty.Name,
			slot.Date,
			slot.Time,
		)

		go notifications.SendEmail(slot.Faculty.Name, slot.Faculty.Email, emailSubject, emailBody)
	}
}
