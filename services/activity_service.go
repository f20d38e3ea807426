package services

import (
	"log"

	"github.com/mzohaibtariq/fyp_portal/database"
	"github.com/mzohaibtariq/fyp_portal/models"
	"github.com/mzohaibtariq/fyp_portal/websocket"
)

// RecordActivity appends a human-readable entry to the activity log. The log
// is for admin visibility only, so a failed write is logged and swallowed
// rather than failing the action that produced it.
func RecordActivity(action string) {
	entry := models.ActivityLogEntry{Action: action}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("Failed to record activity %q: %v", action, err)
	}
}

// Notify persists a banner-style notification and pushes it to connected
// websocket clients.
func Notify(message string) {
	notification := models.Notification{Message: message}
	if err := database.DB.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification %q: %v", message, err)
		return
	}

	select {
	case websocket.Broadcast <- &notification:
	default:
		// Hub busy or not running; the notification is still persisted.
	}
}
