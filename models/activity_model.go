package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogEntry is append-only; entries are never edited, only pruned by
// the retention job.
type ActivityLogEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Action    string    `gorm:"size:500;not null" json:"action"`
	CreatedAt time.Time `json:"time"`
}

func (ActivityLogEntry) TableName() string {
	return "activity_log"
}
