package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Message   string    `gorm:"size:500;not null" json:"message"`
	CreatedAt time.Time `json:"time"`
}
