package models

import (
	"time"

	"github.com/google/uuid"
)

type EvaluationSlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FacultyID uuid.UUID `gorm:"not null" json:"faculty_id"`
	Date      string    `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Time      string    `gorm:"size:5;not null" json:"time"`  // HH:MM
	Status    string    `gorm:"size:20;not null;default:'available'" json:"status"`

	Faculty FacultyMember `gorm:"foreignkey:FacultyID" json:"faculty,omitempty"`

	CreatedAt time.Time `json:"-"`
}
