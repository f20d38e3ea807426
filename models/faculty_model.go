package models

import (
	"time"

	"github.com/google/uuid"
)

type FacultyMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255;not null;unique" json:"email"`
	Domain      string    `gorm:"size:50;not null" json:"domain"`
	Slots       int       `gorm:"not null;default:0" json:"slots"`
	OfficeHours string    `gorm:"size:255" json:"office_hours"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
