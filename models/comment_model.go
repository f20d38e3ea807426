package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProposalID uuid.UUID `gorm:"not null" json:"-"`
	Author     string    `gorm:"size:255;not null" json:"author"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Date       time.Time `gorm:"not null;autoCreateTime" json:"date"`
}
