package models

import (
	"time"

	"github.com/google/uuid"
)

type Proposal struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Reference   string    `gorm:"size:20;not null;unique" json:"reference"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`

	StudentName  string    `gorm:"size:255;not null" json:"student_name"`
	StudentEmail string    `gorm:"size:255" json:"student_email"`
	SubmittedBy  uuid.UUID `gorm:"not null" json:"submitted_by"`

	// Supervisor is referenced by id; the display name is resolved via the
	// preload, never stored on the proposal itself.
	SupervisorID *uuid.UUID `json:"supervisor_id"`
	Domain       string     `gorm:"size:50;not null;default:'General'" json:"domain"`
	Status       string     `gorm:"size:20;not null;default:'pending'" json:"status"`

	AttachmentURL *string `gorm:"size:255" json:"attachment_url"`
	LetterURL     *string `gorm:"size:255" json:"letter_url"`

	SubmittedAt time.Time `gorm:"not null;autoCreateTime" json:"submitted_at"`
	UpdatedAt   time.Time `json:"-"`

	Student    User           `gorm:"foreignkey:SubmittedBy" json:"-"`
	Supervisor *FacultyMember `gorm:"foreignkey:SupervisorID" json:"supervisor,omitempty"`
	Comments   []Comment      `gorm:"foreignkey:ProposalID" json:"comments"`
}
