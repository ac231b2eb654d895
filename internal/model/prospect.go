package model

import (
	"time"

	"github.com/google/uuid"
)

// Prospect statuses. Free-form extension payloads default to new.
const (
	ProspectStatusNew       = "new"
	ProspectStatusContacted = "contacted"
	ProspectStatusReplied   = "replied"
	ProspectStatusClosed    = "closed"
)

// Prospect is a LinkedIn lead captured by the browser extension and owned by
// the user that created it.
type Prospect struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:char(36);index;not null"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	LinkedInURL string    `json:"linkedin_url" gorm:"size:512"`
	Company     string    `json:"company" gorm:"size:255"`
	Title       string    `json:"title" gorm:"size:255"`
	Status      string    `json:"status" gorm:"size:50;not null;default:'new'"`
	Notes       string    `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
