package model

import "time"

// LinkedInProfile is a named reference row seeded once and linked from
// profile-bound users. Unique by name.
type LinkedInProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Niche     *string   `json:"niche" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}
