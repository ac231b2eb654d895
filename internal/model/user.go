package model

import (
	"time"

	"github.com/google/uuid"
)

// Role values stored on User. Lowercase is canonical; every write site must
// go through these constants so casing stays consistent across the database.
const (
	// RoleAdmin grants access to the dashboard admin endpoints.
	RoleAdmin = "admin"
	// RoleMember is the default non-privileged role.
	RoleMember = "member"
	// RoleProfile marks a user bound to a LinkedIn profile; such users must
	// carry a non-nil LinkedInProfileID.
	RoleProfile = "profile"
)

// User represents an identity known to the system. The password hash is
// nullable: a nil hash means password login is not available for the user.
type User struct {
	ID                uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Email             string           `json:"email" gorm:"uniqueIndex;size:255;not null"` // stored lowercased
	Username          *string          `json:"username" gorm:"uniqueIndex;size:100"`       // stored lowercased, nullable
	Name              string           `json:"name" gorm:"size:255;not null"`
	Role              string           `json:"role" gorm:"size:50;not null;default:'member'"`
	PasswordHash      *string          `json:"-" gorm:"size:255"` // Never expose in JSON
	LinkedInProfileID *uint            `json:"linkedin_profile_id"`
	LinkedInProfile   *LinkedInProfile `json:"linkedin_profile,omitempty" gorm:"foreignKey:LinkedInProfileID"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// Identity is the projection of a User attached to the request context by the
// auth middleware and returned from the auth endpoints. It never carries the
// password hash.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username *string   `json:"username"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
}

// Identity strips a User down to its projection.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}

// IsAdmin reports whether the identity holds the privileged role. The compare
// is case-sensitive: any other casing (e.g. "Admin") is not privileged.
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
