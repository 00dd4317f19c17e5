package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"user@school.edu.tr"`
	Password     string    `json:"-" db:"password"` // hashed, excluded from JSON
	FirstName    string    `json:"firstName" db:"first_name" example:"John"`
	LastName     string    `json:"lastName" db:"last_name" example:"Doe"`
	Role         RoleType  `json:"role" db:"role" example:"STUDENT"`
	UniversityID int64     `json:"universityId" db:"university_id"`
	IsBlocked    bool      `json:"isBlocked" db:"is_blocked" example:"false"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`

	// ProfileDocument carries the denormalized membership/attendance arrays
	// migrated from the legacy platform (raw JSON, heterogeneous shapes).
	ProfileDocument []byte `json:"-" db:"profile_document"`

	// Related entities
	University *University `json:"university,omitempty"`
}

// RefreshToken defines a persisted refresh token based on the 'refresh_tokens' table
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
