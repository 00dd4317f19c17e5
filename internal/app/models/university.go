package models

import "time"

// University represents a university tenant on the platform
type University struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Domain    string    `json:"domain" db:"domain"` // email domain, e.g. school.edu.tr
	City      string    `json:"city" db:"city"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
