package models

import "time"

// ClubRequest represents a club-creation request awaiting administrator review
type ClubRequest struct {
	ID            int64         `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Description   string        `json:"description" db:"description"`
	Category      string        `json:"category" db:"category"`
	RequestedByID int64         `json:"requestedById" db:"requested_by_id"`
	UniversityID  int64         `json:"universityId" db:"university_id"`
	Status        RequestStatus `json:"status" db:"status"`
	AdminNotes    *string       `json:"adminNotes,omitempty" db:"admin_notes"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`

	// Related entities
	RequestedBy *User `json:"requestedBy,omitempty"`
}

// IsPending reports whether the request is still awaiting review.
// Approved and rejected are terminal; they never transition again.
func (r *ClubRequest) IsPending() bool {
	return r.Status == RequestPending
}
