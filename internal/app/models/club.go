package models

import "time"

// Club represents a student club
type Club struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Category      string    `json:"category" db:"category"`
	UniversityID  int64     `json:"universityId" db:"university_id"`
	PresidentID   int64     `json:"presidentId" db:"president_id"`
	MembershipFee float64   `json:"membershipFee" db:"membership_fee"` // displayed only, never charged
	IsPrivate     bool      `json:"isPrivate" db:"is_private"`
	Tags          []string  `json:"tags" db:"tags"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	President  *User         `json:"president,omitempty"`
	University *University   `json:"university,omitempty"`
	Members    []*ClubMember `json:"members,omitempty"`
}

// ClubMember represents a user's membership in a club
type ClubMember struct {
	ID         int64      `json:"id" db:"id"`
	ClubID     int64      `json:"clubId" db:"club_id"`
	UserID     int64      `json:"userId" db:"user_id"`
	MemberRole MemberRole `json:"memberRole" db:"member_role"`
	JoinedAt   time.Time  `json:"joinedAt" db:"joined_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}

// MemberByUserID returns the membership entry for a user, or nil
func (c *Club) MemberByUserID(userID int64) *ClubMember {
	for _, m := range c.Members {
		if m.UserID == userID {
			return m
		}
	}
	return nil
}
