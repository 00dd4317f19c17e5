package models

import "time"

// RecruitmentPost represents a team-recruitment posting tied to an event
type RecruitmentPost struct {
	ID          int64     `json:"id" db:"id"`
	EventID     int64     `json:"eventId" db:"event_id"`
	PosterID    int64     `json:"posterId" db:"poster_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	TeamSize    int       `json:"teamSize" db:"team_size"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Event        *Event                    `json:"event,omitempty"`
	Poster       *User                     `json:"poster,omitempty"`
	Applications []*RecruitmentApplication `json:"applications,omitempty"`
}

// RecruitmentApplication represents an application to a recruitment post
type RecruitmentApplication struct {
	ID          int64             `json:"id" db:"id"`
	PostID      int64             `json:"postId" db:"post_id"`
	ApplicantID int64             `json:"applicantId" db:"applicant_id"`
	Message     string            `json:"message" db:"message"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`

	// Related entities
	Applicant *User `json:"applicant,omitempty"`
}
