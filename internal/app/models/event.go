package models

import "time"

// Event represents a club event
type Event struct {
	ID                     int64      `json:"id" db:"id"`
	ClubID                 int64      `json:"clubId" db:"club_id"`
	Title                  string     `json:"title" db:"title"`
	Description            string     `json:"description" db:"description"`
	Location               string     `json:"location" db:"location"`
	StartDate              time.Time  `json:"startDate" db:"start_date"`
	EndDate                time.Time  `json:"endDate" db:"end_date"`
	RegistrationDeadline   *time.Time `json:"registrationDeadline,omitempty" db:"registration_deadline"`
	MaxAttendees           *int       `json:"maxAttendees,omitempty" db:"max_attendees"`
	AccessType             AccessType `json:"accessType" db:"access_type"`
	IsRegistrationRequired bool       `json:"isRegistrationRequired" db:"is_registration_required"`
	CreatedAt              time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time  `json:"updatedAt" db:"updated_at"`

	// Related entities
	Club      *Club            `json:"club,omitempty"`
	Attendees []*EventAttendee `json:"attendees,omitempty"`
}

// EventAttendee represents a user's registration for an event
type EventAttendee struct {
	ID           int64     `json:"id" db:"id"`
	EventID      int64     `json:"eventId" db:"event_id"`
	UserID       int64     `json:"userId" db:"user_id"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}

// AttendeeByUserID returns the attendee entry for a user, or nil
func (e *Event) AttendeeByUserID(userID int64) *EventAttendee {
	for _, a := range e.Attendees {
		if a.UserID == userID {
			return a
		}
	}
	return nil
}
