package dto

import (
	"time"

	"github.com/kerem/clubsphere/internal/app/gate"
	"github.com/kerem/clubsphere/internal/app/models"
)

// --- Request DTOs ---

// CreateEventRequest represents event creation data
type CreateEventRequest struct {
	Title                  string     `json:"title" binding:"required"`
	Description            string     `json:"description" binding:"required"`
	Location               string     `json:"location" binding:"required"`
	StartDate              time.Time  `json:"startDate" binding:"required"`
	EndDate                time.Time  `json:"endDate" binding:"required"`
	RegistrationDeadline   *time.Time `json:"registrationDeadline,omitempty"`
	MaxAttendees           *int       `json:"maxAttendees,omitempty" binding:"omitempty,min=1"`
	AccessType             string     `json:"accessType" binding:"required,oneof=OPEN UNIVERSITY_EXCLUSIVE"`
	IsRegistrationRequired bool       `json:"isRegistrationRequired"`
}

// UpdateEventRequest represents event update data
type UpdateEventRequest struct {
	Title                string     `json:"title" binding:"required"`
	Description          string     `json:"description" binding:"required"`
	Location             string     `json:"location" binding:"required"`
	StartDate            time.Time  `json:"startDate" binding:"required"`
	EndDate              time.Time  `json:"endDate" binding:"required"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty"`
	MaxAttendees         *int       `json:"maxAttendees,omitempty" binding:"omitempty,min=1"`
}

// EventFilterRequest represents event list filter parameters
type EventFilterRequest struct {
	ClubID   *int64  `form:"clubId,omitempty"`
	Upcoming *bool   `form:"upcoming,omitempty"`
	Search   *string `form:"search,omitempty"`
	Page     int     `form:"page,default=1" binding:"min=1"`
	PageSize int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// --- Response DTOs ---

// EventResponse represents basic event information
type EventResponse struct {
	ID                     int64      `json:"id"`
	ClubID                 int64      `json:"clubId"`
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	Location               string     `json:"location"`
	StartDate              time.Time  `json:"startDate"`
	EndDate                time.Time  `json:"endDate"`
	RegistrationDeadline   *time.Time `json:"registrationDeadline,omitempty"`
	MaxAttendees           *int       `json:"maxAttendees,omitempty"`
	AccessType             string     `json:"accessType"`
	IsRegistrationRequired bool       `json:"isRegistrationRequired"`
	AttendeeCount          int        `json:"attendeeCount"`
	CreatedAt              time.Time  `json:"createdAt"`
}

// EventAttendeeResponse represents an attendee entry for an event
type EventAttendeeResponse struct {
	UserID       int64     `json:"userId"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// EventDetailResponse extends EventResponse with the viewer's registration
// decision and attendee details
type EventDetailResponse struct {
	EventResponse
	Club         *ClubResponse           `json:"club,omitempty"`
	Attendees    []EventAttendeeResponse `json:"attendees,omitempty"`
	Registration *gate.Decision          `json:"registration,omitempty"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	PaginationInfo
}

// FromEvent converts a models.Event to an EventResponse
func FromEvent(event *models.Event) EventResponse {
	if event == nil {
		return EventResponse{}
	}
	return EventResponse{
		ID:                     event.ID,
		ClubID:                 event.ClubID,
		Title:                  event.Title,
		Description:            event.Description,
		Location:               event.Location,
		StartDate:              event.StartDate,
		EndDate:                event.EndDate,
		RegistrationDeadline:   event.RegistrationDeadline,
		MaxAttendees:           event.MaxAttendees,
		AccessType:             string(event.AccessType),
		IsRegistrationRequired: event.IsRegistrationRequired,
		AttendeeCount:          len(event.Attendees),
		CreatedAt:              event.CreatedAt,
	}
}

// FromEvents converts a slice of events
func FromEvents(events []*models.Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, FromEvent(event))
	}
	return result
}

// FromEventDetail converts a fully loaded event, attaching the viewer's
// registration decision when one was computed
func FromEventDetail(event *models.Event, registration *gate.Decision) EventDetailResponse {
	detail := EventDetailResponse{EventResponse: FromEvent(event), Registration: registration}
	if event == nil {
		return detail
	}
	if event.Club != nil {
		club := FromClub(event.Club)
		detail.Club = &club
	}
	for _, a := range event.Attendees {
		attendee := EventAttendeeResponse{
			UserID:       a.UserID,
			RegisteredAt: a.RegisteredAt,
		}
		if a.User != nil {
			attendee.FirstName = a.User.FirstName
			attendee.LastName = a.User.LastName
		}
		detail.Attendees = append(detail.Attendees, attendee)
	}
	return detail
}
