package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kerem/clubsphere/internal/app/gate"
	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/permissions"
	"github.com/kerem/clubsphere/internal/app/reconcile"
	"github.com/kerem/clubsphere/internal/app/repositories"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
)

// EventService defines the interface for event operations
type EventService interface {
	GetAllEvents(ctx context.Context, filter *dto.EventFilterRequest) (*dto.EventListResponse, error)
	GetEventByID(ctx context.Context, eventID int64, viewerID *int64) (*dto.EventDetailResponse, error)
	CreateEvent(ctx context.Context, clubID, actorID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, eventID, actorID int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID, actorID int64) error
	Register(ctx context.Context, eventID, userID int64) error
	Unregister(ctx context.Context, eventID, userID int64) error
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo    *repositories.EventRepository
	attendeeRepo *repositories.EventAttendeeRepository
	clubRepo     *repositories.ClubRepository
	memberRepo   *repositories.ClubMemberRepository
	userRepo     *repositories.UserRepository
	logger       zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo *repositories.EventRepository,
	attendeeRepo *repositories.EventAttendeeRepository,
	clubRepo *repositories.ClubRepository,
	memberRepo *repositories.ClubMemberRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) EventService {
	return &eventServiceImpl{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
		clubRepo:     clubRepo,
		memberRepo:   memberRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// GetAllEvents lists events with filtering and pagination
func (s *eventServiceImpl) GetAllEvents(ctx context.Context, filter *dto.EventFilterRequest) (*dto.EventListResponse, error) {
	events, total, err := s.eventRepo.GetAll(ctx, filter.ClubID, filter.Upcoming, filter.Search, filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	return &dto.EventListResponse{
		Events:         dto.FromEvents(events),
		PaginationInfo: dto.NewPaginationInfo(filter.Page, filter.PageSize, total),
	}, nil
}

// GetEventByID retrieves an event. When a viewer is known, the response
// carries the advisory registration decision so clients can render the
// register control without a second round trip.
func (s *eventServiceImpl) GetEventByID(ctx context.Context, eventID int64, viewerID *int64) (*dto.EventDetailResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var decision *gate.Decision
	if viewerID != nil {
		viewer, err := s.userRepo.GetByID(ctx, *viewerID)
		if err == nil {
			d := gate.CanRegisterForEvent(event, viewer, time.Now())
			decision = &d
		}
	}

	resp := dto.FromEventDetail(event, decision)
	return &resp, nil
}

// CreateEvent creates an event for a club. Only administrators and the club
// president may create events.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, clubID, actorID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !permissions.CanManageEvent(actor, club) {
		return nil, apperrors.NewForbiddenError("Only the club president or an administrator can create events")
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("Event end date must be after its start date")
	}

	event := &models.Event{
		ClubID:                 clubID,
		Title:                  req.Title,
		Description:            req.Description,
		Location:               req.Location,
		StartDate:              req.StartDate,
		EndDate:                req.EndDate,
		RegistrationDeadline:   req.RegistrationDeadline,
		MaxAttendees:           req.MaxAttendees,
		AccessType:             models.AccessType(req.AccessType),
		IsRegistrationRequired: req.IsRegistrationRequired,
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id

	s.logger.Info().Int64("eventID", id).Int64("clubID", clubID).Msg("Event created")
	resp := dto.FromEvent(event)
	return &resp, nil
}

// UpdateEvent updates an event's fields
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, eventID, actorID int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if event.Club == nil || !permissions.CanManageEvent(actor, event.Club) {
		return nil, apperrors.NewForbiddenError("Only the club president or an administrator can edit events")
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("Event end date must be after its start date")
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Location = req.Location
	event.StartDate = req.StartDate
	event.EndDate = req.EndDate
	event.RegistrationDeadline = req.RegistrationDeadline
	event.MaxAttendees = req.MaxAttendees

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	resp := dto.FromEvent(event)
	return &resp, nil
}

// DeleteEvent removes an event
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, eventID, actorID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	if event.Club == nil || !permissions.CanManageEvent(actor, event.Club) {
		return apperrors.NewForbiddenError("Only the club president or an administrator can delete events")
	}

	return s.eventRepo.Delete(ctx, eventID)
}

// Register registers the user for the event after re-checking the gate
// conditions against current state. Capacity is additionally enforced by the
// insert itself, so two racing registrations cannot both take the last slot.
func (s *eventServiceImpl) Register(ctx context.Context, eventID, userID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if event.AttendeeByUserID(userID) != nil {
		return apperrors.ErrAlreadyRegistered
	}
	if decision := gate.CanRegisterForEvent(event, user, time.Now()); !decision.Allowed {
		return registerDecisionError(decision)
	}

	if err := s.attendeeRepo.Register(ctx, eventID, userID); err != nil {
		return err
	}

	s.logger.Info().Int64("eventID", eventID).Int64("userID", userID).Msg("User registered for event")
	s.syncProfileDocument(ctx, userID)
	return nil
}

// Unregister removes the user's registration
func (s *eventServiceImpl) Unregister(ctx context.Context, eventID, userID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if decision := gate.CanUnregisterFromEvent(event, user, time.Now()); !decision.Allowed {
		return unregisterDecisionError(decision)
	}

	if err := s.attendeeRepo.Unregister(ctx, eventID, userID); err != nil {
		return err
	}

	s.logger.Info().Int64("eventID", eventID).Int64("userID", userID).Msg("User unregistered from event")
	s.syncProfileDocument(ctx, userID)
	return nil
}

func (s *eventServiceImpl) syncProfileDocument(ctx context.Context, userID int64) {
	memberships, err := s.memberRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile document sync: failed to load memberships")
		return
	}
	attendances, err := s.attendeeRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile document sync: failed to load registrations")
		return
	}

	doc, err := reconcile.CanonicalDocument(memberships, attendances)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile document sync: failed to build document")
		return
	}
	if err := s.userRepo.UpdateProfileDocument(ctx, userID, doc); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile document sync: failed to persist document")
	}
}

func registerDecisionError(decision gate.Decision) error {
	switch decision.Reason {
	case gate.ReasonFull:
		return apperrors.ErrEventFull
	case gate.ReasonUniversityExclusive:
		return apperrors.ErrWrongUniversity
	case gate.ReasonRegistrationClosed:
		return apperrors.ErrRegistrationClosed
	case gate.ReasonEventEnded:
		return apperrors.ErrEventEnded
	}
	return apperrors.NewForbiddenError("Registering for this event is not allowed")
}

func unregisterDecisionError(decision gate.Decision) error {
	switch decision.Reason {
	case gate.ReasonNotRegistered:
		return apperrors.ErrNotRegistered
	case gate.ReasonEventEnded:
		return apperrors.ErrEventEnded
	}
	return apperrors.NewForbiddenError("Unregistering from this event is not allowed")
}
