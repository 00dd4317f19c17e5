package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
	"github.com/kerem/clubsphere/internal/pkg/logger"
)

const eventColumns = "id, club_id, title, description, location, start_date, end_date, registration_deadline, max_attendees, access_type, is_registration_required, created_at, updated_at"

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.ClubID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartDate,
		&event.EndDate,
		&event.RegistrationDeadline,
		&event.MaxAttendees,
		&event.AccessType,
		&event.IsRegistrationRequired,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAll retrieves events with filtering and pagination
func (r *EventRepository) GetAll(ctx context.Context, clubID *int64, upcoming *bool, search *string, page, pageSize int) ([]*models.Event, int, error) {
	builder := r.sb.Select(eventColumns).From("events")
	countBuilder := r.sb.Select("COUNT(*)").From("events")

	if clubID != nil {
		builder = builder.Where(squirrel.Eq{"club_id": *clubID})
		countBuilder = countBuilder.Where(squirrel.Eq{"club_id": *clubID})
	}
	if upcoming != nil && *upcoming {
		builder = builder.Where(squirrel.Gt{"end_date": time.Now()})
		countBuilder = countBuilder.Where(squirrel.Gt{"end_date": time.Now()})
	}
	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count events query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	offset := (page - 1) * pageSize
	sql, args, err := builder.
		OrderBy("start_date").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, total, nil
}

// GetByIDs retrieves the events matching the given IDs in table ID order
func (r *EventRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Event, error) {
	if len(ids) == 0 {
		return []*models.Event{}, nil
	}

	sql, args, err := r.sb.Select(eventColumns).
		From("events").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get events by IDs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

// GetByID retrieves an event with its club and attendees loaded. The club is
// needed whenever registration decisions are evaluated, since exclusive
// events scope on the club's university.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	clubSQL, clubArgs, err := r.sb.Select(clubColumns).
		From("clubs").
		Where(squirrel.Eq{"id": event.ClubID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event club query: %w", err)
	}
	club, err := scanClub(r.db.QueryRow(ctx, clubSQL, clubArgs...))
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error retrieving event club: %w", err)
	}
	event.Club = club

	attendees, err := r.loadAttendees(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Attendees = attendees

	return event, nil
}

func (r *EventRepository) loadAttendees(ctx context.Context, eventID int64) ([]*models.EventAttendee, error) {
	sql, args, err := r.sb.Select(
		"ea.id", "ea.event_id", "ea.user_id", "ea.registered_at",
		"u.id", "u.email", "u.first_name", "u.last_name", "u.role", "u.university_id").
		From("event_attendees ea").
		Join("users u ON u.id = ea.user_id").
		Where(squirrel.Eq{"ea.event_id": eventID}).
		OrderBy("ea.registered_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build load attendees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading event attendees: %w", err)
	}
	defer rows.Close()

	attendees := []*models.EventAttendee{}
	for rows.Next() {
		var a models.EventAttendee
		var u models.User
		err := rows.Scan(
			&a.ID, &a.EventID, &a.UserID, &a.RegisteredAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.UniversityID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendee row: %w", err)
		}
		a.User = &u
		attendees = append(attendees, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendee rows: %w", err)
	}
	return attendees, nil
}

// Create inserts a new event and returns its ID
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	sql, args, err := r.sb.Insert("events").
		Columns("club_id", "title", "description", "location", "start_date", "end_date",
			"registration_deadline", "max_attendees", "access_type", "is_registration_required").
		Values(event.ClubID, event.Title, event.Description, event.Location, event.StartDate, event.EndDate,
			event.RegistrationDeadline, event.MaxAttendees, event.AccessType, event.IsRegistrationRequired).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create event query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("title", event.Title).Msg("Error executing create event query")
		return 0, fmt.Errorf("error creating event: %w", err)
	}
	return id, nil
}

// Update updates an event's fields
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("location", event.Location).
		Set("start_date", event.StartDate).
		Set("end_date", event.EndDate).
		Set("registration_deadline", event.RegistrationDeadline).
		Set("max_attendees", event.MaxAttendees).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
