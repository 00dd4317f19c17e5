package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
	"github.com/kerem/clubsphere/internal/pkg/dberrors"
)

// EventAttendeeRepository handles event registration database operations
type EventAttendeeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventAttendeeRepository creates a new EventAttendeeRepository
func NewEventAttendeeRepository(db *pgxpool.Pool) *EventAttendeeRepository {
	return &EventAttendeeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Register inserts a registration row. Capacity is enforced in the insert
// itself so concurrent registrations cannot overshoot max_attendees.
func (r *EventAttendeeRepository) Register(ctx context.Context, eventID, userID int64) error {
	query := `
		INSERT INTO event_attendees (event_id, user_id)
		SELECT $1, $2
		WHERE (
			SELECT e.max_attendees IS NULL
				OR (SELECT COUNT(*) FROM event_attendees WHERE event_id = $1) < e.max_attendees
			FROM events e WHERE e.id = $1
		)
	`

	cmdTag, err := r.db.Exec(ctx, query, eventID, userID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "event_attendees_event_id_user_id_key") {
			return apperrors.ErrAlreadyRegistered
		}
		return fmt.Errorf("error registering for event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventFull
	}
	return nil
}

// Unregister deletes a registration row
func (r *EventAttendeeRepository) Unregister(ctx context.Context, eventID, userID int64) error {
	sql, args, err := r.sb.Delete("event_attendees").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build unregister query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error unregistering from event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotRegistered
	}
	return nil
}

// GetByUser retrieves all registrations for a user, registered-at ascending
func (r *EventAttendeeRepository) GetByUser(ctx context.Context, userID int64) ([]*models.EventAttendee, error) {
	sql, args, err := r.sb.Select("id", "event_id", "user_id", "registered_at").
		From("event_attendees").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("registered_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get registrations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}
	defer rows.Close()

	attendances := []*models.EventAttendee{}
	for rows.Next() {
		var a models.EventAttendee
		if err := rows.Scan(&a.ID, &a.EventID, &a.UserID, &a.RegisteredAt); err != nil {
			return nil, fmt.Errorf("error scanning registration row: %w", err)
		}
		attendances = append(attendances, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}
	return attendances, nil
}
