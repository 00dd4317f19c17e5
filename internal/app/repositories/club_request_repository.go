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

const clubRequestColumns = "id, name, description, category, requested_by_id, university_id, status, admin_notes, created_at, updated_at"

// ClubRequestRepository handles club-creation request database operations
type ClubRequestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClubRequestRepository creates a new ClubRequestRepository
func NewClubRequestRepository(db *pgxpool.Pool) *ClubRequestRepository {
	return &ClubRequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanClubRequest(row pgx.Row) (*models.ClubRequest, error) {
	var request models.ClubRequest
	err := row.Scan(
		&request.ID,
		&request.Name,
		&request.Description,
		&request.Category,
		&request.RequestedByID,
		&request.UniversityID,
		&request.Status,
		&request.AdminNotes,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Create inserts a new pending request and returns its ID
func (r *ClubRequestRepository) Create(ctx context.Context, request *models.ClubRequest) (int64, error) {
	sql, args, err := r.sb.Insert("club_requests").
		Columns("name", "description", "category", "requested_by_id", "university_id", "status").
		Values(request.Name, request.Description, request.Category, request.RequestedByID, request.UniversityID, models.RequestPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create club request query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("name", request.Name).Msg("Error executing create club request query")
		return 0, fmt.Errorf("error creating club request: %w", err)
	}
	return id, nil
}

// GetByID retrieves a request with its requester loaded
func (r *ClubRequestRepository) GetByID(ctx context.Context, id int64) (*models.ClubRequest, error) {
	sql, args, err := r.sb.Select(clubRequestColumns).
		From("club_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get club request query: %w", err)
	}

	request, err := scanClubRequest(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClubRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving club request: %w", err)
	}

	userSQL, userArgs, err := r.sb.Select("id", "email", "first_name", "last_name", "role", "university_id").
		From("users").
		Where(squirrel.Eq{"id": request.RequestedByID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get requester query: %w", err)
	}
	var u models.User
	err = r.db.QueryRow(ctx, userSQL, userArgs...).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.UniversityID)
	if err == nil {
		request.RequestedBy = &u
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error retrieving requester: %w", err)
	}

	return request, nil
}

// GetAll retrieves requests with optional status filtering and pagination,
// newest first
func (r *ClubRequestRepository) GetAll(ctx context.Context, status *string, page, pageSize int) ([]*models.ClubRequest, int, error) {
	builder := r.sb.Select(clubRequestColumns).From("club_requests")
	countBuilder := r.sb.Select("COUNT(*)").From("club_requests")

	if status != nil && *status != "" {
		builder = builder.Where(squirrel.Eq{"status": *status})
		countBuilder = countBuilder.Where(squirrel.Eq{"status": *status})
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count club requests query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting club requests: %w", err)
	}

	offset := (page - 1) * pageSize
	sql, args, err := builder.
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list club requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing club requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.ClubRequest{}
	for rows.Next() {
		request, err := scanClubRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning club request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating club request rows: %w", err)
	}

	return requests, total, nil
}

// GetPendingIDs retrieves the IDs of all pending requests, oldest first
func (r *ClubRequestRepository) GetPendingIDs(ctx context.Context) ([]int64, error) {
	sql, args, err := r.sb.Select("id").
		From("club_requests").
		Where(squirrel.Eq{"status": models.RequestPending}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build pending IDs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing pending requests: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning pending request ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending request IDs: %w", err)
	}
	return ids, nil
}

// Reject marks a pending request rejected. The status guard is part of the
// update, so a request that was reviewed concurrently is reported as a
// conflict rather than silently re-reviewed.
func (r *ClubRequestRepository) Reject(ctx context.Context, id int64, adminNotes *string) error {
	sql, args, err := r.sb.Update("club_requests").
		Set("status", models.RequestRejected).
		Set("admin_notes", adminNotes).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "status": models.RequestPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build reject request query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error rejecting club request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.pendingGuardError(ctx, id)
	}
	return nil
}

// Approve marks a pending request approved and materializes the club with
// the requester as president, all in one transaction. Returns the new club's
// ID.
func (r *ClubRequestRepository) Approve(ctx context.Context, id int64, adminNotes *string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin approval transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	updateSQL, updateArgs, err := r.sb.Update("club_requests").
		Set("status", models.RequestApproved).
		Set("admin_notes", adminNotes).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "status": models.RequestPending}).
		Suffix("RETURNING name, description, category, requested_by_id, university_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build approve request query: %w", err)
	}

	var name, description, category string
	var requestedByID, universityID int64
	err = tx.QueryRow(ctx, updateSQL, updateArgs...).Scan(&name, &description, &category, &requestedByID, &universityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, r.pendingGuardError(ctx, id)
		}
		return 0, fmt.Errorf("error approving club request: %w", err)
	}

	clubSQL, clubArgs, err := r.sb.Insert("clubs").
		Columns("name", "description", "category", "university_id", "president_id").
		Values(name, description, category, universityID, requestedByID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build materialize club query: %w", err)
	}

	var clubID int64
	if err := tx.QueryRow(ctx, clubSQL, clubArgs...).Scan(&clubID); err != nil {
		return 0, fmt.Errorf("error materializing club: %w", err)
	}

	memberSQL, memberArgs, err := r.sb.Insert("club_members").
		Columns("club_id", "user_id", "member_role").
		Values(clubID, requestedByID, models.MemberRolePresident).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build president membership query: %w", err)
	}
	if _, err := tx.Exec(ctx, memberSQL, memberArgs...); err != nil {
		return 0, fmt.Errorf("error adding president membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit approval transaction: %w", err)
	}
	return clubID, nil
}

// pendingGuardError distinguishes a missing request from one already reviewed
func (r *ClubRequestRepository) pendingGuardError(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Select("status").
		From("club_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build status check query: %w", err)
	}

	var status models.RequestStatus
	err = r.db.QueryRow(ctx, sql, args...).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrClubRequestNotFound
		}
		return fmt.Errorf("error checking club request status: %w", err)
	}
	return apperrors.ErrRequestNotPending
}
