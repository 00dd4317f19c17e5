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
	"github.com/kerem/clubsphere/internal/pkg/dberrors"
	"github.com/kerem/clubsphere/internal/pkg/logger"
)

const clubColumns = "id, name, description, category, university_id, president_id, membership_fee, is_private, tags, created_at, updated_at"

// ClubRepository handles club database operations
type ClubRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(db *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanClub(row pgx.Row) (*models.Club, error) {
	var club models.Club
	err := row.Scan(
		&club.ID,
		&club.Name,
		&club.Description,
		&club.Category,
		&club.UniversityID,
		&club.PresidentID,
		&club.MembershipFee,
		&club.IsPrivate,
		&club.Tags,
		&club.CreatedAt,
		&club.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetAll retrieves clubs for a university with filtering and pagination
func (r *ClubRepository) GetAll(ctx context.Context, universityID int64, category, search *string, page, pageSize int) ([]*models.Club, int, error) {
	builder := r.sb.Select(clubColumns).From("clubs").Where(squirrel.Eq{"university_id": universityID})
	countBuilder := r.sb.Select("COUNT(*)").From("clubs").Where(squirrel.Eq{"university_id": universityID})

	if category != nil && *category != "" {
		builder = builder.Where(squirrel.Eq{"category": *category})
		countBuilder = countBuilder.Where(squirrel.Eq{"category": *category})
	}
	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count clubs query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting clubs: %w", err)
	}

	offset := (page - 1) * pageSize
	sql, args, err := builder.
		OrderBy("name").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list clubs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing clubs: %w", err)
	}
	defer rows.Close()

	clubs := []*models.Club{}
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning club row: %w", err)
		}
		clubs = append(clubs, club)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating club rows: %w", err)
	}

	return clubs, total, nil
}

// GetByIDs retrieves the clubs matching the given IDs, preserving no
// particular order beyond the table's natural ID order
func (r *ClubRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Club, error) {
	if len(ids) == 0 {
		return []*models.Club{}, nil
	}

	sql, args, err := r.sb.Select(clubColumns).
		From("clubs").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get clubs by IDs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving clubs: %w", err)
	}
	defer rows.Close()

	clubs := []*models.Club{}
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning club row: %w", err)
		}
		clubs = append(clubs, club)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating club rows: %w", err)
	}
	return clubs, nil
}

// GetByID retrieves a club with its members loaded
func (r *ClubRepository) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	sql, args, err := r.sb.Select(clubColumns).
		From("clubs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get club query: %w", err)
	}

	club, err := scanClub(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClubNotFound
		}
		logger.Error().Err(err).Int64("clubID", id).Msg("Error scanning club row")
		return nil, fmt.Errorf("error retrieving club: %w", err)
	}

	members, err := r.loadMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	club.Members = members

	return club, nil
}

func (r *ClubRepository) loadMembers(ctx context.Context, clubID int64) ([]*models.ClubMember, error) {
	sql, args, err := r.sb.Select(
		"cm.id", "cm.club_id", "cm.user_id", "cm.member_role", "cm.joined_at",
		"u.id", "u.email", "u.first_name", "u.last_name", "u.role", "u.university_id").
		From("club_members cm").
		Join("users u ON u.id = cm.user_id").
		Where(squirrel.Eq{"cm.club_id": clubID}).
		OrderBy("cm.joined_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build load members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading club members: %w", err)
	}
	defer rows.Close()

	members := []*models.ClubMember{}
	for rows.Next() {
		var m models.ClubMember
		var u models.User
		err := rows.Scan(
			&m.ID, &m.ClubID, &m.UserID, &m.MemberRole, &m.JoinedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.UniversityID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		m.User = &u
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return members, nil
}

// Create inserts a new club and returns its ID
func (r *ClubRepository) Create(ctx context.Context, club *models.Club) (int64, error) {
	sql, args, err := r.sb.Insert("clubs").
		Columns("name", "description", "category", "university_id", "president_id", "membership_fee", "is_private", "tags").
		Values(club.Name, club.Description, club.Category, club.UniversityID, club.PresidentID, club.MembershipFee, club.IsPrivate, club.Tags).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create club query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Str("name", club.Name).Msg("Error executing create club query")
		return 0, fmt.Errorf("error creating club: %w", err)
	}
	return id, nil
}

// Update updates a club's profile fields
func (r *ClubRepository) Update(ctx context.Context, club *models.Club) error {
	sql, args, err := r.sb.Update("clubs").
		Set("name", club.Name).
		Set("description", club.Description).
		Set("category", club.Category).
		Set("membership_fee", club.MembershipFee).
		Set("is_private", club.IsPrivate).
		Set("tags", club.Tags).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": club.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update club query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating club: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClubNotFound
	}
	return nil
}

// UpdatePresident transfers the club presidency
func (r *ClubRepository) UpdatePresident(ctx context.Context, clubID, presidentID int64) error {
	sql, args, err := r.sb.Update("clubs").
		Set("president_id", presidentID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": clubID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update president query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating club president: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClubNotFound
	}
	return nil
}

// Delete removes a club
func (r *ClubRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("clubs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete club query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting club: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClubNotFound
	}
	return nil
}
