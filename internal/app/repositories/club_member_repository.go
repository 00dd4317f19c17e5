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

// ClubMemberRepository handles club membership database operations
type ClubMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClubMemberRepository creates a new ClubMemberRepository
func NewClubMemberRepository(db *pgxpool.Pool) *ClubMemberRepository {
	return &ClubMemberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Add inserts a membership row
func (r *ClubMemberRepository) Add(ctx context.Context, clubID, userID int64, role models.MemberRole) error {
	sql, args, err := r.sb.Insert("club_members").
		Columns("club_id", "user_id", "member_role").
		Values(clubID, userID, role).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add member query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "club_members_club_id_user_id_key") {
			return apperrors.ErrAlreadyMember
		}
		return fmt.Errorf("error adding club member: %w", err)
	}
	return nil
}

// Remove deletes a membership row
func (r *ClubMemberRepository) Remove(ctx context.Context, clubID, userID int64) error {
	sql, args, err := r.sb.Delete("club_members").
		Where(squirrel.Eq{"club_id": clubID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing club member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotMember
	}
	return nil
}

// UpdateRole changes a member's role within a club
func (r *ClubMemberRepository) UpdateRole(ctx context.Context, clubID, userID int64, role models.MemberRole) error {
	sql, args, err := r.sb.Update("club_members").
		Set("member_role", role).
		Where(squirrel.Eq{"club_id": clubID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update member role query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating member role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotMember
	}
	return nil
}

// GetByUser retrieves all memberships for a user, joined-at ascending
func (r *ClubMemberRepository) GetByUser(ctx context.Context, userID int64) ([]*models.ClubMember, error) {
	sql, args, err := r.sb.Select("id", "club_id", "user_id", "member_role", "joined_at").
		From("club_members").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("joined_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get memberships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving memberships: %w", err)
	}
	defer rows.Close()

	memberships := []*models.ClubMember{}
	for rows.Next() {
		var m models.ClubMember
		if err := rows.Scan(&m.ID, &m.ClubID, &m.UserID, &m.MemberRole, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("error scanning membership row: %w", err)
		}
		memberships = append(memberships, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}
	return memberships, nil
}
