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
)

const announcementColumns = "a.id, a.club_id, a.author_id, a.title, a.content, a.type, a.priority, a.is_pinned, a.scheduled_for, a.tags, a.created_at, a.updated_at"

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(
		&a.ID,
		&a.ClubID,
		&a.AuthorID,
		&a.Title,
		&a.Content,
		&a.Type,
		&a.Priority,
		&a.IsPinned,
		&a.ScheduledFor,
		&a.Tags,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.LikeCount,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAll retrieves visible announcements with filtering and pagination.
// Scheduled announcements stay hidden until their scheduled_for time; pinned
// announcements sort first.
func (r *AnnouncementRepository) GetAll(ctx context.Context, clubID *int64, announcementType *string, pinned *bool, page, pageSize int) ([]*models.Announcement, int, error) {
	visible := squirrel.Or{
		squirrel.Eq{"a.scheduled_for": nil},
		squirrel.LtOrEq{"a.scheduled_for": time.Now()},
	}

	builder := r.sb.Select(announcementColumns + ", COUNT(al.id) AS like_count").
		From("announcements a").
		LeftJoin("announcement_likes al ON al.announcement_id = a.id").
		Where(visible).
		GroupBy("a.id")
	countBuilder := r.sb.Select("COUNT(*)").From("announcements a").Where(visible)

	if clubID != nil {
		builder = builder.Where(squirrel.Eq{"a.club_id": *clubID})
		countBuilder = countBuilder.Where(squirrel.Eq{"a.club_id": *clubID})
	}
	if announcementType != nil && *announcementType != "" {
		builder = builder.Where(squirrel.Eq{"a.type": *announcementType})
		countBuilder = countBuilder.Where(squirrel.Eq{"a.type": *announcementType})
	}
	if pinned != nil {
		builder = builder.Where(squirrel.Eq{"a.is_pinned": *pinned})
		countBuilder = countBuilder.Where(squirrel.Eq{"a.is_pinned": *pinned})
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count announcements query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting announcements: %w", err)
	}

	offset := (page - 1) * pageSize
	sql, args, err := builder.
		OrderBy("a.is_pinned DESC", "a.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	announcements := []*models.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, total, nil
}

// GetByID retrieves an announcement with author and comments loaded
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	sql, args, err := r.sb.Select(announcementColumns + ", COUNT(al.id) AS like_count").
		From("announcements a").
		LeftJoin("announcement_likes al ON al.announcement_id = a.id").
		Where(squirrel.Eq{"a.id": id}).
		GroupBy("a.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get announcement query: %w", err)
	}

	a, err := scanAnnouncement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error retrieving announcement: %w", err)
	}

	authorSQL, authorArgs, err := r.sb.Select("id", "email", "first_name", "last_name", "role", "university_id").
		From("users").
		Where(squirrel.Eq{"id": a.AuthorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get author query: %w", err)
	}
	var u models.User
	err = r.db.QueryRow(ctx, authorSQL, authorArgs...).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.UniversityID)
	if err == nil {
		a.Author = &u
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error retrieving author: %w", err)
	}

	comments, err := r.loadComments(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Comments = comments

	return a, nil
}

func (r *AnnouncementRepository) loadComments(ctx context.Context, announcementID int64) ([]*models.AnnouncementComment, error) {
	sql, args, err := r.sb.Select(
		"c.id", "c.announcement_id", "c.author_id", "c.content", "c.created_at",
		"u.id", "u.email", "u.first_name", "u.last_name", "u.role", "u.university_id").
		From("announcement_comments c").
		Join("users u ON u.id = c.author_id").
		Where(squirrel.Eq{"c.announcement_id": announcementID}).
		OrderBy("c.created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build load comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading comments: %w", err)
	}
	defer rows.Close()

	comments := []*models.AnnouncementComment{}
	for rows.Next() {
		var c models.AnnouncementComment
		var u models.User
		err := rows.Scan(
			&c.ID, &c.AnnouncementID, &c.AuthorID, &c.Content, &c.CreatedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.UniversityID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		c.Author = &u
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return comments, nil
}

// Create inserts a new announcement and returns its ID
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) (int64, error) {
	sql, args, err := r.sb.Insert("announcements").
		Columns("club_id", "author_id", "title", "content", "type", "priority", "is_pinned", "scheduled_for", "tags").
		Values(a.ClubID, a.AuthorID, a.Title, a.Content, a.Type, a.Priority, a.IsPinned, a.ScheduledFor, a.Tags).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create announcement query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating announcement: %w", err)
	}
	return id, nil
}

// Update updates an announcement's fields
func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	sql, args, err := r.sb.Update("announcements").
		Set("title", a.Title).
		Set("content", a.Content).
		Set("priority", a.Priority).
		Set("is_pinned", a.IsPinned).
		Set("tags", a.Tags).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update announcement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating announcement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete announcement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}

// Like records a like. Liking twice is a no-op.
func (r *AnnouncementRepository) Like(ctx context.Context, announcementID, userID int64) error {
	sql, args, err := r.sb.Insert("announcement_likes").
		Columns("announcement_id", "user_id").
		Values(announcementID, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build like query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAnnouncementNotFound
		}
		return fmt.Errorf("error liking announcement: %w", err)
	}
	return nil
}

// Unlike removes a like. Removing an absent like is a no-op.
func (r *AnnouncementRepository) Unlike(ctx context.Context, announcementID, userID int64) error {
	sql, args, err := r.sb.Delete("announcement_likes").
		Where(squirrel.Eq{"announcement_id": announcementID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build unlike query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error unliking announcement: %w", err)
	}
	return nil
}

// AddComment inserts a comment and returns its ID
func (r *AnnouncementRepository) AddComment(ctx context.Context, comment *models.AnnouncementComment) (int64, error) {
	sql, args, err := r.sb.Insert("announcement_comments").
		Columns("announcement_id", "author_id", "content").
		Values(comment.AnnouncementID, comment.AuthorID, comment.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build add comment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrAnnouncementNotFound
		}
		return 0, fmt.Errorf("error adding comment: %w", err)
	}
	return id, nil
}
