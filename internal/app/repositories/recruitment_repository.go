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

const recruitmentPostColumns = "id, event_id, poster_id, title, description, team_size, created_at, updated_at"

// RecruitmentRepository handles team-recruitment database operations
type RecruitmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRecruitmentRepository creates a new RecruitmentRepository
func NewRecruitmentRepository(db *pgxpool.Pool) *RecruitmentRepository {
	return &RecruitmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanRecruitmentPost(row pgx.Row) (*models.RecruitmentPost, error) {
	var post models.RecruitmentPost
	err := row.Scan(
		&post.ID,
		&post.EventID,
		&post.PosterID,
		&post.Title,
		&post.Description,
		&post.TeamSize,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost inserts a new recruitment post and returns its ID
func (r *RecruitmentRepository) CreatePost(ctx context.Context, post *models.RecruitmentPost) (int64, error) {
	sql, args, err := r.sb.Insert("recruitment_posts").
		Columns("event_id", "poster_id", "title", "description", "team_size").
		Values(post.EventID, post.PosterID, post.Title, post.Description, post.TeamSize).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create post query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrEventNotFound
		}
		return 0, fmt.Errorf("error creating recruitment post: %w", err)
	}
	return id, nil
}

// GetPostByID retrieves a post with its applications loaded
func (r *RecruitmentRepository) GetPostByID(ctx context.Context, id int64) (*models.RecruitmentPost, error) {
	sql, args, err := r.sb.Select(recruitmentPostColumns).
		From("recruitment_posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	post, err := scanRecruitmentPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecruitmentPostNotFound
		}
		return nil, fmt.Errorf("error retrieving recruitment post: %w", err)
	}

	applications, err := r.loadApplications(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Applications = applications

	return post, nil
}

// GetPostsByEvent retrieves all posts for an event, newest first
func (r *RecruitmentRepository) GetPostsByEvent(ctx context.Context, eventID int64, page, pageSize int) ([]*models.RecruitmentPost, int, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("recruitment_posts").
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count posts query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting recruitment posts: %w", err)
	}

	offset := (page - 1) * pageSize
	sql, args, err := r.sb.Select(recruitmentPostColumns).
		From("recruitment_posts").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing recruitment posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.RecruitmentPost{}
	for rows.Next() {
		post, err := scanRecruitmentPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, total, nil
}

func (r *RecruitmentRepository) loadApplications(ctx context.Context, postID int64) ([]*models.RecruitmentApplication, error) {
	sql, args, err := r.sb.Select(
		"ra.id", "ra.post_id", "ra.applicant_id", "ra.message", "ra.status", "ra.created_at", "ra.updated_at",
		"u.id", "u.email", "u.first_name", "u.last_name", "u.role", "u.university_id").
		From("recruitment_applications ra").
		Join("users u ON u.id = ra.applicant_id").
		Where(squirrel.Eq{"ra.post_id": postID}).
		OrderBy("ra.created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build load applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading applications: %w", err)
	}
	defer rows.Close()

	applications := []*models.RecruitmentApplication{}
	for rows.Next() {
		var a models.RecruitmentApplication
		var u models.User
		err := rows.Scan(
			&a.ID, &a.PostID, &a.ApplicantID, &a.Message, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.UniversityID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		a.Applicant = &u
		applications = append(applications, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return applications, nil
}

// Apply inserts an application and returns its ID
func (r *RecruitmentRepository) Apply(ctx context.Context, application *models.RecruitmentApplication) (int64, error) {
	sql, args, err := r.sb.Insert("recruitment_applications").
		Columns("post_id", "applicant_id", "message", "status").
		Values(application.PostID, application.ApplicantID, application.Message, models.ApplicationPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build apply query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "recruitment_applications_post_id_applicant_id_key") {
			return 0, apperrors.ErrAlreadyApplied
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrRecruitmentPostNotFound
		}
		return 0, fmt.Errorf("error creating application: %w", err)
	}
	return id, nil
}

// UpdateApplicationStatus records the poster's decision on an application
func (r *RecruitmentRepository) UpdateApplicationStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) error {
	sql, args, err := r.sb.Update("recruitment_applications").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": applicationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update application query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// GetApplicationByID retrieves a single application
func (r *RecruitmentRepository) GetApplicationByID(ctx context.Context, id int64) (*models.RecruitmentApplication, error) {
	sql, args, err := r.sb.Select("id", "post_id", "applicant_id", "message", "status", "created_at", "updated_at").
		From("recruitment_applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	var a models.RecruitmentApplication
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.PostID, &a.ApplicantID, &a.Message, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return &a, nil
}
