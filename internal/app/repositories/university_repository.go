package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
	"github.com/kerem/clubsphere/internal/pkg/dberrors"
)

// UniversityRepository handles university database operations
type UniversityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all universities ordered by name
func (r *UniversityRepository) GetAll(ctx context.Context) ([]*models.University, error) {
	sql, args, err := r.sb.Select("id", "name", "domain", "city", "created_at").
		From("universities").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list universities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing universities: %w", err)
	}
	defer rows.Close()

	universities := []*models.University{}
	for rows.Next() {
		var u models.University
		if err := rows.Scan(&u.ID, &u.Name, &u.Domain, &u.City, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning university row: %w", err)
		}
		universities = append(universities, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating university rows: %w", err)
	}
	return universities, nil
}

// GetByID retrieves a university by ID
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	sql, args, err := r.sb.Select("id", "name", "domain", "city", "created_at").
		From("universities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get university query: %w", err)
	}

	var u models.University
	err = r.db.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Name, &u.Domain, &u.City, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("University not found")
		}
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}
	return &u, nil
}

// Create inserts a new university and returns its ID
func (r *UniversityRepository) Create(ctx context.Context, university *models.University) (int64, error) {
	sql, args, err := r.sb.Insert("universities").
		Columns("name", "domain", "city").
		Values(university.Name, university.Domain, university.City).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create university query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error creating university: %w", err)
	}
	return id, nil
}
