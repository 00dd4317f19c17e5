package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/repositories"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
	"github.com/kerem/clubsphere/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@clubsphere.edu.tr"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData ensures a default university and administrator
// account exist. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	universityRepo := repositories.NewUniversityRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking default data...")
	var finalErr error

	// Default university
	var universityID int64
	universities, err := universityRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing universities")
		finalErr = errors.Join(finalErr, err)
	} else if len(universities) > 0 {
		universityID = universities[0].ID
	} else {
		lgr.Info().Msg("Creating default university...")
		universityID, err = universityRepo.Create(ctx, &models.University{
			Name:   "ClubSphere University",
			Domain: "clubsphere.edu.tr",
			City:   "Istanbul",
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Error creating default university")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Default administrator
	if universityID > 0 {
		_, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
		switch {
		case err == nil:
			lgr.Debug().Msg("Administrator account already exists, skipping")
		case errors.Is(err, apperrors.ErrUserNotFound):
			lgr.Info().Msg("Creating default administrator account...")
			hashed, hashErr := auth.HashPassword(defaultAdminPassword)
			if hashErr != nil {
				lgr.Error().Err(hashErr).Msg("Error hashing administrator password")
				finalErr = errors.Join(finalErr, hashErr)
				break
			}
			adminID, createErr := userRepo.Create(ctx, &models.User{
				Email:        defaultAdminEmail,
				Password:     hashed,
				FirstName:    "System",
				LastName:     "Administrator",
				Role:         models.RoleAdministrator,
				UniversityID: universityID,
			})
			if createErr != nil {
				lgr.Error().Err(createErr).Msg("Error creating administrator account")
				finalErr = errors.Join(finalErr, createErr)
			} else {
				lgr.Info().Int64("adminID", adminID).Msg("Default administrator account created")
			}
		default:
			lgr.Error().Err(err).Msg("Error checking administrator account")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check finished.")
	return finalErr
}
