package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/reconcile"
	"github.com/kerem/clubsphere/internal/app/repositories"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
	"github.com/kerem/clubsphere/internal/pkg/auth"
)

// UserService defines the interface for user operations
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error
	GetAllUsers(ctx context.Context, filter *dto.UserFilterRequest) (*dto.UserListResponse, error)
	SetBlocked(ctx context.Context, userID int64, blocked bool) error
	SetRole(ctx context.Context, userID int64, role models.RoleType) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo       *repositories.UserRepository
	universityRepo *repositories.UniversityRepository
	clubRepo       *repositories.ClubRepository
	eventRepo      *repositories.EventRepository
	reconciler     *reconcile.Reconciler
	logger         zerolog.Logger
}

// NewUserService creates a new UserService. Profile references the legacy
// document carries but the database no longer knows are logged at warn level
// and dropped from the derived view.
func NewUserService(
	userRepo *repositories.UserRepository,
	universityRepo *repositories.UniversityRepository,
	clubRepo *repositories.ClubRepository,
	eventRepo *repositories.EventRepository,
	logger zerolog.Logger,
) UserService {
	reconciler := reconcile.New(reconcile.WithUnresolvedHandler(func(kind reconcile.RefKind, id string) {
		logger.Warn().
			Str("kind", string(kind)).
			Str("refID", id).
			Msg("Dropping unresolvable profile reference")
	}))

	return &userServiceImpl{
		userRepo:       userRepo,
		universityRepo: universityRepo,
		clubRepo:       clubRepo,
		eventRepo:      eventRepo,
		reconciler:     reconciler,
		logger:         logger,
	}
}

// GetProfile returns the user's profile with the derived "my clubs" and
// "my events" collections. The user row is loaded first, then its profile
// document is matched against the current club and event tables, so the
// response never contains entities that were deleted after the document was
// written.
func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	doc, err := reconcile.ParseProfileDocument(user.ProfileDocument)
	if err != nil {
		// A corrupt document degrades to an empty one rather than failing
		// the whole profile
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Malformed profile document, treating as empty")
		doc = &reconcile.ProfileDocument{}
	}

	clubIDs := make([]int64, 0, len(doc.ClubMemberships))
	for _, ref := range doc.ClubMemberships {
		if id, ok := reconcile.ParseRefID(ref.ClubID); ok {
			clubIDs = append(clubIDs, id)
		}
	}
	eventIDs := make([]int64, 0, len(doc.EventsAttended))
	for _, ref := range doc.EventsAttended {
		if id, ok := reconcile.ParseRefID(ref.EventID); ok {
			eventIDs = append(eventIDs, id)
		}
	}

	clubs, err := s.clubRepo.GetByIDs(ctx, clubIDs)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.GetByIDs(ctx, eventIDs)
	if err != nil {
		return nil, err
	}

	myClubs := s.reconciler.MyClubs(doc, clubs)
	myEvents := s.reconciler.MyEvents(doc, events)

	resp := &dto.UserProfileResponse{
		UserResponse: dto.FromUser(user),
		MyClubs:      dto.FromClubs(myClubs),
		MyEvents:     dto.FromEvents(myEvents),
	}

	university, err := s.universityRepo.GetByID(ctx, user.UniversityID)
	if err == nil {
		resp.University = dto.FromUniversity(university)
	}

	return resp, nil
}

// UpdateProfile updates the user's own profile fields
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.FromUser(user)
	return &resp, nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *userServiceImpl) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidPassword
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, hashedPassword)
}

// GetAllUsers lists users with filtering and pagination
func (s *userServiceImpl) GetAllUsers(ctx context.Context, filter *dto.UserFilterRequest) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.GetAll(ctx, filter.Search, filter.Role, filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	resp := &dto.UserListResponse{
		Users:          make([]dto.UserResponse, 0, len(users)),
		PaginationInfo: dto.NewPaginationInfo(filter.Page, filter.PageSize, total),
	}
	for _, user := range users {
		resp.Users = append(resp.Users, dto.FromUser(user))
	}
	return resp, nil
}

// SetBlocked blocks or unblocks a user account
func (s *userServiceImpl) SetBlocked(ctx context.Context, userID int64, blocked bool) error {
	if err := s.userRepo.SetBlocked(ctx, userID, blocked); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Bool("blocked", blocked).Msg("User blocked state changed")
	return nil
}

// SetRole changes a user's platform role
func (s *userServiceImpl) SetRole(ctx context.Context, userID int64, role models.RoleType) error {
	if !models.ValidRole(role) {
		return apperrors.NewValidationError("Unknown role " + string(role))
	}
	if err := s.userRepo.SetRole(ctx, userID, role); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Str("role", string(role)).Msg("User role changed")
	return nil
}
