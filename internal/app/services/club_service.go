package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kerem/clubsphere/internal/app/gate"
	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/permissions"
	"github.com/kerem/clubsphere/internal/app/reconcile"
	"github.com/kerem/clubsphere/internal/app/repositories"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
)

// ClubService defines the interface for club operations
type ClubService interface {
	GetAllClubs(ctx context.Context, universityID int64, filter *dto.ClubFilterRequest) (*dto.ClubListResponse, error)
	GetClubByID(ctx context.Context, id int64) (*dto.ClubDetailResponse, error)
	UpdateClub(ctx context.Context, clubID, actorID int64, req *dto.UpdateClubRequest) (*dto.ClubResponse, error)
	JoinClub(ctx context.Context, clubID, userID int64) error
	LeaveClub(ctx context.Context, clubID, userID int64) error
	UpdateMemberRole(ctx context.Context, clubID, actorID, memberID int64, role models.MemberRole) error
}

// clubServiceImpl implements ClubService
type clubServiceImpl struct {
	clubRepo     *repositories.ClubRepository
	memberRepo   *repositories.ClubMemberRepository
	attendeeRepo *repositories.EventAttendeeRepository
	userRepo     *repositories.UserRepository
	logger       zerolog.Logger
}

// NewClubService creates a new ClubService
func NewClubService(
	clubRepo *repositories.ClubRepository,
	memberRepo *repositories.ClubMemberRepository,
	attendeeRepo *repositories.EventAttendeeRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) ClubService {
	return &clubServiceImpl{
		clubRepo:     clubRepo,
		memberRepo:   memberRepo,
		attendeeRepo: attendeeRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// GetAllClubs lists a university's clubs with filtering and pagination
func (s *clubServiceImpl) GetAllClubs(ctx context.Context, universityID int64, filter *dto.ClubFilterRequest) (*dto.ClubListResponse, error) {
	clubs, total, err := s.clubRepo.GetAll(ctx, universityID, filter.Category, filter.Search, filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	return &dto.ClubListResponse{
		Clubs:          dto.FromClubs(clubs),
		PaginationInfo: dto.NewPaginationInfo(filter.Page, filter.PageSize, total),
	}, nil
}

// GetClubByID retrieves a club with members and president loaded
func (s *clubServiceImpl) GetClubByID(ctx context.Context, id int64) (*dto.ClubDetailResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if president, err := s.userRepo.GetByID(ctx, club.PresidentID); err == nil {
		club.President = president
	}

	resp := dto.FromClubDetail(club)
	return &resp, nil
}

// UpdateClub updates a club's profile. Only administrators and the club
// president may edit.
func (s *clubServiceImpl) UpdateClub(ctx context.Context, clubID, actorID int64, req *dto.UpdateClubRequest) (*dto.ClubResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !permissions.CanManageClub(actor, club) {
		return nil, apperrors.NewForbiddenError("Only the club president or an administrator can edit this club")
	}

	club.Name = req.Name
	club.Description = req.Description
	club.Category = req.Category
	club.MembershipFee = req.MembershipFee
	club.IsPrivate = req.IsPrivate
	club.Tags = req.Tags

	if err := s.clubRepo.Update(ctx, club); err != nil {
		return nil, err
	}

	resp := dto.FromClub(club)
	return &resp, nil
}

// JoinClub adds the user to the club after re-checking the gate conditions
// against current state
func (s *clubServiceImpl) JoinClub(ctx context.Context, clubID, userID int64) error {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if decision := gate.CanJoinClub(club, user); !decision.Allowed {
		return joinDecisionError(decision)
	}

	if err := s.memberRepo.Add(ctx, clubID, userID, models.MemberRoleMember); err != nil {
		return err
	}

	s.logger.Info().Int64("clubID", clubID).Int64("userID", userID).Msg("User joined club")
	s.syncProfileDocument(ctx, userID)
	return nil
}

// LeaveClub removes the user from the club. The president cannot leave.
func (s *clubServiceImpl) LeaveClub(ctx context.Context, clubID, userID int64) error {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if decision := gate.CanLeaveClub(club, user); !decision.Allowed {
		return leaveDecisionError(decision)
	}

	if err := s.memberRepo.Remove(ctx, clubID, userID); err != nil {
		return err
	}

	s.logger.Info().Int64("clubID", clubID).Int64("userID", userID).Msg("User left club")
	s.syncProfileDocument(ctx, userID)
	return nil
}

// UpdateMemberRole changes a member's role. Only administrators and the
// president may assign roles, and the President role itself is assigned by
// presidency transfer, not here.
func (s *clubServiceImpl) UpdateMemberRole(ctx context.Context, clubID, actorID, memberID int64, role models.MemberRole) error {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	if !permissions.CanManageClub(actor, club) {
		return apperrors.NewForbiddenError("Only the club president or an administrator can assign roles")
	}
	if role == models.MemberRolePresident {
		return apperrors.NewBadRequestError("Presidency is assigned by transfer, not by role change")
	}
	if club.MemberByUserID(memberID) == nil {
		return apperrors.ErrNotMember
	}

	return s.memberRepo.UpdateRole(ctx, clubID, memberID, role)
}

// syncProfileDocument rewrites the user's denormalized profile document in
// the canonical shape after a membership mutation. Failures are logged, not
// surfaced: the document is derived state and the next successful mutation
// repairs it.
func (s *clubServiceImpl) syncProfileDocument(ctx context.Context, userID int64) {
	memberships, err := s.memberRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile document sync: failed to load memberships")
		return
	}
	attendances, err := s.attendeeRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile document sync: failed to load registrations")
		return
	}

	doc, err := reconcile.CanonicalDocument(memberships, attendances)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile document sync: failed to build document")
		return
	}
	if err := s.userRepo.UpdateProfileDocument(ctx, userID, doc); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile document sync: failed to persist document")
	}
}

func joinDecisionError(decision gate.Decision) error {
	switch decision.Reason {
	case gate.ReasonAlreadyMember:
		return apperrors.ErrAlreadyMember
	case gate.ReasonDifferentUniversity:
		return apperrors.ErrWrongUniversity
	case gate.ReasonPrivateClub:
		return apperrors.ErrClubPrivate
	}
	return apperrors.NewForbiddenError("Joining this club is not allowed")
}

func leaveDecisionError(decision gate.Decision) error {
	switch decision.Reason {
	case gate.ReasonNotMember:
		return apperrors.ErrNotMember
	case gate.ReasonPresident:
		return apperrors.ErrPresidentCantLeave
	}
	return apperrors.NewForbiddenError("Leaving this club is not allowed")
}
