package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kerem/clubsphere/internal/app/gate"
	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/permissions"
	"github.com/kerem/clubsphere/internal/app/repositories"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
)

// RecruitmentService defines the interface for team-recruitment operations
type RecruitmentService interface {
	CreatePost(ctx context.Context, eventID, posterID int64, req *dto.CreateRecruitmentPostRequest) (*dto.RecruitmentPostResponse, error)
	GetPostByID(ctx context.Context, id int64) (*dto.RecruitmentPostDetailResponse, error)
	GetPostsByEvent(ctx context.Context, eventID int64, page, pageSize int) (*dto.RecruitmentPostListResponse, error)
	Apply(ctx context.Context, postID, applicantID int64, req *dto.ApplyToPostRequest) (*dto.RecruitmentPostDetailResponse, error)
	ReviewApplication(ctx context.Context, applicationID, actorID int64, req *dto.ReviewApplicationRequest) error
}

// recruitmentServiceImpl implements RecruitmentService
type recruitmentServiceImpl struct {
	recruitmentRepo *repositories.RecruitmentRepository
	eventRepo       *repositories.EventRepository
	userRepo        *repositories.UserRepository
	logger          zerolog.Logger
}

// NewRecruitmentService creates a new RecruitmentService
func NewRecruitmentService(
	recruitmentRepo *repositories.RecruitmentRepository,
	eventRepo *repositories.EventRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) RecruitmentService {
	return &recruitmentServiceImpl{
		recruitmentRepo: recruitmentRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// CreatePost creates a recruitment post for an event. The poster must be
// registered for the event.
func (s *recruitmentServiceImpl) CreatePost(ctx context.Context, eventID, posterID int64, req *dto.CreateRecruitmentPostRequest) (*dto.RecruitmentPostResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.AttendeeByUserID(posterID) == nil {
		return nil, apperrors.NewForbiddenError("Only registered attendees can post team recruitment for this event")
	}

	post := &models.RecruitmentPost{
		EventID:     eventID,
		PosterID:    posterID,
		Title:       req.Title,
		Description: req.Description,
		TeamSize:    req.TeamSize,
	}

	id, err := s.recruitmentRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id

	s.logger.Info().Int64("postID", id).Int64("eventID", eventID).Int64("posterID", posterID).Msg("Recruitment post created")
	resp := dto.FromRecruitmentPost(post)
	return &resp, nil
}

// GetPostByID retrieves a post with its applications
func (s *recruitmentServiceImpl) GetPostByID(ctx context.Context, id int64) (*dto.RecruitmentPostDetailResponse, error) {
	post, err := s.recruitmentRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if poster, err := s.userRepo.GetByID(ctx, post.PosterID); err == nil {
		post.Poster = poster
	}
	resp := dto.FromRecruitmentPostDetail(post)
	return &resp, nil
}

// GetPostsByEvent lists an event's recruitment posts
func (s *recruitmentServiceImpl) GetPostsByEvent(ctx context.Context, eventID int64, page, pageSize int) (*dto.RecruitmentPostListResponse, error) {
	posts, total, err := s.recruitmentRepo.GetPostsByEvent(ctx, eventID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.RecruitmentPostListResponse{
		Posts:          dto.FromRecruitmentPosts(posts),
		PaginationInfo: dto.NewPaginationInfo(page, pageSize, total),
	}, nil
}

// Apply submits an application to a post after re-checking the gate
// conditions. Posters cannot apply to their own posts, and each user applies
// at most once.
func (s *recruitmentServiceImpl) Apply(ctx context.Context, postID, applicantID int64, req *dto.ApplyToPostRequest) (*dto.RecruitmentPostDetailResponse, error) {
	post, err := s.recruitmentRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	applicant, err := s.userRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	if decision := gate.CanApplyToPost(post, applicant); !decision.Allowed {
		switch decision.Reason {
		case gate.ReasonOwnPost:
			return nil, apperrors.ErrOwnPost
		case gate.ReasonAlreadyApplied:
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.NewForbiddenError("Applying to this post is not allowed")
	}

	application := &models.RecruitmentApplication{
		PostID:      postID,
		ApplicantID: applicantID,
		Message:     req.Message,
	}
	if _, err := s.recruitmentRepo.Apply(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postID", postID).Int64("applicantID", applicantID).Msg("Recruitment application submitted")
	return s.GetPostByID(ctx, postID)
}

// ReviewApplication records the poster's decision on an application
func (s *recruitmentServiceImpl) ReviewApplication(ctx context.Context, applicationID, actorID int64, req *dto.ReviewApplicationRequest) error {
	application, err := s.recruitmentRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return err
	}
	post, err := s.recruitmentRepo.GetPostByID(ctx, application.PostID)
	if err != nil {
		return err
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	if !permissions.CanReviewApplication(actor, post) {
		return apperrors.NewForbiddenError("Only the post's author can review applications")
	}

	return s.recruitmentRepo.UpdateApplicationStatus(ctx, applicationID, req.Status)
}
