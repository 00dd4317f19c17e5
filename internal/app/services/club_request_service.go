package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/permissions"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
)

// bulkApproveNote is recorded on every request approved by the bulk sweep
const bulkApproveNote = "Bulk approved by administrator"

// ClubRequestStore is the persistence surface the request workflow needs
type ClubRequestStore interface {
	Create(ctx context.Context, request *models.ClubRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ClubRequest, error)
	GetAll(ctx context.Context, status *string, page, pageSize int) ([]*models.ClubRequest, int, error)
	GetPendingIDs(ctx context.Context) ([]int64, error)
	Approve(ctx context.Context, id int64, adminNotes *string) (int64, error)
	Reject(ctx context.Context, id int64, adminNotes *string) error
}

// UserStore is the user lookup surface the request workflow needs
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// ClubRequestService defines the interface for the club-creation review
// workflow
type ClubRequestService interface {
	CreateRequest(ctx context.Context, userID int64, req *dto.CreateClubRequestRequest) (*dto.ClubRequestResponse, error)
	GetRequestByID(ctx context.Context, id int64) (*dto.ClubRequestResponse, error)
	GetAllRequests(ctx context.Context, filter *dto.ClubRequestFilterRequest) (*dto.ClubRequestListResponse, error)
	ReviewRequest(ctx context.Context, requestID, actorID int64, review *dto.ReviewClubRequestRequest) (*dto.ClubRequestResponse, error)
	BulkApprove(ctx context.Context, actorID int64) (*dto.BulkApproveResponse, error)
}

// clubRequestServiceImpl implements ClubRequestService
type clubRequestServiceImpl struct {
	requestStore ClubRequestStore
	userStore    UserStore
	logger       zerolog.Logger
}

// NewClubRequestService creates a new ClubRequestService
func NewClubRequestService(requestStore ClubRequestStore, userStore UserStore, logger zerolog.Logger) ClubRequestService {
	return &clubRequestServiceImpl{
		requestStore: requestStore,
		userStore:    userStore,
		logger:       logger,
	}
}

// CreateRequest submits a new pending club-creation request
func (s *clubRequestServiceImpl) CreateRequest(ctx context.Context, userID int64, req *dto.CreateClubRequestRequest) (*dto.ClubRequestResponse, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	request := &models.ClubRequest{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		RequestedByID: user.ID,
		UniversityID:  user.UniversityID,
		Status:        models.RequestPending,
	}

	id, err := s.requestStore.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("requestID", id).Int64("userID", userID).Str("name", req.Name).Msg("Club request submitted")
	return s.GetRequestByID(ctx, id)
}

// GetRequestByID retrieves a single request
func (s *clubRequestServiceImpl) GetRequestByID(ctx context.Context, id int64) (*dto.ClubRequestResponse, error) {
	request, err := s.requestStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromClubRequest(request)
	return &resp, nil
}

// GetAllRequests lists requests with optional status filtering
func (s *clubRequestServiceImpl) GetAllRequests(ctx context.Context, filter *dto.ClubRequestFilterRequest) (*dto.ClubRequestListResponse, error) {
	requests, total, err := s.requestStore.GetAll(ctx, filter.Status, filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	return &dto.ClubRequestListResponse{
		Requests:       dto.FromClubRequests(requests),
		PaginationInfo: dto.NewPaginationInfo(filter.Page, filter.PageSize, total),
	}, nil
}

// ReviewRequest applies an administrator's decision to a pending request.
// Approved and rejected are terminal: reviewing a request twice reports a
// conflict. Approval materializes the club with the requester as president.
func (s *clubRequestServiceImpl) ReviewRequest(ctx context.Context, requestID, actorID int64, review *dto.ReviewClubRequestRequest) (*dto.ClubRequestResponse, error) {
	actor, err := s.userStore.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanReviewClubRequest(actor) {
		return nil, apperrors.NewForbiddenError("Only administrators can review club requests")
	}

	switch review.Status {
	case models.RequestApproved:
		clubID, err := s.requestStore.Approve(ctx, requestID, review.AdminNotes)
		if err != nil {
			return nil, err
		}
		s.logger.Info().Int64("requestID", requestID).Int64("clubID", clubID).Int64("adminID", actorID).Msg("Club request approved")
	case models.RequestRejected:
		if err := s.requestStore.Reject(ctx, requestID, review.AdminNotes); err != nil {
			return nil, err
		}
		s.logger.Info().Int64("requestID", requestID).Int64("adminID", actorID).Msg("Club request rejected")
	default:
		return nil, apperrors.NewValidationError("Review status must be APPROVED or REJECTED")
	}

	return s.GetRequestByID(ctx, requestID)
}

// BulkApprove approves every currently pending request and reports aggregate
// counts. A request that fails to approve (for example, one reviewed
// concurrently mid-sweep) counts as failed without aborting the rest.
func (s *clubRequestServiceImpl) BulkApprove(ctx context.Context, actorID int64) (*dto.BulkApproveResponse, error) {
	actor, err := s.userStore.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanReviewClubRequest(actor) {
		return nil, apperrors.NewForbiddenError("Only administrators can review club requests")
	}

	ids, err := s.requestStore.GetPendingIDs(ctx)
	if err != nil {
		return nil, err
	}

	notes := bulkApproveNote
	result := &dto.BulkApproveResponse{}
	for _, id := range ids {
		if _, err := s.requestStore.Approve(ctx, id, &notes); err != nil {
			s.logger.Warn().Err(err).Int64("requestID", id).Msg("Bulk approve: request failed")
			result.Failed++
			continue
		}
		result.Approved++
	}

	s.logger.Info().
		Int64("adminID", actorID).
		Int("approved", result.Approved).
		Int("failed", result.Failed).
		Msg("Bulk approve completed")
	return result, nil
}
