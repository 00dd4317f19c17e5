package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/permissions"
	"github.com/kerem/clubsphere/internal/app/repositories"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
)

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	GetAllAnnouncements(ctx context.Context, filter *dto.AnnouncementFilterRequest) (*dto.AnnouncementListResponse, error)
	GetAnnouncementByID(ctx context.Context, id int64) (*dto.AnnouncementDetailResponse, error)
	CreateAnnouncement(ctx context.Context, clubID, authorID int64, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	UpdateAnnouncement(ctx context.Context, announcementID, actorID int64, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	DeleteAnnouncement(ctx context.Context, announcementID, actorID int64) error
	Like(ctx context.Context, announcementID, userID int64) error
	Unlike(ctx context.Context, announcementID, userID int64) error
	AddComment(ctx context.Context, announcementID, authorID int64, req *dto.CreateCommentRequest) (*dto.AnnouncementDetailResponse, error)
}

// announcementServiceImpl implements AnnouncementService
type announcementServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
	clubRepo         *repositories.ClubRepository
	userRepo         *repositories.UserRepository
	logger           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(
	announcementRepo *repositories.AnnouncementRepository,
	clubRepo *repositories.ClubRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		clubRepo:         clubRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// GetAllAnnouncements lists visible announcements. Announcements scheduled
// for the future are excluded by the repository query.
func (s *announcementServiceImpl) GetAllAnnouncements(ctx context.Context, filter *dto.AnnouncementFilterRequest) (*dto.AnnouncementListResponse, error) {
	announcements, total, err := s.announcementRepo.GetAll(ctx, filter.ClubID, filter.Type, filter.Pinned, filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	return &dto.AnnouncementListResponse{
		Announcements:  dto.FromAnnouncements(announcements),
		PaginationInfo: dto.NewPaginationInfo(filter.Page, filter.PageSize, total),
	}, nil
}

// GetAnnouncementByID retrieves an announcement with comments
func (s *announcementServiceImpl) GetAnnouncementByID(ctx context.Context, id int64) (*dto.AnnouncementDetailResponse, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromAnnouncementDetail(announcement)
	return &resp, nil
}

// CreateAnnouncement posts an announcement for a club. Authorship requires
// administrator role, club presidency, or an officer-tier member role.
func (s *announcementServiceImpl) CreateAnnouncement(ctx context.Context, clubID, authorID int64, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if !permissions.CanCreateAnnouncement(author, club) {
		return nil, apperrors.NewForbiddenError("Only administrators, the club president, or club officers can post announcements")
	}
	if req.ScheduledFor != nil && req.ScheduledFor.Before(time.Now()) {
		return nil, apperrors.NewValidationError("Scheduled time must be in the future")
	}

	announcement := &models.Announcement{
		ClubID:       clubID,
		AuthorID:     authorID,
		Title:        req.Title,
		Content:      req.Content,
		Type:         req.Type,
		Priority:     req.Priority,
		IsPinned:     req.IsPinned,
		ScheduledFor: req.ScheduledFor,
		Tags:         req.Tags,
	}

	id, err := s.announcementRepo.Create(ctx, announcement)
	if err != nil {
		return nil, err
	}
	announcement.ID = id

	s.logger.Info().Int64("announcementID", id).Int64("clubID", clubID).Int64("authorID", authorID).Msg("Announcement created")
	resp := dto.FromAnnouncement(announcement)
	return &resp, nil
}

// UpdateAnnouncement edits an announcement. The author and anyone with
// announcement authority over the club may edit.
func (s *announcementServiceImpl) UpdateAnnouncement(ctx context.Context, announcementID, actorID int64, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	announcement, club, actor, err := s.loadForModeration(ctx, announcementID, actorID)
	if err != nil {
		return nil, err
	}

	if !permissions.CanModerateAnnouncement(actor, announcement, club) {
		return nil, apperrors.NewForbiddenError("You cannot edit this announcement")
	}

	announcement.Title = req.Title
	announcement.Content = req.Content
	announcement.Priority = req.Priority
	announcement.IsPinned = req.IsPinned
	announcement.Tags = req.Tags

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}

	resp := dto.FromAnnouncement(announcement)
	return &resp, nil
}

// DeleteAnnouncement removes an announcement under the same moderation rule
// as editing
func (s *announcementServiceImpl) DeleteAnnouncement(ctx context.Context, announcementID, actorID int64) error {
	announcement, club, actor, err := s.loadForModeration(ctx, announcementID, actorID)
	if err != nil {
		return err
	}

	if !permissions.CanModerateAnnouncement(actor, announcement, club) {
		return apperrors.NewForbiddenError("You cannot delete this announcement")
	}

	return s.announcementRepo.Delete(ctx, announcementID)
}

// Like records a like for the user
func (s *announcementServiceImpl) Like(ctx context.Context, announcementID, userID int64) error {
	return s.announcementRepo.Like(ctx, announcementID, userID)
}

// Unlike removes the user's like
func (s *announcementServiceImpl) Unlike(ctx context.Context, announcementID, userID int64) error {
	return s.announcementRepo.Unlike(ctx, announcementID, userID)
}

// AddComment posts a comment and returns the refreshed announcement
func (s *announcementServiceImpl) AddComment(ctx context.Context, announcementID, authorID int64, req *dto.CreateCommentRequest) (*dto.AnnouncementDetailResponse, error) {
	comment := &models.AnnouncementComment{
		AnnouncementID: announcementID,
		AuthorID:       authorID,
		Content:        req.Content,
	}
	if _, err := s.announcementRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.GetAnnouncementByID(ctx, announcementID)
}

func (s *announcementServiceImpl) loadForModeration(ctx context.Context, announcementID, actorID int64) (*models.Announcement, *models.Club, *models.User, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, announcementID)
	if err != nil {
		return nil, nil, nil, err
	}
	club, err := s.clubRepo.GetByID(ctx, announcement.ClubID)
	if err != nil {
		return nil, nil, nil, err
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, nil, nil, err
	}
	return announcement, club, actor, nil
}
