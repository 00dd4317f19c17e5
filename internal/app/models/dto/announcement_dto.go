package dto

import (
	"time"

	"github.com/kerem/clubsphere/internal/app/models"
)

// --- Request DTOs ---

// CreateAnnouncementRequest represents announcement creation data
type CreateAnnouncementRequest struct {
	Title        string     `json:"title" binding:"required"`
	Content      string     `json:"content" binding:"required"`
	Type         string     `json:"type" binding:"required,oneof=general event urgent"`
	Priority     string     `json:"priority" binding:"required,oneof=low normal high"`
	IsPinned     bool       `json:"isPinned"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
	Tags         []string   `json:"tags"`
}

// UpdateAnnouncementRequest represents announcement update data
type UpdateAnnouncementRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Priority string   `json:"priority" binding:"required,oneof=low normal high"`
	IsPinned bool     `json:"isPinned"`
	Tags     []string `json:"tags"`
}

// CreateCommentRequest represents a comment on an announcement
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AnnouncementFilterRequest represents announcement list filter parameters
type AnnouncementFilterRequest struct {
	ClubID   *int64  `form:"clubId,omitempty"`
	Type     *string `form:"type,omitempty"`
	Pinned   *bool   `form:"pinned,omitempty"`
	Page     int     `form:"page,default=1" binding:"min=1"`
	PageSize int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// --- Response DTOs ---

// AnnouncementResponse represents an announcement
type AnnouncementResponse struct {
	ID           int64      `json:"id"`
	ClubID       int64      `json:"clubId"`
	AuthorID     int64      `json:"authorId"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Type         string     `json:"type"`
	Priority     string     `json:"priority"`
	IsPinned     bool       `json:"isPinned"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
	Tags         []string   `json:"tags"`
	LikeCount    int        `json:"likeCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// AnnouncementCommentResponse represents a comment on an announcement
type AnnouncementCommentResponse struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"authorId"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnnouncementDetailResponse extends AnnouncementResponse with comments
type AnnouncementDetailResponse struct {
	AnnouncementResponse
	Author   *UserResponse                 `json:"author,omitempty"`
	Comments []AnnouncementCommentResponse `json:"comments,omitempty"`
}

// AnnouncementListResponse represents a paginated list of announcements
type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	PaginationInfo
}

// FromAnnouncement converts a models.Announcement to an AnnouncementResponse
func FromAnnouncement(a *models.Announcement) AnnouncementResponse {
	if a == nil {
		return AnnouncementResponse{}
	}
	return AnnouncementResponse{
		ID:           a.ID,
		ClubID:       a.ClubID,
		AuthorID:     a.AuthorID,
		Title:        a.Title,
		Content:      a.Content,
		Type:         a.Type,
		Priority:     a.Priority,
		IsPinned:     a.IsPinned,
		ScheduledFor: a.ScheduledFor,
		Tags:         a.Tags,
		LikeCount:    a.LikeCount,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// FromAnnouncements converts a slice of announcements
func FromAnnouncements(items []*models.Announcement) []AnnouncementResponse {
	result := make([]AnnouncementResponse, 0, len(items))
	for _, a := range items {
		result = append(result, FromAnnouncement(a))
	}
	return result
}

// FromAnnouncementDetail converts a fully loaded announcement
func FromAnnouncementDetail(a *models.Announcement) AnnouncementDetailResponse {
	detail := AnnouncementDetailResponse{AnnouncementResponse: FromAnnouncement(a)}
	if a == nil {
		return detail
	}
	if a.Author != nil {
		author := FromUser(a.Author)
		detail.Author = &author
	}
	for _, c := range a.Comments {
		comment := AnnouncementCommentResponse{
			ID:        c.ID,
			AuthorID:  c.AuthorID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
		if c.Author != nil {
			comment.FirstName = c.Author.FirstName
			comment.LastName = c.Author.LastName
		}
		detail.Comments = append(detail.Comments, comment)
	}
	return detail
}
