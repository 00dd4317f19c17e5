package dto

import (
	"time"

	"github.com/kerem/clubsphere/internal/app/models"
)

// --- Request DTOs ---

// CreateRecruitmentPostRequest represents a team-recruitment posting
type CreateRecruitmentPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	TeamSize    int    `json:"teamSize" binding:"required,min=2"`
}

// ApplyToPostRequest represents an application to a recruitment post
type ApplyToPostRequest struct {
	Message string `json:"message" binding:"required"`
}

// ReviewApplicationRequest represents the poster's decision on an application
type ReviewApplicationRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}

// --- Response DTOs ---

// RecruitmentPostResponse represents a recruitment post
type RecruitmentPostResponse struct {
	ID               int64     `json:"id"`
	EventID          int64     `json:"eventId"`
	PosterID         int64     `json:"posterId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	TeamSize         int       `json:"teamSize"`
	ApplicationCount int       `json:"applicationCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RecruitmentApplicationResponse represents an application to a post
type RecruitmentApplicationResponse struct {
	ID          int64                    `json:"id"`
	PostID      int64                    `json:"postId"`
	ApplicantID int64                    `json:"applicantId"`
	FirstName   string                   `json:"firstName,omitempty"`
	LastName    string                   `json:"lastName,omitempty"`
	Message     string                   `json:"message"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"createdAt"`
}

// RecruitmentPostDetailResponse extends the post with its applications
type RecruitmentPostDetailResponse struct {
	RecruitmentPostResponse
	Poster       *UserResponse                    `json:"poster,omitempty"`
	Applications []RecruitmentApplicationResponse `json:"applications,omitempty"`
}

// RecruitmentPostListResponse represents a list of posts for an event
type RecruitmentPostListResponse struct {
	Posts []RecruitmentPostResponse `json:"posts"`
	PaginationInfo
}

// FromRecruitmentPost converts a models.RecruitmentPost to a response
func FromRecruitmentPost(post *models.RecruitmentPost) RecruitmentPostResponse {
	if post == nil {
		return RecruitmentPostResponse{}
	}
	return RecruitmentPostResponse{
		ID:               post.ID,
		EventID:          post.EventID,
		PosterID:         post.PosterID,
		Title:            post.Title,
		Description:      post.Description,
		TeamSize:         post.TeamSize,
		ApplicationCount: len(post.Applications),
		CreatedAt:        post.CreatedAt,
	}
}

// FromRecruitmentPosts converts a slice of posts
func FromRecruitmentPosts(posts []*models.RecruitmentPost) []RecruitmentPostResponse {
	result := make([]RecruitmentPostResponse, 0, len(posts))
	for _, post := range posts {
		result = append(result, FromRecruitmentPost(post))
	}
	return result
}

// FromRecruitmentApplication converts an application
func FromRecruitmentApplication(app *models.RecruitmentApplication) RecruitmentApplicationResponse {
	if app == nil {
		return RecruitmentApplicationResponse{}
	}
	resp := RecruitmentApplicationResponse{
		ID:          app.ID,
		PostID:      app.PostID,
		ApplicantID: app.ApplicantID,
		Message:     app.Message,
		Status:      app.Status,
		CreatedAt:   app.CreatedAt,
	}
	if app.Applicant != nil {
		resp.FirstName = app.Applicant.FirstName
		resp.LastName = app.Applicant.LastName
	}
	return resp
}

// FromRecruitmentPostDetail converts a fully loaded post
func FromRecruitmentPostDetail(post *models.RecruitmentPost) RecruitmentPostDetailResponse {
	detail := RecruitmentPostDetailResponse{RecruitmentPostResponse: FromRecruitmentPost(post)}
	if post == nil {
		return detail
	}
	if post.Poster != nil {
		poster := FromUser(post.Poster)
		detail.Poster = &poster
	}
	for _, app := range post.Applications {
		detail.Applications = append(detail.Applications, FromRecruitmentApplication(app))
	}
	return detail
}
