package dto

import (
	"time"

	"github.com/kerem/clubsphere/internal/app/models"
)

// --- Request DTOs ---

// UpdateClubRequest represents club profile update data
type UpdateClubRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	MembershipFee float64  `json:"membershipFee" binding:"min=0"`
	IsPrivate     bool     `json:"isPrivate"`
	Tags          []string `json:"tags"`
}

// UpdateMemberRoleRequest represents a member role change
type UpdateMemberRoleRequest struct {
	MemberRole models.MemberRole `json:"memberRole" binding:"required"`
}

// ClubFilterRequest represents club list filter parameters
type ClubFilterRequest struct {
	Category *string `form:"category,omitempty"`
	Search   *string `form:"search,omitempty"`
	Page     int     `form:"page,default=1" binding:"min=1"`
	PageSize int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// --- Response DTOs ---

// ClubResponse represents basic club information
type ClubResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	UniversityID  int64     `json:"universityId"`
	PresidentID   int64     `json:"presidentId"`
	MembershipFee float64   `json:"membershipFee"`
	IsPrivate     bool      `json:"isPrivate"`
	Tags          []string  `json:"tags"`
	MemberCount   int       `json:"memberCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ClubMemberResponse represents a member entry in a club
type ClubMemberResponse struct {
	UserID     int64             `json:"userId"`
	FirstName  string            `json:"firstName,omitempty"`
	LastName   string            `json:"lastName,omitempty"`
	MemberRole models.MemberRole `json:"memberRole"`
	JoinedAt   time.Time         `json:"joinedAt"`
}

// ClubDetailResponse extends ClubResponse with member details
type ClubDetailResponse struct {
	ClubResponse
	President *UserResponse        `json:"president,omitempty"`
	Members   []ClubMemberResponse `json:"members,omitempty"`
}

// ClubListResponse represents a paginated list of clubs
type ClubListResponse struct {
	Clubs []ClubResponse `json:"clubs"`
	PaginationInfo
}

// FromClub converts a models.Club to a ClubResponse
func FromClub(club *models.Club) ClubResponse {
	if club == nil {
		return ClubResponse{}
	}
	return ClubResponse{
		ID:            club.ID,
		Name:          club.Name,
		Description:   club.Description,
		Category:      club.Category,
		UniversityID:  club.UniversityID,
		PresidentID:   club.PresidentID,
		MembershipFee: club.MembershipFee,
		IsPrivate:     club.IsPrivate,
		Tags:          club.Tags,
		MemberCount:   len(club.Members),
		CreatedAt:     club.CreatedAt,
		UpdatedAt:     club.UpdatedAt,
	}
}

// FromClubs converts a slice of clubs
func FromClubs(clubs []*models.Club) []ClubResponse {
	result := make([]ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		result = append(result, FromClub(club))
	}
	return result
}

// FromClubDetail converts a fully loaded club to a ClubDetailResponse
func FromClubDetail(club *models.Club) ClubDetailResponse {
	detail := ClubDetailResponse{ClubResponse: FromClub(club)}
	if club == nil {
		return detail
	}
	if club.President != nil {
		president := FromUser(club.President)
		detail.President = &president
	}
	for _, m := range club.Members {
		member := ClubMemberResponse{
			UserID:     m.UserID,
			MemberRole: m.MemberRole,
			JoinedAt:   m.JoinedAt,
		}
		if m.User != nil {
			member.FirstName = m.User.FirstName
			member.LastName = m.User.LastName
		}
		detail.Members = append(detail.Members, member)
	}
	return detail
}
