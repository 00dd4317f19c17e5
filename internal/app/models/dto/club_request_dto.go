package dto

import (
	"time"

	"github.com/kerem/clubsphere/internal/app/models"
)

// --- Request DTOs ---

// CreateClubRequestRequest represents a club-creation request submission
type CreateClubRequestRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// ReviewClubRequestRequest represents an administrator's review decision
type ReviewClubRequestRequest struct {
	Status     models.RequestStatus `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	AdminNotes *string              `json:"adminNotes,omitempty"`
}

// ClubRequestFilterRequest represents request list filter parameters
type ClubRequestFilterRequest struct {
	Status   *string `form:"status,omitempty" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Page     int     `form:"page,default=1" binding:"min=1"`
	PageSize int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// --- Response DTOs ---

// ClubRequestResponse represents a club-creation request
type ClubRequestResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Status      models.RequestStatus `json:"status"`
	AdminNotes  *string              `json:"adminNotes,omitempty"`
	RequestedBy *UserResponse        `json:"requestedBy,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ClubRequestListResponse represents a paginated list of club requests
type ClubRequestListResponse struct {
	Requests []ClubRequestResponse `json:"requests"`
	PaginationInfo
}

// BulkApproveResponse reports the outcome of a bulk approval sweep over
// all pending requests
type BulkApproveResponse struct {
	Approved int `json:"approved"`
	Failed   int `json:"failed"`
}

// FromClubRequest converts a models.ClubRequest to a ClubRequestResponse
func FromClubRequest(request *models.ClubRequest) ClubRequestResponse {
	if request == nil {
		return ClubRequestResponse{}
	}
	resp := ClubRequestResponse{
		ID:          request.ID,
		Name:        request.Name,
		Description: request.Description,
		Category:    request.Category,
		Status:      request.Status,
		AdminNotes:  request.AdminNotes,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
	if request.RequestedBy != nil {
		requester := FromUser(request.RequestedBy)
		resp.RequestedBy = &requester
	}
	return resp
}

// FromClubRequests converts a slice of club requests
func FromClubRequests(requests []*models.ClubRequest) []ClubRequestResponse {
	result := make([]ClubRequestResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, FromClubRequest(request))
	}
	return result
}
