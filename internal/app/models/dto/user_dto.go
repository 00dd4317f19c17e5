package dto

import "github.com/kerem/clubsphere/internal/app/models"

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `json:"role"`
	UniversityID int64  `json:"universityId"`
}

// UserProfileResponse represents a user's full profile view, including the
// derived membership collections
type UserProfileResponse struct {
	UserResponse
	University *UniversityResponse `json:"university,omitempty"`
	MyClubs    []ClubResponse      `json:"myClubs"`
	MyEvents   []EventResponse     `json:"myEvents"`
}

// UniversityResponse represents basic university information
type UniversityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	PaginationInfo
}

// UserFilterRequest represents user list filter parameters
type UserFilterRequest struct {
	Search   *string `form:"search,omitempty"`
	Role     *string `form:"role,omitempty"`
	Page     int     `form:"page,default=1" binding:"min=1"`
	PageSize int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         string(user.Role),
		UniversityID: user.UniversityID,
	}
}

// FromUniversity converts a models.University to a UniversityResponse
func FromUniversity(u *models.University) *UniversityResponse {
	if u == nil {
		return nil
	}
	return &UniversityResponse{ID: u.ID, Name: u.Name}
}
