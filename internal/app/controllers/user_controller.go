package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/services"
	"github.com/kerem/clubsphere/internal/middleware"
	"github.com/kerem/clubsphere/internal/pkg/helpers"
)

// UserController handles user profile operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetMyProfile handles retrieving the caller's profile
// @Summary Get own profile
// @Description Returns the caller's profile with the derived "my clubs" and "my events" collections
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserProfileResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (c *UserController) GetMyProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	resp, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateMyProfile handles updating the caller's profile
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile data"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Profile updated"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /users/me [put]
func (c *UserController) UpdateMyProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.userService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ChangePassword handles changing the caller's password
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Password data"
// @Success 200 {object} dto.SuccessResponse "Password changed"
// @Failure 400 {object} dto.ErrorResponse "Current password incorrect"
// @Router /users/me/password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	if err := c.userService.ChangePassword(ctx.Request.Context(), userID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Password changed successfully"})
}

// GetAllUsers handles listing users (administrators only)
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by name or email"
// @Param role query string false "Filter by role"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse} "Users retrieved"
// @Failure 403 {object} dto.ErrorResponse "Administrators only"
// @Router /admin/users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	filter := &dto.UserFilterRequest{Page: page, PageSize: pageSize}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}
	if role := ctx.Query("role"); role != "" {
		filter.Role = &role
	}

	resp, err := c.userService.GetAllUsers(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// SetBlocked handles blocking or unblocking a user (administrators only)
// @Summary Block or unblock a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body object{blocked=bool} true "Blocked flag"
// @Success 200 {object} dto.SuccessResponse "Updated"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id}/blocked [put]
func (c *UserController) SetBlocked(ctx *gin.Context) {
	userID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")))
		return
	}

	var req struct {
		Blocked bool `json:"blocked"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	if err := c.userService.SetBlocked(ctx.Request.Context(), userID, req.Blocked); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "User updated successfully"})
}

// SetRole handles changing a user's platform role (administrators only)
// @Summary Change a user's role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body object{role=string} true "New role"
// @Success 200 {object} dto.SuccessResponse "Role updated"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id}/role [put]
func (c *UserController) SetRole(ctx *gin.Context) {
	userID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")))
		return
	}

	var req struct {
		Role models.RoleType `json:"role" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	if err := c.userService.SetRole(ctx.Request.Context(), userID, req.Role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "User role updated successfully"})
}
