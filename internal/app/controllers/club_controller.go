package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/services"
	"github.com/kerem/clubsphere/internal/middleware"
	"github.com/kerem/clubsphere/internal/pkg/helpers"
)

// ClubController handles club operations
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// GetAllClubs handles listing the clubs of the caller's university
// @Summary List clubs
// @Description Returns the clubs of the caller's university, optionally filtered
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param search query string false "Search by name"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ClubListResponse} "Clubs retrieved"
// @Router /clubs [get]
func (c *ClubController) GetAllClubs(ctx *gin.Context) {
	universityID, ok := middleware.CurrentUniversityID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var filter dto.ClubFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.clubService.GetAllClubs(ctx.Request.Context(), universityID, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetClubByID handles retrieving a single club with its members
// @Summary Get club details
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClubDetailResponse} "Club retrieved"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id} [get]
func (c *ClubController) GetClubByID(ctx *gin.Context) {
	clubID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid club ID")))
		return
	}

	resp, err := c.clubService.GetClubByID(ctx.Request.Context(), clubID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateClub handles updating club details
// @Summary Update a club
// @Description Updates club details. Allowed for administrators and the club president.
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param request body dto.UpdateClubRequest true "Club data"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse} "Club updated"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to manage this club"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id} [put]
func (c *ClubController) UpdateClub(ctx *gin.Context) {
	actorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	clubID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid club ID")))
		return
	}

	var req dto.UpdateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.clubService.UpdateClub(ctx.Request.Context(), clubID, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// JoinClub handles joining a club
// @Summary Join a club
// @Description Adds the caller to the club as a regular member
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.SuccessResponse "Joined"
// @Failure 403 {object} dto.ErrorResponse "Different university or private club"
// @Failure 409 {object} dto.ErrorResponse "Already a member"
// @Router /clubs/{id}/members [post]
func (c *ClubController) JoinClub(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	clubID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid club ID")))
		return
	}

	if err := c.clubService.JoinClub(ctx.Request.Context(), clubID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Joined club successfully"})
}

// LeaveClub handles leaving a club
// @Summary Leave a club
// @Description Removes the caller from the club. Presidents must transfer the role first.
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.SuccessResponse "Left"
// @Failure 409 {object} dto.ErrorResponse "Not a member or president cannot leave"
// @Router /clubs/{id}/members [delete]
func (c *ClubController) LeaveClub(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	clubID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid club ID")))
		return
	}

	if err := c.clubService.LeaveClub(ctx.Request.Context(), clubID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Left club successfully"})
}

// UpdateMemberRole handles changing a member's role in a club
// @Summary Update a member's role
// @Description Changes a member's role. Allowed for administrators and the club president. The President role itself cannot be assigned this way.
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param memberId path int true "Member user ID"
// @Param request body dto.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} dto.SuccessResponse "Role updated"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to manage this club"
// @Failure 409 {object} dto.ErrorResponse "User is not a member"
// @Router /clubs/{id}/members/{memberId}/role [put]
func (c *ClubController) UpdateMemberRole(ctx *gin.Context) {
	actorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	clubID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid club ID")))
		return
	}

	memberID, err := helpers.ParseIDParam(ctx, "memberId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid member ID")))
		return
	}

	var req dto.UpdateMemberRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	err = c.clubService.UpdateMemberRole(ctx.Request.Context(), clubID, actorID, memberID, req.MemberRole)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Member role updated successfully"})
}
