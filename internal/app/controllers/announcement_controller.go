package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/services"
	"github.com/kerem/clubsphere/internal/middleware"
	"github.com/kerem/clubsphere/internal/pkg/helpers"
)

// AnnouncementController handles announcement operations
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// GetAllAnnouncements handles listing visible announcements
// @Summary List announcements
// @Description Returns published announcements, pinned first. Scheduled announcements appear once their publish time passes.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param clubId query int false "Filter by club"
// @Param type query string false "Filter by announcement type"
// @Param pinned query bool false "Only pinned announcements"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.AnnouncementListResponse} "Announcements retrieved"
// @Router /announcements [get]
func (c *AnnouncementController) GetAllAnnouncements(ctx *gin.Context) {
	var filter dto.AnnouncementFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.announcementService.GetAllAnnouncements(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetAnnouncementByID handles retrieving a single announcement with comments
// @Summary Get announcement details
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=dto.AnnouncementDetailResponse} "Announcement retrieved"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [get]
func (c *AnnouncementController) GetAnnouncementByID(ctx *gin.Context) {
	announcementID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement ID")))
		return
	}

	resp, err := c.announcementService.GetAnnouncementByID(ctx.Request.Context(), announcementID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CreateAnnouncement handles publishing an announcement for a club
// @Summary Create an announcement
// @Description Creates an announcement. Allowed for administrators, the club president, and officer-tier members.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param request body dto.CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} dto.APIResponse{data=dto.AnnouncementResponse} "Announcement created"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to post for this club"
// @Router /clubs/{id}/announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	authorID, ok := middleware.CurrentUserID(ctx)
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

	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.announcementService.CreateAnnouncement(ctx.Request.Context(), clubID, authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateAnnouncement handles editing an announcement
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Announcement data"
// @Success 200 {object} dto.APIResponse{data=dto.AnnouncementResponse} "Announcement updated"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to moderate this announcement"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [put]
func (c *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	actorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	announcementID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement ID")))
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.announcementService.UpdateAnnouncement(ctx.Request.Context(), announcementID, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteAnnouncement handles removing an announcement
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.SuccessResponse "Announcement deleted"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to moderate this announcement"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	actorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	announcementID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement ID")))
		return
	}

	if err := c.announcementService.DeleteAnnouncement(ctx.Request.Context(), announcementID, actorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Announcement deleted successfully"})
}

// Like handles liking an announcement
// @Summary Like an announcement
// @Description Records the caller's like. Liking twice is a no-op.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.SuccessResponse "Liked"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id}/likes [post]
func (c *AnnouncementController) Like(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	announcementID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement ID")))
		return
	}

	if err := c.announcementService.Like(ctx.Request.Context(), announcementID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Announcement liked"})
}

// Unlike handles removing the caller's like
// @Summary Unlike an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.SuccessResponse "Unliked"
// @Router /announcements/{id}/likes [delete]
func (c *AnnouncementController) Unlike(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	announcementID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement ID")))
		return
	}

	if err := c.announcementService.Unlike(ctx.Request.Context(), announcementID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Announcement unliked"})
}

// AddComment handles commenting on an announcement
// @Summary Comment on an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param request body dto.CreateCommentRequest true "Comment data"
// @Success 201 {object} dto.APIResponse{data=dto.AnnouncementDetailResponse} "Comment added"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id}/comments [post]
func (c *AnnouncementController) AddComment(ctx *gin.Context) {
	authorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	announcementID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement ID")))
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.announcementService.AddComment(ctx.Request.Context(), announcementID, authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}
