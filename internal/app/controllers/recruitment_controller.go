package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/services"
	"github.com/kerem/clubsphere/internal/middleware"
	"github.com/kerem/clubsphere/internal/pkg/helpers"
)

// RecruitmentController handles team recruitment posts and applications
type RecruitmentController struct {
	recruitmentService services.RecruitmentService
}

// NewRecruitmentController creates a new RecruitmentController
func NewRecruitmentController(recruitmentService services.RecruitmentService) *RecruitmentController {
	return &RecruitmentController{recruitmentService: recruitmentService}
}

// CreatePost handles creating a recruitment post under an event
// @Summary Create a recruitment post
// @Description Creates a team recruitment post for an event. The poster must be registered for the event.
// @Tags recruitment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.CreateRecruitmentPostRequest true "Post data"
// @Success 201 {object} dto.APIResponse{data=dto.RecruitmentPostResponse} "Post created"
// @Failure 409 {object} dto.ErrorResponse "Poster is not registered for the event"
// @Router /events/{id}/recruitment [post]
func (c *RecruitmentController) CreatePost(ctx *gin.Context) {
	posterID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	eventID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")))
		return
	}

	var req dto.CreateRecruitmentPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.recruitmentService.CreatePost(ctx.Request.Context(), eventID, posterID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetPostsByEvent handles listing recruitment posts for an event
// @Summary List recruitment posts for an event
// @Tags recruitment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.RecruitmentPostListResponse} "Posts retrieved"
// @Router /events/{id}/recruitment [get]
func (c *RecruitmentController) GetPostsByEvent(ctx *gin.Context) {
	eventID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")))
		return
	}

	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.recruitmentService.GetPostsByEvent(ctx.Request.Context(), eventID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetPostByID handles retrieving a recruitment post with its applications
// @Summary Get recruitment post details
// @Tags recruitment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.RecruitmentPostDetailResponse} "Post retrieved"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /recruitment/{id} [get]
func (c *RecruitmentController) GetPostByID(ctx *gin.Context) {
	postID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")))
		return
	}

	resp, err := c.recruitmentService.GetPostByID(ctx.Request.Context(), postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Apply handles applying to a recruitment post
// @Summary Apply to a recruitment post
// @Description Submits an application. Posters cannot apply to their own post and each user may apply once.
// @Tags recruitment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.ApplyToPostRequest true "Application data"
// @Success 201 {object} dto.APIResponse{data=dto.RecruitmentPostDetailResponse} "Application submitted"
// @Failure 409 {object} dto.ErrorResponse "Own post or already applied"
// @Router /recruitment/{id}/applications [post]
func (c *RecruitmentController) Apply(ctx *gin.Context) {
	applicantID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	postID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")))
		return
	}

	var req dto.ApplyToPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.recruitmentService.Apply(ctx.Request.Context(), postID, applicantID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// ReviewApplication handles accepting or rejecting an application
// @Summary Review an application
// @Description Accepts or rejects an application. Only the post author may review.
// @Tags recruitment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.ReviewApplicationRequest true "Review decision"
// @Success 200 {object} dto.SuccessResponse "Application reviewed"
// @Failure 403 {object} dto.ErrorResponse "Only the post author may review"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /recruitment/applications/{id} [patch]
func (c *RecruitmentController) ReviewApplication(ctx *gin.Context) {
	actorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	applicationID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application ID")))
		return
	}

	var req dto.ReviewApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	if err := c.recruitmentService.ReviewApplication(ctx.Request.Context(), applicationID, actorID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Application reviewed successfully"})
}
