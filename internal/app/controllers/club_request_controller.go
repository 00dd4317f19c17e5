package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/services"
	"github.com/kerem/clubsphere/internal/middleware"
	"github.com/kerem/clubsphere/internal/pkg/helpers"
)

// ClubRequestController handles the club-creation request workflow
type ClubRequestController struct {
	requestService services.ClubRequestService
}

// NewClubRequestController creates a new ClubRequestController
func NewClubRequestController(requestService services.ClubRequestService) *ClubRequestController {
	return &ClubRequestController{requestService: requestService}
}

// CreateRequest handles submitting a club-creation request
// @Summary Submit a club-creation request
// @Description Submits a request to found a new club. The request starts in PENDING state.
// @Tags club-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClubRequestRequest true "Request data"
// @Success 201 {object} dto.APIResponse{data=dto.ClubRequestResponse} "Request submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /club-requests [post]
func (c *ClubRequestController) CreateRequest(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateClubRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.requestService.CreateRequest(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetAllRequests handles listing club-creation requests (administrators only)
// @Summary List club-creation requests
// @Tags club-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ClubRequestListResponse} "Requests retrieved"
// @Failure 403 {object} dto.ErrorResponse "Administrators only"
// @Router /club-requests [get]
func (c *ClubRequestController) GetAllRequests(ctx *gin.Context) {
	var filter dto.ClubRequestFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.requestService.GetAllRequests(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetRequestByID handles retrieving a single club-creation request
// @Summary Get a club-creation request
// @Tags club-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClubRequestResponse} "Request retrieved"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /club-requests/{id} [get]
func (c *ClubRequestController) GetRequestByID(ctx *gin.Context) {
	requestID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request ID")))
		return
	}

	resp, err := c.requestService.GetRequestByID(ctx.Request.Context(), requestID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ReviewRequest handles approving or rejecting a pending request
// @Summary Review a club-creation request
// @Description Approves or rejects a pending request. Approval creates the club and seats the requester as president. Reviewed requests are final.
// @Tags club-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.ReviewClubRequestRequest true "Review decision"
// @Success 200 {object} dto.APIResponse{data=dto.ClubRequestResponse} "Request reviewed"
// @Failure 403 {object} dto.ErrorResponse "Administrators only"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request already reviewed"
// @Router /club-requests/{id}/review [patch]
func (c *ClubRequestController) ReviewRequest(ctx *gin.Context) {
	actorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	requestID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request ID")))
		return
	}

	var req dto.ReviewClubRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.requestService.ReviewRequest(ctx.Request.Context(), requestID, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// BulkApprove handles approving every pending request at once
// @Summary Bulk approve pending requests
// @Description Approves all currently pending requests and reports aggregate counts. Requests that fail to approve are counted, not retried.
// @Tags club-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.BulkApproveResponse} "Bulk approval completed"
// @Failure 403 {object} dto.ErrorResponse "Administrators only"
// @Router /club-requests/bulk-approve [post]
func (c *ClubRequestController) BulkApprove(ctx *gin.Context) {
	actorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	resp, err := c.requestService.BulkApprove(ctx.Request.Context(), actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
