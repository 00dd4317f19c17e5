package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/services"
	"github.com/kerem/clubsphere/internal/middleware"
	"github.com/kerem/clubsphere/internal/pkg/helpers"
)

// EventController handles event operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// GetAllEvents handles listing events
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param clubId query int false "Filter by club"
// @Param upcoming query bool false "Only events that have not ended"
// @Param search query string false "Search by title"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events retrieved"
// @Router /events [get]
func (c *EventController) GetAllEvents(ctx *gin.Context) {
	var filter dto.EventFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.eventService.GetAllEvents(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetEventByID handles retrieving a single event
// @Summary Get event details
// @Description Returns event details with attendees and, for an authenticated caller, an advisory registration decision
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventDetailResponse} "Event retrieved"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	eventID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")))
		return
	}

	var viewerID *int64
	if userID, ok := middleware.CurrentUserID(ctx); ok {
		viewerID = &userID
	}

	resp, err := c.eventService.GetEventByID(ctx.Request.Context(), eventID, viewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CreateEvent handles creating an event under a club
// @Summary Create an event
// @Description Creates an event. Allowed for administrators and the club president.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param request body dto.CreateEventRequest true "Event data"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to manage this club"
// @Router /clubs/{id}/events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
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

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.eventService.CreateEvent(ctx.Request.Context(), clubID, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateEvent handles updating an event
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Event data"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event updated"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to manage this event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	actorID, ok := middleware.CurrentUserID(ctx)
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

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.eventService.UpdateEvent(ctx.Request.Context(), eventID, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteEvent handles deleting an event
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.SuccessResponse "Event deleted"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to manage this event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	actorID, ok := middleware.CurrentUserID(ctx)
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

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), eventID, actorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Event deleted successfully"})
}

// Register handles registering the caller for an event
// @Summary Register for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.SuccessResponse "Registered"
// @Failure 403 {object} dto.ErrorResponse "University-exclusive event"
// @Failure 409 {object} dto.ErrorResponse "Full, closed, ended, or already registered"
// @Router /events/{id}/attendees [post]
func (c *EventController) Register(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
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

	if err := c.eventService.Register(ctx.Request.Context(), eventID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Registered for event successfully"})
}

// Unregister handles cancelling the caller's event registration
// @Summary Unregister from an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.SuccessResponse "Unregistered"
// @Failure 409 {object} dto.ErrorResponse "Not registered or event ended"
// @Router /events/{id}/attendees [delete]
func (c *EventController) Unregister(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
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

	if err := c.eventService.Unregister(ctx.Request.Context(), eventID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Unregistered from event successfully"})
}
