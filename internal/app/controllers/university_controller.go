package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/services"
	"github.com/kerem/clubsphere/internal/middleware"
	"github.com/kerem/clubsphere/internal/pkg/helpers"
)

// UniversityController handles university lookups
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{universityService: universityService}
}

// GetAllUniversities handles listing universities
// @Summary List universities
// @Description Returns all universities. Used during registration to pick a university.
// @Tags universities
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.UniversityResponse} "Universities retrieved"
// @Router /universities [get]
func (c *UniversityController) GetAllUniversities(ctx *gin.Context) {
	resp, err := c.universityService.GetAllUniversities(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetUniversityByID handles retrieving a single university
// @Summary Get a university
// @Tags universities
// @Produce json
// @Param id path int true "University ID"
// @Success 200 {object} dto.APIResponse{data=dto.UniversityResponse} "University retrieved"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id} [get]
func (c *UniversityController) GetUniversityByID(ctx *gin.Context) {
	universityID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID")))
		return
	}

	resp, err := c.universityService.GetUniversityByID(ctx.Request.Context(), universityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
