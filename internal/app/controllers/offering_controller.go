package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/models/dto"
	"github.com/uzafar/campusdesk/internal/app/services"
	"github.com/uzafar/campusdesk/internal/middleware"
)

// OfferingController handles course assignment operations
type OfferingController struct {
	offeringService *services.OfferingService
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(offeringService *services.OfferingService) *OfferingController {
	return &OfferingController{offeringService: offeringService}
}

// AssignCourse assigns a course to an instructor and class
// @Summary Assign a course
// @Description Creates an offering from a course, instructor and class; the same combination cannot be assigned twice
// @Tags offerings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignCourseRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=models.Offering} "Course assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment data"
// @Failure 404 {object} dto.ErrorResponse "Course, instructor or class not found"
// @Failure 409 {object} dto.ErrorResponse "Course already assigned to this instructor and class"
// @Router /offerings [post]
func (c *OfferingController) AssignCourse(ctx *gin.Context) {
	var req dto.AssignCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	offering := &models.Offering{
		CourseID:     req.CourseID,
		InstructorID: req.InstructorID,
		ClassID:      req.ClassID,
	}
	if err := c.offeringService.AssignCourse(ctx, offering); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(offering, "Course assigned"))
}

// GetAllOfferings lists offerings
// @Summary List offerings
// @Description Lists offerings, optionally filtered by instructor or class
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param instructorId query string false "Filter by instructor ID"
// @Param classId query string false "Filter by class ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Offering} "Offerings"
// @Failure 404 {object} dto.ErrorResponse "Instructor or class not found"
// @Router /offerings [get]
func (c *OfferingController) GetAllOfferings(ctx *gin.Context) {
	var offerings []*models.Offering
	var err error

	switch {
	case ctx.Query("instructorId") != "":
		offerings, err = c.offeringService.GetOfferingsByInstructor(ctx, ctx.Query("instructorId"))
	case ctx.Query("classId") != "":
		offerings, err = c.offeringService.GetOfferingsByClass(ctx, ctx.Query("classId"))
	default:
		offerings, err = c.offeringService.GetAllOfferings(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(offerings, "Offerings retrieved"))
}

// GetOfferingByID retrieves an offering
// @Summary Get offering by ID
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} dto.APIResponse{data=models.Offering} "Offering"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Router /offerings/{id} [get]
func (c *OfferingController) GetOfferingByID(ctx *gin.Context) {
	offering, err := c.offeringService.GetOfferingByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(offering, "Offering retrieved"))
}

// DeleteOffering removes an offering
// @Summary Delete an offering
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} dto.APIResponse "Offering deleted"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Router /offerings/{id} [delete]
func (c *OfferingController) DeleteOffering(ctx *gin.Context) {
	if err := c.offeringService.DeleteOffering(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Offering deleted"))
}
