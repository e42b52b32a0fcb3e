package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzafar/campusdesk/internal/app/models/dto"
	"github.com/uzafar/campusdesk/internal/app/services"
	"github.com/uzafar/campusdesk/internal/middleware"
)

// ResultsController handles semester compilation and finalization
type ResultsController struct {
	resultsService *services.ResultsService
}

// NewResultsController creates a new ResultsController
func NewResultsController(resultsService *services.ResultsService) *ResultsController {
	return &ResultsController{resultsService: resultsService}
}

// GetSemester compiles a student's current semester
// @Summary Get current semester sheet
// @Description Joins the student's current offerings with courses and grades and computes the GPA
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Semester sheet"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/semester [get]
func (c *ResultsController) GetSemester(ctx *gin.Context) {
	sheet, err := c.resultsService.CompileSemester(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"results": sheet.Results,
		"gpa":     sheet.GPA.String(),
	}, "Semester compiled"))
}

// FinalizeSemester closes out a student's current semester
// @Summary Finalize the current semester
// @Description Requires the operator confirmation code; completes the current courses, appends the GPA to the results history and retires unreferenced offerings
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.FinalizeSemesterRequest true "Confirmation"
// @Success 200 {object} dto.APIResponse{data=models.SemesterResult} "Semester finalized"
// @Failure 400 {object} dto.ErrorResponse "Wrong code, missing grades or no current courses"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Record was modified concurrently"
// @Router /students/{id}/semester/finalize [post]
func (c *ResultsController) FinalizeSemester(ctx *gin.Context) {
	var req dto.FinalizeSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	result, err := c.resultsService.FinalizeSemester(ctx, ctx.Param("id"), req.ConfirmationCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Semester finalized"))
}

// GetHistory returns a student's results history
// @Summary Get results history
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.SemesterResult} "Results history"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/results [get]
func (c *ResultsController) GetHistory(ctx *gin.Context) {
	history, err := c.resultsService.History(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(history, "Results history retrieved"))
}
