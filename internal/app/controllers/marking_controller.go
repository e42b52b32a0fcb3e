package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/models/dto"
	"github.com/uzafar/campusdesk/internal/app/services"
	"github.com/uzafar/campusdesk/internal/middleware"
)

// MarkingController handles grading criteria, marks and attendance of an
// offering
type MarkingController struct {
	markingService    *services.MarkingService
	attendanceService *services.AttendanceService
}

// NewMarkingController creates a new MarkingController
func NewMarkingController(
	markingService *services.MarkingService,
	attendanceService *services.AttendanceService,
) *MarkingController {
	return &MarkingController{
		markingService:    markingService,
		attendanceService: attendanceService,
	}
}

// GetMarks retrieves the marks record of an offering
// @Summary Get marks record
// @Description Returns the offering's grading criteria and all student marks
// @Tags marks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} dto.APIResponse{data=models.MarksRecord} "Marks record"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Router /offerings/{id}/marks [get]
func (c *MarkingController) GetMarks(ctx *gin.Context) {
	record, err := c.markingService.GetRecord(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record, "Marks record retrieved"))
}

// AddCriterion defines a grading criterion
// @Summary Add a grading criterion
// @Description Adds an assessment with weightage and total marks; combined weightage may not exceed 100
// @Tags marks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body dto.CriterionRequest true "Criterion"
// @Success 201 {object} dto.APIResponse "Criterion added"
// @Failure 400 {object} dto.ErrorResponse "Invalid criterion or weightage exceeded"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment already defined"
// @Router /offerings/{id}/criteria [post]
func (c *MarkingController) AddCriterion(ctx *gin.Context) {
	var req dto.CriterionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	criterion := models.Criterion{
		Assessment: req.Assessment,
		Weightage:  req.Weightage,
		TotalMarks: req.TotalMarks,
	}
	if err := c.markingService.AddCriterion(ctx, ctx.Param("id"), criterion); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(criterion, "Criterion added"))
}

// EditCriterion updates a grading criterion
// @Summary Edit a grading criterion
// @Description Updates an assessment; renaming migrates every student's stored score
// @Tags marks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param assessment path string true "Assessment name"
// @Param request body dto.CriterionRequest true "Criterion"
// @Success 200 {object} dto.APIResponse "Criterion updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid criterion or weightage exceeded"
// @Failure 404 {object} dto.ErrorResponse "Offering or assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment name already taken"
// @Router /offerings/{id}/criteria/{assessment} [put]
func (c *MarkingController) EditCriterion(ctx *gin.Context) {
	var req dto.CriterionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	criterion := models.Criterion{
		Assessment: req.Assessment,
		Weightage:  req.Weightage,
		TotalMarks: req.TotalMarks,
	}
	err := c.markingService.EditCriterion(ctx, ctx.Param("id"), ctx.Param("assessment"), criterion)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(criterion, "Criterion updated"))
}

// DeleteCriterion removes a grading criterion
// @Summary Delete a grading criterion
// @Description Removes an assessment and every student's score for it
// @Tags marks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param assessment path string true "Assessment name"
// @Success 200 {object} dto.APIResponse "Criterion deleted"
// @Failure 404 {object} dto.ErrorResponse "Offering or assessment not found"
// @Router /offerings/{id}/criteria/{assessment} [delete]
func (c *MarkingController) DeleteCriterion(ctx *gin.Context) {
	err := c.markingService.DeleteCriterion(ctx, ctx.Param("id"), ctx.Param("assessment"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Criterion deleted"))
}

// SaveMarks stores a student's raw scores
// @Summary Save student marks
// @Description Stores raw scores keyed by assessment name; every score must target a defined assessment
// @Tags marks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body dto.SaveMarksRequest true "Scores"
// @Success 200 {object} dto.APIResponse "Marks saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid scores"
// @Failure 404 {object} dto.ErrorResponse "Offering, student or assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Record was modified concurrently"
// @Router /offerings/{id}/marks [post]
func (c *MarkingController) SaveMarks(ctx *gin.Context) {
	var req dto.SaveMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	err := c.markingService.SaveMarks(ctx, ctx.Param("id"), req.StudentID, req.Marks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Marks saved"))
}

// AssignGrade sets a student's letter grade
// @Summary Assign a letter grade
// @Tags marks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body dto.AssignGradeRequest true "Grade"
// @Success 200 {object} dto.APIResponse "Grade assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid letter grade"
// @Failure 404 {object} dto.ErrorResponse "Offering or student not found"
// @Router /offerings/{id}/grade [post]
func (c *MarkingController) AssignGrade(ctx *gin.Context) {
	var req dto.AssignGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	err := c.markingService.AssignGrade(ctx, ctx.Param("id"), req.StudentID, models.Grade(req.Grade))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Grade assigned"))
}

// GetAttendance retrieves the attendance record of an offering
// @Summary Get attendance record
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceRecord} "Attendance record"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Router /offerings/{id}/attendance [get]
func (c *MarkingController) GetAttendance(ctx *gin.Context) {
	record, err := c.attendanceService.GetRecord(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record, "Attendance record retrieved"))
}

// GetAttendanceSummary reports per-student presence counts
// @Summary Get attendance summary
// @Description Returns present/total session counts per student across the offering's recorded sessions
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} dto.APIResponse "Attendance summary"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Router /offerings/{id}/attendance/summary [get]
func (c *MarkingController) GetAttendanceSummary(ctx *gin.Context) {
	summaries, err := c.attendanceService.Summary(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries, "Attendance summary retrieved"))
}

// RecordAttendanceSession records one session's attendance
// @Summary Record an attendance session
// @Description Appends one session with present/absent flags; only one session per date
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body dto.AttendanceSessionRequest true "Session"
// @Success 201 {object} dto.APIResponse "Session recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid session date"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 409 {object} dto.ErrorResponse "Session already exists for this date"
// @Router /offerings/{id}/attendance [post]
func (c *MarkingController) RecordAttendanceSession(ctx *gin.Context) {
	var req dto.AttendanceSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	err := c.attendanceService.RecordSession(ctx, ctx.Param("id"), req.Date, req.Records)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(nil, "Session recorded"))
}

// EditAttendanceSession replaces one session's attendance
// @Summary Edit an attendance session
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body dto.AttendanceSessionRequest true "Session"
// @Success 200 {object} dto.APIResponse "Session updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid session date"
// @Failure 404 {object} dto.ErrorResponse "Offering or session not found"
// @Router /offerings/{id}/attendance [put]
func (c *MarkingController) EditAttendanceSession(ctx *gin.Context) {
	var req dto.AttendanceSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	err := c.attendanceService.EditSession(ctx, ctx.Param("id"), req.Date, req.Records)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Session updated"))
}
