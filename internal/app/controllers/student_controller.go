package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/models/dto"
	"github.com/uzafar/campusdesk/internal/app/services"
	"github.com/uzafar/campusdesk/internal/middleware"
)

// StudentController handles student record operations
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// RegisterStudent registers a student
// @Summary Register a student
// @Description Creates a student record and adds it to the class roster
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid student data"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 409 {object} dto.ErrorResponse "Roll number already exists"
// @Router /students [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	student := &models.Student{
		Name:       req.Name,
		Email:      req.Email,
		RollNumber: req.RollNumber,
		ClassID:    req.ClassID,
	}
	if err := c.studentService.RegisterStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student registered"))
}

// GetAllStudents lists students
// @Summary List students
// @Description Lists all students, optionally filtered by class or roll number
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param classId query string false "Filter by class ID"
// @Param rollNumber query string false "Look up one student by roll number"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students"
// @Failure 404 {object} dto.ErrorResponse "Class or student not found"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	if rollNumber := ctx.Query("rollNumber"); rollNumber != "" {
		student, err := c.studentService.GetStudentByRollNumber(ctx, rollNumber)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse([]*models.Student{student}, "Students retrieved"))
		return
	}

	if classID := ctx.Query("classId"); classID != "" {
		students, err := c.studentService.GetStudentsByClass(ctx, classID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, "Students retrieved"))
		return
	}

	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, "Students retrieved"))
}

// GetStudentByID retrieves a student
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student retrieved"))
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Removes a student record and its class roster entry
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student deleted"))
}
