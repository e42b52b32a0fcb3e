package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/models/dto"
	"github.com/uzafar/campusdesk/internal/app/services"
	"github.com/uzafar/campusdesk/internal/middleware"
)

// CatalogController handles departments, instructors, courses and classes
type CatalogController struct {
	departmentService *services.DepartmentService
	instructorService *services.InstructorService
	courseService     *services.CourseService
	classService      *services.ClassService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	departmentService *services.DepartmentService,
	instructorService *services.InstructorService,
	courseService *services.CourseService,
	classService *services.ClassService,
) *CatalogController {
	return &CatalogController{
		departmentService: departmentService,
		instructorService: instructorService,
		courseService:     courseService,
		classService:      classService,
	}
}

// GetAllDepartments lists departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Department} "Departments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /departments [get]
func (c *CatalogController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments, "Departments retrieved"))
}

// GetDepartmentByID retrieves a department
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *CatalogController) GetDepartmentByID(ctx *gin.Context) {
	department, err := c.departmentService.GetDepartmentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department, "Department retrieved"))
}

// GetInstructorsByDepartment lists a department's instructors
// @Summary List instructors of a department
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Instructor} "Instructors"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id}/instructors [get]
func (c *CatalogController) GetInstructorsByDepartment(ctx *gin.Context) {
	instructors, err := c.instructorService.GetInstructorsByDepartment(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructors, "Instructors retrieved"))
}

// GetAllInstructors lists instructors
// @Summary List instructors
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Instructor} "Instructors"
// @Router /instructors [get]
func (c *CatalogController) GetAllInstructors(ctx *gin.Context) {
	instructors, err := c.instructorService.GetAllInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructors, "Instructors retrieved"))
}

// CreateCourse creates a catalog course
// @Summary Create a course
// @Description Creates a catalog course; prerequisites must reference existing courses
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid course data"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Router /courses [post]
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	course := &models.Course{
		Name:             req.Name,
		Code:             req.Code,
		CreditHours:      req.CreditHours,
		ExpectedSemester: req.ExpectedSemester,
		PreRequisites:    req.PreRequisites,
	}
	if err := c.courseService.CreateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course, "Course created"))
}

// GetAllCourses lists catalog courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses"
// @Router /courses [get]
func (c *CatalogController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, "Courses retrieved"))
}

// GetCourseByID retrieves a course
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CatalogController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Course retrieved"))
}

// UpdateCourse updates a course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course information"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid course data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CatalogController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	course := &models.Course{
		ID:               ctx.Param("id"),
		Name:             req.Name,
		Code:             req.Code,
		CreditHours:      req.CreditHours,
		ExpectedSemester: req.ExpectedSemester,
		PreRequisites:    req.PreRequisites,
	}
	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Course updated"))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse "Course deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CatalogController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Course deleted"))
}

// CreateClass creates a class cohort
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class information"
// @Success 201 {object} dto.APIResponse{data=models.Class} "Class created"
// @Failure 400 {object} dto.ErrorResponse "Invalid class data"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /classes [post]
func (c *CatalogController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	class := &models.Class{Name: req.Name, DepartmentID: req.DepartmentID}
	if err := c.classService.CreateClass(ctx, class); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(class, "Class created"))
}

// GetAllClasses lists classes
// @Summary List classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Class} "Classes"
// @Router /classes [get]
func (c *CatalogController) GetAllClasses(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(classes, "Classes retrieved"))
}

// GetClassByID retrieves a class
// @Summary Get class by ID
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} dto.APIResponse{data=models.Class} "Class"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id} [get]
func (c *CatalogController) GetClassByID(ctx *gin.Context) {
	class, err := c.classService.GetClassByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(class, "Class retrieved"))
}
