package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/models/dto"
	"github.com/uzafar/campusdesk/internal/app/services"
	"github.com/uzafar/campusdesk/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates a user
// @Summary Log in
// @Description Authenticates by email and password and returns an access token with the account's derived role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Logged in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	result, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LoginResponse{
		UserID:    result.UserID,
		Email:     result.Email,
		Name:      result.Name,
		Role:      string(result.Role),
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	}, "Logged in successfully"))
}

// RegisterDepartment creates a department account
// @Summary Register a department account
// @Description Creates a department together with its login account
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterDepartmentRequest true "Department account information"
// @Success 201 {object} dto.APIResponse "Department account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Email or department already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register/department [post]
func (c *AuthController) RegisterDepartment(ctx *gin.Context) {
	var req dto.RegisterDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	department := &models.Department{Name: req.Name, Abbreviation: req.Abbreviation}
	user, err := c.authService.RegisterDepartment(ctx, req.Email, req.Password, department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"id": user.ID}, "Department account created"))
}

// RegisterInstructor creates an instructor account
// @Summary Register an instructor account
// @Description Creates an instructor under a department together with its login account
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterInstructorRequest true "Instructor account information"
// @Success 201 {object} dto.APIResponse "Instructor account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register/instructor [post]
func (c *AuthController) RegisterInstructor(ctx *gin.Context) {
	var req dto.RegisterInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	instructor := &models.Instructor{Name: req.Name, DepartmentID: req.DepartmentID}
	user, err := c.authService.RegisterInstructor(ctx, req.Email, req.Password, instructor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"id": user.ID}, "Instructor account created"))
}

// Profile returns the authenticated account
// @Summary Get own profile
// @Description Returns the authenticated account with its derived role
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	user, role, err := c.authService.Profile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ProfileResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   string(role),
	}, "Profile retrieved"))
}
