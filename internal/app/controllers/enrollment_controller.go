package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzafar/campusdesk/internal/app/models/dto"
	"github.com/uzafar/campusdesk/internal/app/services"
	"github.com/uzafar/campusdesk/internal/middleware"
)

// EnrollmentController handles the enrollment and withdrawal workflows of a
// student
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
	withdrawalService *services.WithdrawalService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(
	enrollmentService *services.EnrollmentService,
	withdrawalService *services.WithdrawalService,
) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		withdrawalService: withdrawalService,
	}
}

// Apply applies a student for an offering
// @Summary Apply for an offering
// @Description Puts an offering into the student's applied set; re-applying for a held offering is a no-op
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.EnrollmentRequest true "Offering"
// @Success 200 {object} dto.APIResponse "Application recorded"
// @Failure 404 {object} dto.ErrorResponse "Student or offering not found"
// @Router /students/{id}/enrollments [post]
func (c *EnrollmentController) Apply(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.enrollmentService.Apply(ctx, ctx.Param("id"), req.OfferingID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Application recorded"))
}

// ListApplications lists a student's pending applications
// @Summary List pending applications
// @Description Lists the student's applied offerings with their prerequisite status
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Applications"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/enrollments [get]
func (c *EnrollmentController) ListApplications(ctx *gin.Context) {
	applications, err := c.enrollmentService.ListApplications(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications, "Applications retrieved"))
}

// Approve approves an application
// @Summary Approve an application
// @Description Moves the offering from the applied set to the current set; prerequisites must be satisfied
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.EnrollmentRequest true "Offering"
// @Success 200 {object} dto.APIResponse "Enrollment approved"
// @Failure 400 {object} dto.ErrorResponse "Not applied or prerequisites not met"
// @Failure 404 {object} dto.ErrorResponse "Student or offering not found"
// @Router /students/{id}/enrollments/approve [post]
func (c *EnrollmentController) Approve(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.enrollmentService.Approve(ctx, ctx.Param("id"), req.OfferingID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Enrollment approved"))
}

// Disapprove rejects an application whose prerequisites are not satisfied
// @Summary Disapprove an application
// @Description Removes the offering from the applied set; only permitted while prerequisites are unsatisfied
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.EnrollmentRequest true "Offering"
// @Success 200 {object} dto.APIResponse "Enrollment disapproved"
// @Failure 400 {object} dto.ErrorResponse "Not applied or prerequisites are satisfied"
// @Failure 404 {object} dto.ErrorResponse "Student or offering not found"
// @Router /students/{id}/enrollments/disapprove [post]
func (c *EnrollmentController) Disapprove(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.enrollmentService.Disapprove(ctx, ctx.Param("id"), req.OfferingID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Enrollment disapproved"))
}

// ListCurrent lists a student's in-progress offerings
// @Summary List current courses
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Current offerings"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/current [get]
func (c *EnrollmentController) ListCurrent(ctx *gin.Context) {
	offerings, err := c.enrollmentService.ListCurrent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(offerings, "Current offerings retrieved"))
}

// RequestWithdrawal flags an in-progress offering for withdrawal
// @Summary Request a withdrawal
// @Description Flags the offering for withdrawal; it stays in the current set until the withdrawal is confirmed
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.EnrollmentRequest true "Offering"
// @Success 200 {object} dto.APIResponse "Withdrawal requested"
// @Failure 400 {object} dto.ErrorResponse "Offering is not in progress"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/withdrawals [post]
func (c *EnrollmentController) RequestWithdrawal(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.withdrawalService.Request(ctx, ctx.Param("id"), req.OfferingID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Withdrawal requested"))
}

// ListWithdrawals lists a student's pending withdrawal requests
// @Summary List withdrawal requests
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Withdrawal requests"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/withdrawals [get]
func (c *EnrollmentController) ListWithdrawals(ctx *gin.Context) {
	offeringIDs, err := c.withdrawalService.ListRequested(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(offeringIDs, "Withdrawal requests retrieved"))
}

// CancelWithdrawal clears a pending withdrawal flag
// @Summary Cancel a withdrawal request
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.EnrollmentRequest true "Offering"
// @Success 200 {object} dto.APIResponse "Withdrawal cancelled"
// @Failure 400 {object} dto.ErrorResponse "No withdrawal request exists"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/withdrawals/cancel [post]
func (c *EnrollmentController) CancelWithdrawal(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.withdrawalService.Cancel(ctx, ctx.Param("id"), req.OfferingID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Withdrawal cancelled"))
}

// ConfirmWithdrawal finalizes a withdrawal and scrubs shared records
// @Summary Confirm a withdrawal
// @Description Drops the offering from both the current and withdraw sets and removes the student's entries from the offering's marks and attendance
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.EnrollmentRequest true "Offering"
// @Success 200 {object} dto.APIResponse "Withdrawal confirmed"
// @Failure 400 {object} dto.ErrorResponse "No withdrawal request exists"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/withdrawals/confirm [post]
func (c *EnrollmentController) ConfirmWithdrawal(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.withdrawalService.Confirm(ctx, ctx.Param("id"), req.OfferingID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Withdrawal confirmed"))
}
