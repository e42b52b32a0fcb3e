package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzafar/campusdesk/internal/app/models/dto"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call it
// for every error coming out of the service layer.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	// Missing resources
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrInstructorNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrClassNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrOfferingNotFound,
		apperrors.ErrMarksNotFound,
		apperrors.ErrAttendanceNotFound,
		apperrors.ErrAssessmentNotFound,
		apperrors.ErrSessionNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	// Duplicates
	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrDepartmentAlreadyExists,
		apperrors.ErrCourseAlreadyExists,
		apperrors.ErrRollNumberExists,
		apperrors.ErrDuplicateAssignment,
		apperrors.ErrDuplicateAssessment,
		apperrors.ErrDuplicateSessionDate):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())

	// Workflow rule violations
	case apperrors.Is(err, apperrors.ErrNotEnrolled,
		apperrors.ErrNotCurrent,
		apperrors.ErrPrerequisitesNotMet,
		apperrors.ErrPrerequisitesSatisfied,
		apperrors.ErrWithdrawalNotRequested,
		apperrors.ErrWeightageExceeded,
		apperrors.ErrInvalidGrade,
		apperrors.ErrGradesIncomplete,
		apperrors.ErrInvalidConfirmationCode,
		apperrors.ErrNoCurrentCourses):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeWorkflowViolation, err.Error())

	// A lost read-modify-write race on a shared document
	case errors.Is(err, apperrors.ErrVersionConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeConcurrentUpdate,
			"The record was modified concurrently, retry the operation")

	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
