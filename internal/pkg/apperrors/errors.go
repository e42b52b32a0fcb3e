package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Account errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Catalog errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name or abbreviation already exists")
	ErrInstructorNotFound      = errors.New("instructor not found")
	ErrCourseNotFound          = errors.New("course not found")
	ErrCourseAlreadyExists     = errors.New("course with this code already exists")
	ErrClassNotFound           = errors.New("class not found")
	ErrStudentNotFound         = errors.New("student not found")
	ErrRollNumberExists        = errors.New("roll number already exists")
	ErrOfferingNotFound        = errors.New("course offering not found")
	ErrDuplicateAssignment     = errors.New("this course is already assigned to the instructor and class")
)

// Enrollment workflow errors
var (
	ErrNotEnrolled            = errors.New("course is not in the student's applied courses")
	ErrNotCurrent             = errors.New("course is not in the student's current courses")
	ErrPrerequisitesNotMet    = errors.New("prerequisites are not satisfied")
	ErrPrerequisitesSatisfied = errors.New("prerequisites are satisfied; disapproval not permitted")
	ErrWithdrawalNotRequested = errors.New("no withdrawal request exists for this course")
)

// Marking and results errors
var (
	ErrMarksNotFound           = errors.New("marks record not found")
	ErrAttendanceNotFound      = errors.New("attendance record not found")
	ErrDuplicateAssessment     = errors.New("an assessment with this name is already defined")
	ErrAssessmentNotFound      = errors.New("assessment not found in grading criteria")
	ErrWeightageExceeded       = errors.New("total weightage exceeds 100 percent")
	ErrInvalidGrade            = errors.New("invalid letter grade")
	ErrDuplicateSessionDate    = errors.New("an attendance session already exists for this date")
	ErrSessionNotFound         = errors.New("no attendance session exists for this date")
	ErrGradesIncomplete        = errors.New("not all grades have been assigned")
	ErrInvalidConfirmationCode = errors.New("confirmation code is incorrect")
	ErrNoCurrentCourses        = errors.New("student has no current courses to finalize")
)

// Store errors
var (
	// ErrVersionConflict is returned when a conditional write loses a
	// read-modify-write race on a shared document.
	ErrVersionConflict = errors.New("document was modified concurrently")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
