package dto

// EnrollmentRequest targets one offering of a student's workflow
type EnrollmentRequest struct {
	OfferingID string `json:"offeringId" binding:"required"`
}

// CriterionRequest defines or updates a grading criterion
type CriterionRequest struct {
	Assessment string  `json:"assessment" binding:"required" example:"Midterm"`
	Weightage  float64 `json:"weightage" binding:"required,gt=0,lte=100" example:"30"`
	TotalMarks float64 `json:"totalMarks" binding:"required,gt=0" example:"50"`
}

// SaveMarksRequest stores a student's raw scores keyed by assessment name
type SaveMarksRequest struct {
	StudentID string             `json:"studentId" binding:"required"`
	Marks     map[string]float64 `json:"marks" binding:"required"`
}

// AssignGradeRequest sets a student's letter grade for an offering
type AssignGradeRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Grade     string `json:"grade" binding:"required" example:"A-"`
}

// AttendanceSessionRequest records or edits one session's flags
type AttendanceSessionRequest struct {
	Date    string          `json:"date" binding:"required" example:"2026-03-02"`
	Records map[string]bool `json:"records" binding:"required"`
}

// FinalizeSemesterRequest closes out a student's current semester
type FinalizeSemesterRequest struct {
	ConfirmationCode string `json:"confirmationCode" binding:"required" example:"112233"`
}
