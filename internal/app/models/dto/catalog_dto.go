package dto

// CreateCourseRequest creates a catalog course
type CreateCourseRequest struct {
	Name             string   `json:"name" binding:"required" example:"Data Structures"`
	Code             string   `json:"code" binding:"required" example:"CS201"`
	CreditHours      int      `json:"creditHours" binding:"required,min=1" example:"3"`
	ExpectedSemester int      `json:"expectedSemester" binding:"omitempty,min=1" example:"3"`
	PreRequisites    []string `json:"preRequisites"`
}

// UpdateCourseRequest updates a catalog course
type UpdateCourseRequest struct {
	Name             string   `json:"name" binding:"required"`
	Code             string   `json:"code" binding:"required"`
	CreditHours      int      `json:"creditHours" binding:"required,min=1"`
	ExpectedSemester int      `json:"expectedSemester" binding:"omitempty,min=1"`
	PreRequisites    []string `json:"preRequisites"`
}

// CreateClassRequest creates a class cohort under a department
type CreateClassRequest struct {
	Name         string `json:"name" binding:"required" example:"FA22-A"`
	DepartmentID string `json:"departmentId" binding:"required"`
}

// RegisterStudentRequest registers a student into a class
type RegisterStudentRequest struct {
	Name       string `json:"name" binding:"required" example:"A. Student"`
	Email      string `json:"email" binding:"omitempty,email"`
	RollNumber string `json:"rollNumber" binding:"required" example:"FA22-BCS-001"`
	ClassID    string `json:"classId" binding:"required"`
}

// AssignCourseRequest assigns a course to an instructor and class
type AssignCourseRequest struct {
	CourseID     string `json:"courseId" binding:"required"`
	InstructorID string `json:"instructorId" binding:"required"`
	ClassID      string `json:"classId" binding:"required"`
}
