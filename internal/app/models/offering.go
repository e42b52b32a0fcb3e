package models

// Offering is one taught instance of a course: a {course, instructor, class}
// tuple from the 'assignCourses' collection. Student course-ID sets, marks
// records and attendance records all reference offerings by ID.
type Offering struct {
	ID           string `json:"-"`
	CourseID     string `json:"courseId"`
	InstructorID string `json:"instructorId"`
	ClassID      string `json:"classId"`

	// Relations (populated when needed)
	Course     *Course     `json:"course,omitempty"`
	Instructor *Instructor `json:"instructor,omitempty"`
	Class      *Class      `json:"class,omitempty"`
}
