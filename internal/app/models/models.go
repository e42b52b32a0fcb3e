package models

// RoleType defines the user role type. Roles are not stored on accounts;
// they are derived at login from membership in the departments and
// instructors collections, falling back to the administrative role.
type RoleType string

const (
	RoleAdmin      RoleType = "ADMIN"
	RoleDepartment RoleType = "DEPARTMENT"
	RoleInstructor RoleType = "INSTRUCTOR"
)

// Grade is an instructor-selected letter grade.
type Grade string

// Letter grades. GradeIncomplete is the default for ungraded students and
// carries zero grade points.
const (
	GradeAPlus      Grade = "A+"
	GradeA          Grade = "A"
	GradeAMinus     Grade = "A-"
	GradeBPlus      Grade = "B+"
	GradeB          Grade = "B"
	GradeBMinus     Grade = "B-"
	GradeCPlus      Grade = "C+"
	GradeC          Grade = "C"
	GradeCMinus     Grade = "C-"
	GradeDPlus      Grade = "D+"
	GradeD          Grade = "D"
	GradeF          Grade = "F"
	GradeIncomplete Grade = "I"
)

// GradeUnassigned marks a course for which no grade has been entered yet.
// It is distinct from GradeIncomplete, which is a real (zero-point) grade.
const GradeUnassigned Grade = "No grade assigned"

// gradePoints maps letter grades to grade points on the 4.00 scale.
var gradePoints = map[Grade]float64{
	GradeAPlus:      4.00,
	GradeA:          4.00,
	GradeAMinus:     3.67,
	GradeBPlus:      3.33,
	GradeB:          3.00,
	GradeBMinus:     2.67,
	GradeCPlus:      2.33,
	GradeC:          2.00,
	GradeCMinus:     1.67,
	GradeDPlus:      1.33,
	GradeD:          1.00,
	GradeF:          0.00,
	GradeIncomplete: 0.00,
}

// Valid reports whether g is one of the letter grades.
func (g Grade) Valid() bool {
	_, ok := gradePoints[g]
	return ok
}

// Assigned reports whether a grade has been entered for the course.
func (g Grade) Assigned() bool {
	return g != GradeUnassigned && g != ""
}

// Points returns the grade points for the letter grade; unknown grades
// (including the unassigned sentinel) count as zero.
func (g Grade) Points() float64 {
	return gradePoints[g]
}
