package models

// Class is a cohort of students. By convention the name is prefixed with
// the owning department's abbreviation.
type Class struct {
	ID              string   `json:"-"`
	Name            string   `json:"name"`
	DepartmentID    string   `json:"departmentId"`
	StudentsOfClass []string `json:"studentsOfClass"`
}
