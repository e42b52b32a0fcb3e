package models

// Instructor defines an instructor document. Its ID equals the ID of the
// instructor's user account.
type Instructor struct {
	ID           string `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	DepartmentID string `json:"departmentId"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
