package models

// Course is a catalog entry. PreRequisites holds IDs of other catalog
// courses that must appear in a student's completed set before an offering
// of this course can be approved.
type Course struct {
	ID               string   `json:"-"`
	Name             string   `json:"name"`
	Code             string   `json:"code"`
	CreditHours      int      `json:"creditHours"`
	ExpectedSemester int      `json:"expectedSemester"`
	PreRequisites    []string `json:"preRequisites"`
}
