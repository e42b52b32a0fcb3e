package models

import (
	"fmt"
	"math"
)

// GPA is a grade point average on the 4.00 scale. Valid is false when no
// credit hours back the average, which renders as "N/A".
type GPA struct {
	Valid bool
	Value float64
}

// String formats the GPA with two decimals, or "N/A" when invalid.
func (g GPA) String() string {
	if !g.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", g.Value)
}

// CourseGrade pairs a letter grade with the credit hours it was earned over.
type CourseGrade struct {
	Grade       Grade
	CreditHours int
}

// ComputeGPA calculates the credit-weighted grade point average of a set of
// graded courses, rounded to two decimals. Zero total credit hours yields an
// invalid GPA.
func ComputeGPA(grades []CourseGrade) GPA {
	var points float64
	var credits int
	for _, cg := range grades {
		points += cg.Grade.Points() * float64(cg.CreditHours)
		credits += cg.CreditHours
	}
	if credits == 0 {
		return GPA{}
	}
	value := math.Round(points/float64(credits)*100) / 100
	return GPA{Valid: true, Value: value}
}
