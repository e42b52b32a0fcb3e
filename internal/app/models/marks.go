package models

// Criterion is one weighted assessment of an offering's grading scheme.
type Criterion struct {
	Assessment string  `json:"assessment"`
	Weightage  float64 `json:"weightage"`
	TotalMarks float64 `json:"totalMarks"`
}

// StudentMarks holds one student's raw scores keyed by assessment name,
// plus the instructor-selected letter grade.
type StudentMarks struct {
	StudentID string             `json:"studentId"`
	Marks     map[string]float64 `json:"marks"`
	Grade     Grade              `json:"grade"`
}

// MarksRecord is the per-offering marks document from 'studentsMarks',
// shared by every student taking the offering. Saves replace the whole
// document, so callers read-modify-write criteria and marks together.
type MarksRecord struct {
	CriteriaDefined []Criterion    `json:"criteriaDefined"`
	MarksOfStudents []StudentMarks `json:"marksOfStudents"`

	// Version of the backing document, for conditional writes.
	Version int64 `json:"-"`
}

// TotalWeightage sums the weightage percentages of all defined criteria.
func (r *MarksRecord) TotalWeightage() float64 {
	var total float64
	for _, c := range r.CriteriaDefined {
		total += c.Weightage
	}
	return total
}

// Criterion returns the criterion with the given assessment name.
func (r *MarksRecord) Criterion(assessment string) (Criterion, bool) {
	for _, c := range r.CriteriaDefined {
		if c.Assessment == assessment {
			return c, true
		}
	}
	return Criterion{}, false
}

// MarksFor returns the stored marks entry for a student.
func (r *MarksRecord) MarksFor(studentID string) (*StudentMarks, bool) {
	for i := range r.MarksOfStudents {
		if r.MarksOfStudents[i].StudentID == studentID {
			return &r.MarksOfStudents[i], true
		}
	}
	return nil, false
}

// GradeFor returns the student's letter grade, or the unassigned sentinel
// when the student has no marks entry or no grade yet.
func (r *MarksRecord) GradeFor(studentID string) Grade {
	entry, ok := r.MarksFor(studentID)
	if !ok || !entry.Grade.Assigned() {
		return GradeUnassigned
	}
	return entry.Grade
}

// WeightedScore derives the weighted score of a raw score under a
// criterion: raw / totalMarks * weightage. Derived on read, never stored.
func WeightedScore(raw float64, c Criterion) float64 {
	if c.TotalMarks == 0 {
		return 0
	}
	return raw / c.TotalMarks * c.Weightage
}
