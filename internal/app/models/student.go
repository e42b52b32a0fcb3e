package models

// SemesterResult is one append-only entry of a student's results history.
// GPA is stored as the formatted two-decimal string shown to operators.
type SemesterResult struct {
	Semester int    `json:"semester"`
	GPA      string `json:"gpa"`
}

// Student defines a student document. EnrolledCourses, CurrentCourses and
// WithdrawCourses hold offering IDs; CompletedCourses holds catalog course
// IDs, which is what the prerequisite check consults. An offering ID appears
// in at most one of the sets at any time.
type Student struct {
	ID               string           `json:"-"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	RollNumber       string           `json:"rollNumber"`
	ClassID          string           `json:"classId"`
	EnrolledCourses  []string         `json:"enrolledCourses"`
	CurrentCourses   []string         `json:"currentCourses"`
	CompletedCourses []string         `json:"completedCourses"`
	WithdrawCourses  []string         `json:"withdrawCourses"`
	Results          []SemesterResult `json:"results"`

	// Version of the backing document, for conditional writes.
	Version int64 `json:"-"`
}

// HasOffering reports whether the offering ID is present in any of the
// student's in-flight course sets (applied, current or withdraw-flagged).
func (s *Student) HasOffering(offeringID string) bool {
	return contains(s.EnrolledCourses, offeringID) ||
		contains(s.CurrentCourses, offeringID) ||
		contains(s.WithdrawCourses, offeringID)
}

// HasEnrolled reports whether the offering is in the applied set.
func (s *Student) HasEnrolled(offeringID string) bool {
	return contains(s.EnrolledCourses, offeringID)
}

// HasCurrent reports whether the offering is in the approved, in-progress set.
func (s *Student) HasCurrent(offeringID string) bool {
	return contains(s.CurrentCourses, offeringID)
}

// HasWithdrawRequest reports whether a withdrawal has been requested for the offering.
func (s *Student) HasWithdrawRequest(offeringID string) bool {
	return contains(s.WithdrawCourses, offeringID)
}

// HasCompleted reports whether the catalog course ID is in the completed set.
func (s *Student) HasCompleted(courseID string) bool {
	return contains(s.CompletedCourses, courseID)
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
