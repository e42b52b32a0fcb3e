package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/uzafar/campusdesk/internal/store"
)

// Collection names in the document store.
const (
	CollectionUsers       = "users"
	CollectionDepartments = "departments"
	CollectionInstructors = "instructors"
	CollectionCourses     = "courses"
	CollectionClasses     = "classes"
	CollectionStudents    = "students"
	CollectionOfferings   = "assignCourses"
	CollectionMarks       = "studentsMarks"
	CollectionAttendances = "attendances"
)

// Repositories contains all repository instances
type Repositories struct {
	UserRepository       *UserRepository
	DepartmentRepository *DepartmentRepository
	InstructorRepository *InstructorRepository
	CourseRepository     *CourseRepository
	ClassRepository      *ClassRepository
	StudentRepository    *StudentRepository
	OfferingRepository   *OfferingRepository
	MarksRepository      *MarksRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories creates all repositories over one document store
func NewRepositories(st store.Store) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(st),
		DepartmentRepository: NewDepartmentRepository(st),
		InstructorRepository: NewInstructorRepository(st),
		CourseRepository:     NewCourseRepository(st),
		ClassRepository:      NewClassRepository(st),
		StudentRepository:    NewStudentRepository(st),
		OfferingRepository:   NewOfferingRepository(st),
		MarksRepository:      NewMarksRepository(st),
		AttendanceRepository: NewAttendanceRepository(st),
	}
}

// decodeDocument unmarshals a document body into a typed model.
func decodeDocument(doc *store.Document, v interface{}) error {
	if err := json.Unmarshal(doc.Data, v); err != nil {
		return fmt.Errorf("error decoding %s/%s: %w", doc.Collection, doc.ID, err)
	}
	return nil
}
