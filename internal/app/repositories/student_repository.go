package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
	"github.com/uzafar/campusdesk/internal/store"
)

// StudentRepository handles document-store operations for students
type StudentRepository struct {
	store store.Store
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(st store.Store) *StudentRepository {
	return &StudentRepository{store: st}
}

// Create creates a new student document. The roll number must be unused.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	existing, err := r.store.Query(ctx, CollectionStudents, store.Where("rollNumber", student.RollNumber))
	if err != nil {
		return fmt.Errorf("error checking roll number: %w", err)
	}
	if len(existing) > 0 {
		return apperrors.ErrRollNumberExists
	}

	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	normalizeStudentSets(student)

	if err := r.store.Create(ctx, CollectionStudents, student.ID, student); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return apperrors.ErrRollNumberExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	doc, err := r.store.Get(ctx, CollectionStudents, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return r.decode(doc)
}

// GetByRollNumber retrieves a student by roll number
func (r *StudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	docs, err := r.store.Query(ctx, CollectionStudents, store.Where("rollNumber", rollNumber))
	if err != nil {
		return nil, fmt.Errorf("error querying students by roll number: %w", err)
	}
	if len(docs) == 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return r.decode(&docs[0])
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return r.queryStudents(ctx)
}

// GetByClass retrieves all students of a class
func (r *StudentRepository) GetByClass(ctx context.Context, classID string) ([]*models.Student, error) {
	return r.queryStudents(ctx, store.Where("classId", classID))
}

// GetCurrentlyTaking retrieves the students whose current set contains the offering
func (r *StudentRepository) GetCurrentlyTaking(ctx context.Context, offeringID string) ([]*models.Student, error) {
	return r.queryStudents(ctx, store.WhereContains("currentCourses", offeringID))
}

// GetEnrolledIn retrieves the students whose applied set contains the offering
func (r *StudentRepository) GetEnrolledIn(ctx context.Context, offeringID string) ([]*models.Student, error) {
	return r.queryStudents(ctx, store.WhereContains("enrolledCourses", offeringID))
}

// OfferingReferenced reports whether any student other than excludeStudentID
// still holds the offering in an in-flight set. Used to decide whether an
// offering can be retired.
func (r *StudentRepository) OfferingReferenced(ctx context.Context, offeringID, excludeStudentID string) (bool, error) {
	for _, field := range []string{"enrolledCourses", "currentCourses", "withdrawCourses"} {
		docs, err := r.store.Query(ctx, CollectionStudents, store.WhereContains(field, offeringID))
		if err != nil {
			return false, fmt.Errorf("error checking offering references: %w", err)
		}
		for i := range docs {
			if docs[i].ID != excludeStudentID {
				return true, nil
			}
		}
	}
	return false, nil
}

// Update applies field updates to a student document, conditional on the
// version the caller read.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student, fields []store.FieldUpdate) error {
	err := r.store.Update(ctx, CollectionStudents, student.ID, fields,
		store.WithExpectedVersion(student.Version))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.ErrStudentNotFound
		}
		if errors.Is(err, store.ErrVersionConflict) {
			return apperrors.ErrVersionConflict
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// Save replaces a student document, conditional on the version the caller read
func (r *StudentRepository) Save(ctx context.Context, student *models.Student) error {
	normalizeStudentSets(student)
	err := r.store.Set(ctx, CollectionStudents, student.ID, student,
		store.WithExpectedVersion(student.Version))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.ErrStudentNotFound
		}
		if errors.Is(err, store.ErrVersionConflict) {
			return apperrors.ErrVersionConflict
		}
		return fmt.Errorf("error saving student: %w", err)
	}
	return nil
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, CollectionStudents, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, filters ...store.Filter) ([]*models.Student, error) {
	docs, err := r.store.Query(ctx, CollectionStudents, filters...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}

	students := make([]*models.Student, 0, len(docs))
	for i := range docs {
		student, err := r.decode(&docs[i])
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, nil
}

func (r *StudentRepository) decode(doc *store.Document) (*models.Student, error) {
	var student models.Student
	if err := decodeDocument(doc, &student); err != nil {
		return nil, err
	}
	student.ID = doc.ID
	student.Version = doc.Version
	normalizeStudentSets(&student)
	return &student, nil
}

// normalizeStudentSets keeps the four course sets and the results history
// non-nil so JSON writes always store arrays, never null.
func normalizeStudentSets(student *models.Student) {
	if student.EnrolledCourses == nil {
		student.EnrolledCourses = []string{}
	}
	if student.CurrentCourses == nil {
		student.CurrentCourses = []string{}
	}
	if student.CompletedCourses == nil {
		student.CompletedCourses = []string{}
	}
	if student.WithdrawCourses == nil {
		student.WithdrawCourses = []string{}
	}
	if student.Results == nil {
		student.Results = []models.SemesterResult{}
	}
}
