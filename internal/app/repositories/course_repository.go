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

// CourseRepository handles document-store operations for catalog courses
type CourseRepository struct {
	store store.Store
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(st store.Store) *CourseRepository {
	return &CourseRepository{store: st}
}

// Create creates a new catalog course. The course code must be unused.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	existing, err := r.store.Query(ctx, CollectionCourses, store.Where("code", course.Code))
	if err != nil {
		return fmt.Errorf("error checking course code: %w", err)
	}
	if len(existing) > 0 {
		return apperrors.ErrCourseAlreadyExists
	}

	if course.ID == "" {
		course.ID = uuid.NewString()
	}

	if err := r.store.Create(ctx, CollectionCourses, course.ID, course); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	doc, err := r.store.Get(ctx, CollectionCourses, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	var course models.Course
	if err := decodeDocument(doc, &course); err != nil {
		return nil, err
	}
	course.ID = doc.ID

	return &course, nil
}

// GetAll retrieves all catalog courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	docs, err := r.store.Query(ctx, CollectionCourses)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
	}

	courses := make([]*models.Course, 0, len(docs))
	for i := range docs {
		var course models.Course
		if err := decodeDocument(&docs[i], &course); err != nil {
			return nil, err
		}
		course.ID = docs[i].ID
		courses = append(courses, &course)
	}

	return courses, nil
}

// Update replaces an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	if _, err := r.GetByID(ctx, course.ID); err != nil {
		return err
	}

	if err := r.store.Set(ctx, CollectionCourses, course.ID, course); err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	if err := r.store.Delete(ctx, CollectionCourses, id); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}
