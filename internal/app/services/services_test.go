package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/app/repositories"
	"github.com/uzafar/campusdesk/internal/store"
)

// testEnv wires every service over one in-memory document store.
type testEnv struct {
	store *store.Memory
	repos *repositories.Repositories

	auth       *AuthService
	enrollment *EnrollmentService
	withdrawal *WithdrawalService
	marking    *MarkingService
	attendance *AttendanceService
	results    *ResultsService
}

const testFinalizationCode = "112233"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.NewMemory()
	repos := repositories.NewRepositories(st)
	logger := zerolog.Nop()

	return &testEnv{
		store: st,
		repos: repos,
		auth: NewAuthService(repos.UserRepository, repos.DepartmentRepository,
			repos.InstructorRepository, nil, logger),
		enrollment: NewEnrollmentService(repos.StudentRepository, repos.OfferingRepository,
			repos.CourseRepository, logger),
		withdrawal: NewWithdrawalService(repos.StudentRepository, repos.OfferingRepository,
			repos.MarksRepository, repos.AttendanceRepository, logger),
		marking: NewMarkingService(repos.MarksRepository, repos.OfferingRepository,
			repos.StudentRepository, logger),
		attendance: NewAttendanceService(repos.AttendanceRepository, repos.OfferingRepository),
		results: NewResultsService(repos.StudentRepository, repos.OfferingRepository,
			repos.CourseRepository, repos.MarksRepository, repos.AttendanceRepository,
			testFinalizationCode, logger),
	}
}

func (e *testEnv) seedCourse(t *testing.T, id, code string, creditHours int, prereqs ...string) *models.Course {
	t.Helper()
	course := &models.Course{
		ID:            id,
		Name:          "Course " + code,
		Code:          code,
		CreditHours:   creditHours,
		PreRequisites: prereqs,
	}
	require.NoError(t, e.repos.CourseRepository.Create(context.Background(), course))
	return course
}

func (e *testEnv) seedOffering(t *testing.T, id, courseID string) *models.Offering {
	t.Helper()
	offering := &models.Offering{
		ID:           id,
		CourseID:     courseID,
		InstructorID: "instructor-1",
		ClassID:      "class-1",
	}
	require.NoError(t, e.repos.OfferingRepository.Create(context.Background(), offering))
	return offering
}

func (e *testEnv) seedStudent(t *testing.T, id, rollNumber string) *models.Student {
	t.Helper()
	student := &models.Student{
		ID:         id,
		Name:       "Student " + rollNumber,
		RollNumber: rollNumber,
		ClassID:    "class-1",
	}
	require.NoError(t, e.repos.StudentRepository.Create(context.Background(), student))
	return student
}

func (e *testEnv) student(t *testing.T, id string) *models.Student {
	t.Helper()
	student, err := e.repos.StudentRepository.GetByID(context.Background(), id)
	require.NoError(t, err)
	return student
}
