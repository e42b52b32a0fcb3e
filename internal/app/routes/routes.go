package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/uzafar/campusdesk/internal/app/controllers"
	"github.com/uzafar/campusdesk/internal/app/models"
	"github.com/uzafar/campusdesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	studentController *controllers.StudentController,
	offeringController *controllers.OfferingController,
	enrollmentController *controllers.EnrollmentController,
	markingController *controllers.MarkingController,
	resultsController *controllers.ResultsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/auth/profile", authController.Profile)

	admin := string(models.RoleAdmin)
	department := string(models.RoleDepartment)
	instructor := string(models.RoleInstructor)

	// Account registration is an administrative operation
	registration := authenticated.Group("/auth/register")
	registration.Use(authMiddleware.RoleRequired(admin))
	{
		registration.POST("/department", authController.RegisterDepartment)
		registration.POST("/instructor", authController.RegisterInstructor)
	}

	// Catalog reads are open to every authenticated role
	authenticated.GET("/departments", catalogController.GetAllDepartments)
	authenticated.GET("/departments/:id", catalogController.GetDepartmentByID)
	authenticated.GET("/departments/:id/instructors", catalogController.GetInstructorsByDepartment)
	authenticated.GET("/instructors", catalogController.GetAllInstructors)
	authenticated.GET("/courses", catalogController.GetAllCourses)
	authenticated.GET("/courses/:id", catalogController.GetCourseByID)
	authenticated.GET("/classes", catalogController.GetAllClasses)
	authenticated.GET("/classes/:id", catalogController.GetClassByID)

	// Catalog writes belong to department accounts
	catalogWrites := authenticated.Group("")
	catalogWrites.Use(authMiddleware.RoleRequired(department, admin))
	{
		catalogWrites.POST("/courses", catalogController.CreateCourse)
		catalogWrites.PUT("/courses/:id", catalogController.UpdateCourse)
		catalogWrites.DELETE("/courses/:id", catalogController.DeleteCourse)
		catalogWrites.POST("/classes", catalogController.CreateClass)
	}

	// Student records and the enrollment workflow are department operations
	students := authenticated.Group("/students")
	students.Use(authMiddleware.RoleRequired(department, admin))
	{
		students.POST("", studentController.RegisterStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.DELETE("/:id", studentController.DeleteStudent)

		students.POST("/:id/enrollments", enrollmentController.Apply)
		students.GET("/:id/enrollments", enrollmentController.ListApplications)
		students.POST("/:id/enrollments/approve", enrollmentController.Approve)
		students.POST("/:id/enrollments/disapprove", enrollmentController.Disapprove)
		students.GET("/:id/current", enrollmentController.ListCurrent)

		students.POST("/:id/withdrawals", enrollmentController.RequestWithdrawal)
		students.GET("/:id/withdrawals", enrollmentController.ListWithdrawals)
		students.POST("/:id/withdrawals/cancel", enrollmentController.CancelWithdrawal)
		students.POST("/:id/withdrawals/confirm", enrollmentController.ConfirmWithdrawal)

		students.GET("/:id/semester", resultsController.GetSemester)
		students.POST("/:id/semester/finalize", resultsController.FinalizeSemester)
		students.GET("/:id/results", resultsController.GetHistory)
	}

	// Offerings: departments assign, instructors read their own
	offerings := authenticated.Group("/offerings")
	{
		offerings.GET("", offeringController.GetAllOfferings)
		offerings.GET("/:id", offeringController.GetOfferingByID)

		offeringWrites := offerings.Group("")
		offeringWrites.Use(authMiddleware.RoleRequired(department, admin))
		{
			offeringWrites.POST("", offeringController.AssignCourse)
			offeringWrites.DELETE("/:id", offeringController.DeleteOffering)
		}

		// Marks and attendance are instructor operations; departments can
		// read them for result compilation
		offerings.GET("/:id/marks", markingController.GetMarks)
		offerings.GET("/:id/attendance", markingController.GetAttendance)
		offerings.GET("/:id/attendance/summary", markingController.GetAttendanceSummary)

		marking := offerings.Group("")
		marking.Use(authMiddleware.RoleRequired(instructor, admin))
		{
			marking.POST("/:id/criteria", markingController.AddCriterion)
			marking.PUT("/:id/criteria/:assessment", markingController.EditCriterion)
			marking.DELETE("/:id/criteria/:assessment", markingController.DeleteCriterion)
			marking.POST("/:id/marks", markingController.SaveMarks)
			marking.POST("/:id/grade", markingController.AssignGrade)
			marking.POST("/:id/attendance", markingController.RecordAttendanceSession)
			marking.PUT("/:id/attendance", markingController.EditAttendanceSession)
		}
	}
}
