package services

// Services defined in this package:
// - AuthService: account registration, login and role derivation
// - DepartmentService: department accounts and department listings
// - InstructorService: instructor accounts and department rosters
// - CourseService: catalog courses and prerequisite chains
// - ClassService: class cohorts and their rosters
// - StudentService: student records and registration
// - OfferingService: course-to-instructor-and-class assignments
// - EnrollmentService: the apply/approve/disapprove workflow
// - WithdrawalService: withdrawal requests and their confirmation
// - MarkingService: grading criteria, marks entry and letter grades
// - AttendanceService: per-session attendance records
// - ResultsService: GPA calculation and semester finalization
