package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	instructorController *controllers.InstructorController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
) {
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.POST("/import", studentController.ImportStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.DELETE("/:id/purge", studentController.PurgeStudent)
		students.GET("/:id/courses", studentController.GetStudentCourses)
		students.GET("/:id/enrollments", studentController.GetStudentEnrollments)
	}

	instructors := v1.Group("/instructors")
	{
		instructors.GET("", instructorController.GetAllInstructors)
		instructors.POST("", instructorController.CreateInstructor)
		instructors.GET("/:id", instructorController.GetInstructorByID)
		instructors.PUT("/:id", instructorController.UpdateInstructor)
		instructors.DELETE("/:id", instructorController.DeleteInstructor)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.POST("", courseController.CreateCourse)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
		courses.DELETE("/:id/purge", courseController.PurgeCourse)
		courses.GET("/:id/students", courseController.GetCourseStudents)
		courses.GET("/:id/roster.xlsx", courseController.ExportRoster)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.POST("", enrollmentController.EnrollStudent)
		enrollments.GET("/:studentId/:courseId", enrollmentController.GetEnrollment)
		enrollments.PUT("/grade", enrollmentController.AssignGrade)
	}
}
