package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/deniz/campusreg/internal/app/controllers"
	"github.com/deniz/campusreg/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)

		// Enrollment routes addressed from the student side
		students.GET("/:id/courses", enrollmentController.ListCoursesForStudent)
		students.DELETE("/:id/courses/:courseId", enrollmentController.Unenroll)
		students.PUT("/:id/courses/:courseId/grade", enrollmentController.UpdateGrade)
	}

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)

		// Enrollment routes addressed from the course side
		courses.GET("/:id/students", enrollmentController.ListStudentsForCourse)
	}

	// Enrollment creation
	v1.POST("/enrollments", enrollmentController.Enroll)

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
