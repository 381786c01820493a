package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deniz/campusreg/internal/app/models/dto"
	"github.com/deniz/campusreg/internal/app/services"
	"github.com/deniz/campusreg/internal/middleware"
	"github.com/deniz/campusreg/internal/pkg/apperrors"
)

// EnrollmentController handles enrollment lifecycle endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// parsePairParams extracts the (studentID, courseID) surrogate pair from path params
func parsePairParams(ctx *gin.Context) (studentID, courseID int64, ok bool) {
	studentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, 0, false
	}

	courseID, err = strconv.ParseInt(ctx.Param("courseId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, 0, false
	}

	return studentID, courseID, true
}

// Enroll creates an enrollment for a (student, course) pair
// @Summary Enroll a student in a course
// @Description Creates an enrollment record linking the student and course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Surrogate student and course identifiers"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment created"
// @Failure 400 {object} dto.ErrorResponse "Student/course missing or already enrolled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx, req.StudentID, req.CourseID)
	if err != nil {
		// The enrollment contract maps missing references and duplicates to 400,
		// unlike the generic 404/409 mapping.
		switch {
		case apperrors.Is(err, apperrors.ErrStudentNotFound,
			apperrors.ErrCourseNotFound,
			apperrors.ErrResourceNotFound):
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, "Student or course does not exist")
			errorDetail = errorDetail.WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		case apperrors.Is(err, apperrors.ErrAlreadyEnrolled):
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Student is already enrolled in this course")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		default:
			middleware.HandleAPIError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromEnrollment(enrollment),
		Timestamp: time.Now(),
	})
}

// Unenroll removes the enrollment for a (student, course) pair
// @Summary Unenroll a student from a course
// @Description Deletes the enrollment record for the pair; student and course records are untouched
// @Tags enrollments
// @Produce json
// @Param id path int true "Student surrogate ID"
// @Param courseId path int true "Course surrogate ID"
// @Success 204 "Enrollment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid identifiers"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/courses/{courseId} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	studentID, courseID, ok := parsePairParams(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.Unenroll(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpdateGrade sets or replaces the grade of an enrollment
// @Summary Update an enrollment grade
// @Description Overwrites the grade of the enrollment for the pair
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Student surrogate ID"
// @Param courseId path int true "Course surrogate ID"
// @Param request body dto.UpdateGradeRequest true "Grade value"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Grade updated"
// @Failure 400 {object} dto.ErrorResponse "Missing or unrecognized grade"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/courses/{courseId}/grade [put]
func (c *EnrollmentController) UpdateGrade(ctx *gin.Context) {
	studentID, courseID, ok := parsePairParams(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.enrollmentService.UpdateGrade(ctx, studentID, courseID, req.Grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Grade updated"},
		Timestamp: time.Now(),
	})
}

// ListCoursesForStudent lists the courses a student is enrolled in
// @Summary List a student's courses
// @Description Retrieves the courses associated with the student via enrollments, ordered by enrollment time
// @Tags enrollments
// @Produce json
// @Param id path int true "Student surrogate ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentCoursesResponse} "Courses retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/courses [get]
func (c *EnrollmentController) ListCoursesForStudent(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.enrollmentService.ListCoursesForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.StudentCoursesResponse{
			StudentID: studentID,
			Courses:   dto.FromCourses(courses),
		},
		Timestamp: time.Now(),
	})
}

// ListStudentsForCourse lists the students enrolled in a course
// @Summary List a course's students
// @Description Retrieves the students associated with the course via enrollments, ordered by enrollment time
// @Tags enrollments
// @Produce json
// @Param id path int true "Course surrogate ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseStudentsResponse} "Students retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/students [get]
func (c *EnrollmentController) ListStudentsForCourse(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	students, err := c.enrollmentService.ListStudentsForCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.CourseStudentsResponse{
			CourseID: courseID,
			Students: dto.FromStudents(students),
		},
		Timestamp: time.Now(),
	})
}
