package dto

import (
	"time"

	"github.com/deniz/campusreg/internal/app/models"
)

// EnrollRequest represents enrollment creation data. Both identifiers are
// surrogate ids, not the external student/course codes.
type EnrollRequest struct {
	StudentID int64 `json:"studentId" binding:"required,min=1"`
	CourseID  int64 `json:"courseId" binding:"required,min=1"`
}

// UpdateGradeRequest carries the grade to assign to an enrollment.
type UpdateGradeRequest struct {
	Grade string `json:"grade" binding:"required,grade"`
}

// EnrollmentResponse represents an enrollment record
type EnrollmentResponse struct {
	ID         int64     `json:"id" example:"1"`
	StudentID  int64     `json:"studentId" example:"1"`
	CourseID   int64     `json:"courseId" example:"2"`
	EnrolledAt time.Time `json:"enrolledAt" example:"2025-09-01T10:00:00+03:00"`
	Grade      *string   `json:"grade,omitempty" example:"B+"`
}

// StudentCoursesResponse lists the courses a student is enrolled in
type StudentCoursesResponse struct {
	StudentID int64            `json:"studentId"`
	Courses   []CourseResponse `json:"courses"`
}

// CourseStudentsResponse lists the students enrolled in a course
type CourseStudentsResponse struct {
	CourseID int64             `json:"courseId"`
	Students []StudentResponse `json:"students"`
}

// FromEnrollment converts a models.Enrollment to an EnrollmentResponse
func FromEnrollment(enrollment *models.Enrollment) EnrollmentResponse {
	if enrollment == nil {
		return EnrollmentResponse{}
	}
	return EnrollmentResponse{
		ID:         enrollment.ID,
		StudentID:  enrollment.StudentID,
		CourseID:   enrollment.CourseID,
		EnrolledAt: enrollment.EnrolledAt,
		Grade:      enrollment.Grade,
	}
}
