package dto

import (
	"time"

	"github.com/deniz/campusreg/internal/app/models"
)

// CourseResponse represents basic course information
type CourseResponse struct {
	ID         int64     `json:"id" example:"1"`
	CourseCode string    `json:"courseCode" example:"CS101"`
	Title      string    `json:"title" example:"Introduction to Computer Science"`
	Credits    int       `json:"credits" example:"6"`
	CreatedAt  time.Time `json:"createdAt" example:"2025-09-01T10:00:00Z"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	CourseCode string `json:"courseCode" binding:"required,min=3,max=12"`
	Title      string `json:"title" binding:"required,min=2,max=200"`
	Credits    int    `json:"credits" binding:"required,min=1,max=30"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Title   string `json:"title" binding:"required,min=2,max=200"`
	Credits int    `json:"credits" binding:"required,min=1,max=30"`
}

// CourseListResponse represents a paginated list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	PaginationInfo
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}
	return CourseResponse{
		ID:         course.ID,
		CourseCode: course.CourseCode,
		Title:      course.Title,
		Credits:    course.Credits,
		CreatedAt:  course.CreatedAt,
	}
}

// FromCourses converts a slice of models.Course to CourseResponses
func FromCourses(courses []*models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, FromCourse(c))
	}
	return responses
}
