package dto

import (
	"time"

	"github.com/deniz/campusreg/internal/app/models"
)

// StudentResponse represents basic student information
type StudentResponse struct {
	ID        int64     `json:"id" example:"1"`
	StudentID string    `json:"studentId" example:"S1024"`
	Name      string    `json:"name" example:"Jane Doe"`
	Email     string    `json:"email" example:"jane.doe@example.edu"`
	CreatedAt time.Time `json:"createdAt" example:"2025-09-01T10:00:00Z"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	StudentID string `json:"studentId" binding:"required,alphanum,min=4,max=16"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	PaginationInfo
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(student *models.Student) StudentResponse {
	if student == nil {
		return StudentResponse{}
	}
	return StudentResponse{
		ID:        student.ID,
		StudentID: student.StudentID,
		Name:      student.Name,
		Email:     student.Email,
		CreatedAt: student.CreatedAt,
	}
}

// FromStudents converts a slice of models.Student to StudentResponses
func FromStudents(students []*models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		responses = append(responses, FromStudent(s))
	}
	return responses
}
