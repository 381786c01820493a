package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`                              // Surrogate identifier for the student record
	StudentID string    `json:"studentId" db:"student_id" example:"S1024"`           // Student's unique external identifier
	Name      string    `json:"name" db:"name" example:"Jane Doe"`                   // Full name
	Email     string    `json:"email" db:"email" example:"jane.doe@example.edu"`     // Unique email address
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2025-09-01T10:00:00Z"` // Record creation time
}
