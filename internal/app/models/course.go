package models

import "time"

// Course represents a course students can enroll in.
type Course struct {
	ID         int64     `json:"id" db:"id"`
	CourseCode string    `json:"courseCode" db:"course_code"`
	Title      string    `json:"title" db:"title"`
	Credits    int       `json:"credits" db:"credits"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
