package models

import "time"

// Enrollment associates one student with one course. The (StudentID, CourseID)
// pair is unique: a student holds at most one enrollment per course.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"` // Set at creation, immutable
	Grade      *string   `json:"grade,omitempty" db:"grade"`  // Nullable, unset until graded

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
