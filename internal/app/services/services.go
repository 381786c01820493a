package services

import (
	"context"

	"github.com/deniz/campusreg/internal/app/models"
)

// Services defined in this package:
// - StudentService: student record CRUD
// - CourseService: course record CRUD
// - EnrollmentService: enrollment lifecycle (enroll, unenroll, grading, listings)

// StudentStore is the persistence boundary the student service depends on.
// Implemented by repositories.StudentRepository.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the persistence boundary the course service depends on.
// Implemented by repositories.CourseRepository.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore is the persistence boundary the enrollment service depends on.
// Implemented by repositories.EnrollmentRepository.
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ExistsByPair(ctx context.Context, studentID, courseID int64) (bool, error)
	DeleteByPair(ctx context.Context, studentID, courseID int64) error
	UpdateGradeByPair(ctx context.Context, studentID, courseID int64, grade string) error
	GetCoursesByStudentID(ctx context.Context, studentID int64) ([]*models.Course, error)
	GetStudentsByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error)
}
