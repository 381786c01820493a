package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deniz/campusreg/internal/app/models"
	"github.com/deniz/campusreg/internal/pkg/apperrors"
)

// Common enrollment errors
var (
	ErrEnrollmentValidation = fmt.Errorf("enrollment %w", apperrors.ErrValidationFailed)
)

// EnrollmentService owns the lifecycle of student-course enrollment records:
// creation, duplicate prevention, removal, grade assignment, and the
// by-student/by-course listings.
type EnrollmentService struct {
	enrollmentStore EnrollmentStore
	studentStore    StudentStore
	courseStore     CourseStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentStore EnrollmentStore, studentStore StudentStore, courseStore CourseStore) *EnrollmentService {
	return &EnrollmentService{
		enrollmentStore: enrollmentStore,
		studentStore:    studentStore,
		courseStore:     courseStore,
	}
}

// validatePair validates the surrogate identifier pair
func (s *EnrollmentService) validatePair(studentID, courseID int64) error {
	if studentID <= 0 {
		return fmt.Errorf("%w: student ID must be positive", ErrEnrollmentValidation)
	}
	if courseID <= 0 {
		return fmt.Errorf("%w: course ID must be positive", ErrEnrollmentValidation)
	}
	return nil
}

// Enroll creates an enrollment for the (student, course) pair.
// Both records must exist, and the pair must not already be enrolled.
// The duplicate check here is a fast path; the unique constraint on the
// enrollments table is the authority, so a losing concurrent Enroll still
// comes back as ErrAlreadyEnrolled.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if err := s.validatePair(studentID, courseID); err != nil {
		return nil, err
	}

	studentExists, err := s.studentStore.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !studentExists {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound,
			fmt.Sprintf("student %d not found", studentID))
	}

	courseExists, err := s.courseStore.ExistsByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !courseExists {
		return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound,
			fmt.Sprintf("course %d not found", courseID))
	}

	enrolled, err := s.enrollmentStore.ExistsByPair(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if enrolled {
		return nil, apperrors.NewCustomError(apperrors.ErrAlreadyEnrolled,
			fmt.Sprintf("student %d is already enrolled in course %d", studentID, courseID))
	}

	enrollment := &models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}
	if err := s.enrollmentStore.Create(ctx, enrollment); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyEnrolled) {
			return nil, apperrors.NewCustomError(apperrors.ErrAlreadyEnrolled,
				fmt.Sprintf("student %d is already enrolled in course %d", studentID, courseID))
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	return enrollment, nil
}

// Unenroll removes the enrollment for the (student, course) pair.
// Fails with apperrors.ErrEnrollmentNotFound when no such enrollment exists.
func (s *EnrollmentService) Unenroll(ctx context.Context, studentID, courseID int64) error {
	if err := s.validatePair(studentID, courseID); err != nil {
		return err
	}

	if err := s.enrollmentStore.DeleteByPair(ctx, studentID, courseID); err != nil {
		if errors.Is(err, apperrors.ErrEnrollmentNotFound) {
			return apperrors.NewCustomError(apperrors.ErrEnrollmentNotFound,
				fmt.Sprintf("no enrollment for student %d in course %d", studentID, courseID))
		}
		return fmt.Errorf("error removing enrollment: %w", err)
	}

	return nil
}

// UpdateGrade overwrites the grade of the enrollment for the pair.
// The grade must be non-empty; the recognized grade vocabulary is enforced
// at the request layer. A missing enrollment fails with
// apperrors.ErrEnrollmentNotFound rather than silently succeeding.
func (s *EnrollmentService) UpdateGrade(ctx context.Context, studentID, courseID int64, grade string) error {
	if err := s.validatePair(studentID, courseID); err != nil {
		return err
	}
	if strings.TrimSpace(grade) == "" {
		return fmt.Errorf("%w: grade cannot be empty", ErrEnrollmentValidation)
	}

	if err := s.enrollmentStore.UpdateGradeByPair(ctx, studentID, courseID, grade); err != nil {
		if errors.Is(err, apperrors.ErrEnrollmentNotFound) {
			return apperrors.NewCustomError(apperrors.ErrEnrollmentNotFound,
				fmt.Sprintf("no enrollment for student %d in course %d", studentID, courseID))
		}
		return fmt.Errorf("error updating grade: %w", err)
	}

	return nil
}

// ListCoursesForStudent returns the courses the student is enrolled in,
// ordered by enrollment time. An existing student with no enrollments yields
// an empty slice, not an error.
func (s *EnrollmentService) ListCoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: student ID must be positive", ErrEnrollmentValidation)
	}

	exists, err := s.studentStore.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound,
			fmt.Sprintf("student %d not found", studentID))
	}

	courses, err := s.enrollmentStore.GetCoursesByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses for student: %w", err)
	}

	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}

// ListStudentsForCourse returns the students enrolled in the course,
// ordered by enrollment time. An existing course with no enrollments yields
// an empty slice, not an error.
func (s *EnrollmentService) ListStudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", ErrEnrollmentValidation)
	}

	exists, err := s.courseStore.ExistsByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound,
			fmt.Sprintf("course %d not found", courseID))
	}

	students, err := s.enrollmentStore.GetStudentsByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing students for course: %w", err)
	}

	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}
